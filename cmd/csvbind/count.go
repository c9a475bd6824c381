package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/oleg578/csvbind"
)

func newCountCmd(flags *rootFlags) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "count FILE",
		Short: "Report how many records were read, emitted, filtered and dropped",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(flags, width, args[0], cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&width, "columns", 1, "number of leading string columns to bind")
	return cmd
}

func runCount(flags *rootFlags, width int, path string, stdin io.Reader, out io.Writer) error {
	if width < 1 {
		return errors.Errorf("--columns must be positive, got %d", width)
	}
	enc, err := textEncoding(flags.encoding)
	if err != nil {
		return err
	}
	logger, err := newLogger(flags.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	opts, err := flags.parserOptions(logger)
	if err != nil {
		return err
	}

	schema := make([]csvbind.ColumnDef, width)
	for i := range schema {
		schema[i] = csvbind.String()
	}
	p := csvbind.NewRow(schema, func(csvbind.Row) {}, opts...)

	if err := parseInput(p, path, stdin, enc); err != nil {
		return errors.Wrapf(err, "%s (code %d)", path, p.Status().Code)
	}

	st := p.Stats()
	_, err = fmt.Fprintf(out, "bytes\t%d\nrecords\t%d\nemitted\t%d\nfiltered\t%d\nheader\t%d\ndropped\t%d\n",
		st.Bytes, st.Records, st.Emitted, st.Filtered, st.HeaderSkipped, st.ConversionDropped)
	return err
}
