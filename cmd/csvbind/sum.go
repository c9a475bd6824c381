package main

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/oleg578/csvbind"
)

func newSumCmd(flags *rootFlags) *cobra.Command {
	var key, value int

	cmd := &cobra.Command{
		Use:   "sum FILE",
		Short: "Sum a numeric column grouped by a key column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSum(flags, key, value, args[0], cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&key, "key", 0, "zero-based index of the grouping column")
	cmd.Flags().IntVar(&value, "value", 1, "zero-based index of the numeric column")
	return cmd
}

// sumSchema declares a string key and a float value, skipping every other
// column up to the wider of the two.
func sumSchema(key, value int) ([]csvbind.ColumnDef, error) {
	switch {
	case key < 0 || value < 0:
		return nil, errors.New("column indexes must not be negative")
	case key == value:
		return nil, errors.Errorf("--key and --value both select column %d", key)
	}

	schema := make([]csvbind.ColumnDef, max(key, value)+1)
	for i := range schema {
		schema[i] = csvbind.Skip()
	}
	schema[key] = csvbind.String()
	schema[value] = csvbind.Float64()
	return schema, nil
}

func runSum(flags *rootFlags, key, value int, path string, stdin io.Reader, out io.Writer) error {
	schema, err := sumSchema(key, value)
	if err != nil {
		return err
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

	totals := map[string]float64{}
	p := csvbind.NewRow(schema, func(r csvbind.Row) {
		k, _ := csvbind.Get[string](r, key)
		v, _ := csvbind.Get[float64](r, value)
		totals[k] += v
	}, opts...)

	if err := parseInput(p, path, stdin, enc); err != nil {
		return errors.Wrapf(err, "%s (code %d)", path, p.Status().Code)
	}

	for _, k := range slices.Sorted(maps.Keys(totals)) {
		if _, err := fmt.Fprintf(out, "%s\t%g\n", k, totals[k]); err != nil {
			return err
		}
	}
	return nil
}
