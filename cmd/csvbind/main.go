// Command csvbind aggregates CSV files from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type rootFlags struct {
	delimiter  string
	quote      string
	skipHeader bool
	skipBOM    bool
	comment    string
	encoding   string
	strict     bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:           "csvbind",
		Short:         "Typed aggregation over CSV files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.delimiter, "delimiter", ",", "field delimiter, a single byte")
	pf.StringVar(&flags.quote, "quote", `"`, "quote character, a single byte")
	pf.BoolVar(&flags.skipHeader, "skip-header", false, "ignore the first record")
	pf.BoolVar(&flags.skipBOM, "skip-bom", true, "strip a leading UTF-8 byte order mark")
	pf.StringVar(&flags.comment, "comment", "", "drop rows whose first field starts with this prefix")
	pf.StringVar(&flags.encoding, "encoding", "utf8", "input encoding: utf8, latin1 or windows-1252")
	pf.BoolVar(&flags.strict, "strict", false, "fail on the first unconvertible field instead of dropping the row")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "log parser activity")

	rootCmd.AddCommand(newSumCmd(&flags), newCountCmd(&flags))
	return rootCmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}
