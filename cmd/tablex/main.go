package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tsawler/tablex"
	"github.com/tsawler/tablex/csvout"
	"github.com/tsawler/tablex/htmldoc"
	"github.com/tsawler/tablex/log"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		input     string
		outputDir string
		debug     bool
	)

	cmd := &cobra.Command{
		Use:   "tablex",
		Short: "Extract tables from HTML files and save them as CSV",
		Long: `tablex ingests an HTML document from a file or URL, discovers every
table inside it (including tables nested within the cells of other
tables), normalizes each into a rectangular grid honoring colspan and
rowspan merges, and writes one CSV file per table.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), input, outputDir, debug)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input HTML file path or URL")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "output directory for CSV files")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug mode")
	cmd.MarkFlagRequired("input")

	return cmd
}

func run(out io.Writer, input, outputDir string, debug bool) error {
	logger := log.NewLogger("tablex")
	if debug {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	ex := tablex.Open(input)
	if debug {
		ex = ex.Debug(out)
	}

	htmlText, err := ex.HTML()
	if err != nil {
		return err
	}
	logger.Debug().Str("input", input).Int("bytes", len(htmlText)).Msg("loaded input")

	if debug {
		if doc, err := htmldoc.Parse(htmlText); err == nil && doc.Title() != "" {
			logger.Debug().Str("title", doc.Title()).Msg("document title")
		}
	}

	tbls, err := ex.Tables()
	if err != nil {
		return err
	}

	if len(tbls) == 0 {
		fmt.Fprintln(out, "No tables found in the input source.")
		return nil
	}

	logger.Debug().Int("tables", len(tbls)).Str("dir", outputDir).Msg("writing CSV files")
	if err := csvout.Write(tbls, outputDir); err != nil {
		return err
	}

	fmt.Fprintf(out, "Successfully extracted %d tables!\n", len(tbls))
	return nil
}
