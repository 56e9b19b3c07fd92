package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"msforge/core/database"
	"msforge/core/diff"
	"msforge/core/msdata"
	"msforge/feature/compare"
	"msforge/feature/compare/models"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	diffRequest compare.Request
	diffFormat  string
	diffColor   string
	diffRecord  bool
)

// diffCmd compares two snapshots.
var diffCmd = &cobra.Command{
	Use:   "diff <a> <b>",
	Short: "Compare two document snapshots",
	Long: `Compares two snapshots and prints what is present only in A ("+")
and only in B ("-"), followed by a one line summary.

Arguments are local .json/.msgpack files or storage:<object> keys.
The exit status is 0 when the documents are equal and 1 when they differ.

Examples:
  diff run1.json run2.json
  diff --precision 1e-4 --ignore-chromatograms storage:a.msgpack storage:b.msgpack
  diff --format yaml --record a.json b.json`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	f := diffCmd.Flags()
	f.Float64Var(&diffRequest.Precision, "precision", 0, "relative tolerance for binary data (default from config, 1e-6)")
	f.BoolVar(&diffRequest.IgnoreMetadata, "ignore-metadata", false, "compare only identity, precursors and binary data")
	f.BoolVar(&diffRequest.IgnoreChromatograms, "ignore-chromatograms", false, "skip the chromatogram list")
	f.BoolVar(&diffRequest.IgnoreSpectra, "ignore-spectra", false, "skip the spectrum list")
	f.BoolVar(&diffRequest.IgnoreIdentity, "ignore-identity", false, "ignore element ids and indexes")
	f.BoolVar(&diffRequest.IgnoreVersions, "ignore-versions", false, "ignore document and software versions")
	f.BoolVar(&diffRequest.IgnoreDataProcessing, "ignore-data-processing", false, "skip list processing records")
	f.BoolVar(&diffRequest.IgnoreExtraBinaryDataArrays, "ignore-extra-binary-data-arrays", false, "compare only the first two binary arrays")
	f.StringVar(&diffFormat, "format", "text", "output format: text, json or yaml")
	f.StringVar(&diffColor, "color", "auto", "colorize text output: auto, always or never")
	f.BoolVar(&diffRecord, "record", false, "store the report in the configured database")

	RootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	e, err := newEnv(args...)
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	docs, err := e.loadAll(ctx, args)
	if err != nil {
		return err
	}

	opts := append(diffRequest.Options(e.cfg.Diff), diff.WithLogger(e.logger))
	res, err := diff.Documents(docs[0], docs[1], opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := writeResult(out, res, diffFormat, useColor(out, diffColor)); err != nil {
		return err
	}

	if diffRecord {
		db, err := database.Connect(e.cfg.Database)
		if err != nil {
			return err
		}
		svc := compare.NewService(nil, db, e.cfg.Diff, nil, e.logger)
		if err := svc.Migrate(); err != nil {
			return err
		}
		report := models.NewReport(uuid.NewString(), args[0], args[1], res.Report())
		if err := svc.Record(ctx, report); err != nil {
			return err
		}
		e.logger.Info("Report recorded", zap.String("id", report.ID))
	}

	if res.Different() {
		return errDifferent
	}
	return nil
}

func writeResult(w io.Writer, res *diff.Result[*msdata.Document], format string, color bool) error {
	switch format {
	case "text":
		if err := diff.Format(w, res, color); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w, diff.FormatStats(res.Stats()))
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res.Report())
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(res.Report())
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func useColor(w io.Writer, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
