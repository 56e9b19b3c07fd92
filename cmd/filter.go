package cmd

import (
	"errors"

	"msforge/core/msdata"
	"msforge/feature/filter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	filterIndexes  string
	filterIDs      []string
	filterMSLevels string
)

// filterCmd keeps a subset of the spectra.
var filterCmd = &cobra.Command{
	Use:   "filter <in> <out>",
	Short: "Keep a subset of spectra",
	Long: `Keeps the spectra selected by index, id or ms level. Spectra are
re-indexed densely. Several selectors are applied one after another.

Examples:
  filter --indexes 0-99 in.json out.json
  filter --ids "scan=10,scan=20" in.json out.json
  filter --ms-levels 2- in.msgpack out.msgpack`,
	Args: cobra.ExactArgs(2),
	RunE: runFilter,
}

func init() {
	f := filterCmd.Flags()
	f.StringVar(&filterIndexes, "indexes", "", "index ranges to keep, e.g. 0-9,20,30-")
	f.StringSliceVar(&filterIDs, "ids", nil, "spectrum ids to keep")
	f.StringVar(&filterMSLevels, "ms-levels", "", "ms levels to keep, e.g. 1 or 2-")

	RootCmd.AddCommand(filterCmd)
}

func filterPredicates() ([]filter.Predicate, error) {
	var preds []filter.Predicate
	if filterIndexes != "" {
		p, err := filter.NewIndexSet(filterIndexes)
		if err != nil {
			return nil, err
		}
		preds = append(preds, p)
	}
	if len(filterIDs) > 0 {
		preds = append(preds, filter.NewIDSet(filterIDs...))
	}
	if filterMSLevels != "" {
		p, err := filter.NewMSLevelSet(filterMSLevels)
		if err != nil {
			return nil, err
		}
		preds = append(preds, p)
	}
	if len(preds) == 0 {
		return nil, errors.New("one of --indexes, --ids or --ms-levels is required")
	}
	return preds, nil
}

func runFilter(cmd *cobra.Command, args []string) error {
	preds, err := filterPredicates()
	if err != nil {
		return err
	}

	e, err := newEnv(args...)
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	doc, err := e.store.Load(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	var list msdata.SpectrumList = doc.Run.SpectrumList
	before := 0
	if list != nil {
		before = list.Size()
	}
	for _, p := range preds {
		if list, err = filter.New(list, p); err != nil {
			return err
		}
	}
	doc.Run.SpectrumList = list

	if err := e.store.Save(cmd.Context(), args[1], doc); err != nil {
		return err
	}
	e.logger.Info("Spectra filtered",
		zap.Int("before", before),
		zap.Int("after", list.Size()),
		zap.String("out", args[1]),
	)
	return nil
}
