package cmd

import (
	"msforge/feature/merge"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var mergeID string

// mergeCmd concatenates several snapshots into one document.
var mergeCmd = &cobra.Command{
	Use:   "merge <out> <in>...",
	Short: "Merge snapshots into one document",
	Long: `Concatenates the spectra and chromatograms of every input, in argument
order, and unions their metadata. Equal metadata entries are kept once.

Examples:
  merge merged.json part1.json part2.json
  merge --id combined storage:merged.msgpack storage:a.msgpack storage:b.msgpack`,
	Args: cobra.MinimumNArgs(2),
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().StringVar(&mergeID, "id", "", "id of the merged document (default: input ids joined by +)")

	RootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	e, err := newEnv(args...)
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	docs, err := e.loadAll(cmd.Context(), args[1:])
	if err != nil {
		return err
	}

	opts := []merge.Option{merge.WithLogger(e.logger)}
	if mergeID != "" {
		opts = append(opts, merge.WithID(mergeID))
	}
	merged, err := merge.Documents(docs, opts...)
	if err != nil {
		return err
	}

	if err := e.store.Save(cmd.Context(), args[0], merged); err != nil {
		return err
	}
	e.logger.Info("Documents merged", zap.Int("inputs", len(docs)), zap.String("out", args[0]))
	return nil
}
