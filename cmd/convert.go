package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// convertCmd re-encodes a snapshot; formats follow the file extensions.
var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Convert a snapshot between json and msgpack",
	Long: `Reads a snapshot and writes it in the format given by the output
extension (.json, .msgpack or .mpk). Either side may be a storage: key.

Examples:
  convert run.json run.msgpack
  convert run.msgpack storage:runs/run.msgpack`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(args...)
		if err != nil {
			return err
		}
		defer e.logger.Sync()

		doc, err := e.store.Load(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if err := e.store.Save(cmd.Context(), args[1], doc); err != nil {
			return err
		}
		e.logger.Info("Snapshot converted", zap.String("in", args[0]), zap.String("out", args[1]))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(convertCmd)
}
