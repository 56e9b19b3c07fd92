package cmd

import (
	"fmt"

	"msforge/core/snapshot"

	"github.com/spf13/cobra"
)

// snapshotsCmd is the parent command for bucket maintenance.
var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "Manage snapshots stored in the bucket",
}

var snapshotsListCmd = &cobra.Command{
	Use:   "list [prefix]",
	Short: "List snapshot keys in the bucket",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix := ""
		if len(args) == 1 {
			prefix = args[0]
		}
		e, err := newEnv(snapshot.StoragePrefix)
		if err != nil {
			return err
		}
		defer e.logger.Sync()

		keys, err := e.store.List(cmd.Context(), prefix)
		if err != nil {
			return err
		}
		for _, key := range keys {
			fmt.Fprintln(cmd.OutOrStdout(), key)
		}
		return nil
	},
}

var snapshotsRemoveCmd = &cobra.Command{
	Use:   "rm <key>...",
	Short: "Delete snapshots from the bucket",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(args...)
		if err != nil {
			return err
		}
		defer e.logger.Sync()

		for _, key := range args {
			if err := e.store.Delete(cmd.Context(), key); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "deleted", key)
		}
		return nil
	},
}

func init() {
	snapshotsCmd.AddCommand(snapshotsListCmd, snapshotsRemoveCmd)
	RootCmd.AddCommand(snapshotsCmd)
}
