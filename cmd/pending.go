package cmd

import (
	"fmt"
	"log"

	"github.com/alexibraimov/sophifs/filesystem"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "Inspect or carry out deletions deferred to the next boot",
	Long: `Inspect or carry out deletions deferred to the next boot. On Windows the
operating system performs deferred deletions itself and the registry stays
empty. Elsewhere run "sophifs pending flush" early during boot.`,
}

var pendingListCmd = &cobra.Command{
	Use:   "list",
	Short: "List paths waiting for deletion",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		paths, err := registry().List()
		if err != nil {
			log.Fatal(err)
		}

		for _, path := range paths {
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
	},
}

var pendingFlushCmd = &cobra.Command{
	Use:   "flush",
	Short: "Delete every path waiting for deletion",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		remaining, err := registry().Flush()
		for _, path := range remaining {
			cmd.PrintErrf("still pending: %s\n", path)
		}

		if err != nil {
			log.Fatal(err)
		}
	},
}

func registry() *filesystem.PendingRegistry {
	return filesystem.NewPendingRegistry(absPath(viper.GetString("registry")))
}

func init() {
	pendingCmd.AddCommand(pendingListCmd)
	pendingCmd.AddCommand(pendingFlushCmd)
}
