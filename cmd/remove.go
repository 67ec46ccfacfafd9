package cmd

import (
	"fmt"
	"log"

	"github.com/alexibraimov/sophifs/filesystem"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var lazy bool

var removeCmd = &cobra.Command{
	Use:   "remove <dir>...",
	Short: "Remove directory trees",
	Long: `Remove directory trees. With --lazy a tree that cannot be removed right away,
for example because another process holds files open in it, has every file
scheduled for deletion at the next restart instead of failing.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		remover := filesystem.NewRemover(afero.NewOsFs(), platform())

		for _, arg := range args {
			dir := absPath(arg)

			if !lazy {
				if err := remover.RemoveOrFail(dir.String()); err != nil {
					log.Fatal(err)
				}

				continue
			}

			report := remover.RemoveBestEffort(dir.String())
			if !report.Removed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d files deferred to restart, %d could not be scheduled\n", dir, report.Deferred, report.Failed)
			}
		}
	},
}

var emptyCmd = &cobra.Command{
	Use:   "empty <dir>",
	Short: "Report whether a directory has no entries",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		remover := filesystem.NewRemover(afero.NewOsFs(), platform())

		empty, err := remover.IsEmpty(absPath(args[0]).String())
		if err != nil {
			log.Fatal(err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), empty)
	},
}

func init() {
	removeCmd.Flags().BoolVarP(&lazy, "lazy", "l", false, "defer files that cannot be removed now to the next restart")
}
