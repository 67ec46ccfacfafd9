package cmd

import (
	"log"

	"github.com/alexibraimov/sophifs/filesystem"
	"github.com/spf13/cobra"
)

var mkdirCmd = &cobra.Command{
	Use:   "mkdir <dir>...",
	Short: "Create directories, succeeding for those that already exist",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, arg := range args {
			if err := absPath(arg).MkdirAll(0755); err != nil {
				log.Fatal(err)
			}
		}
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <file>...",
	Short: "Delete files",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		paths := make([]filesystem.Path, len(args))
		for i, arg := range args {
			paths[i] = absPath(arg)
		}

		if err := filesystem.RemoveFiles(paths...); err != nil {
			log.Fatal(err)
		}
	},
}

var downloadCmd = &cobra.Command{
	Use:   "download <url> <path>",
	Short: "Download a file",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := filesystem.Download(cmd.Context(), args[0], absPath(args[1])); err != nil {
			log.Fatal(err)
		}
	},
}
