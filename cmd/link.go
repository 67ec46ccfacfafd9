package cmd

import (
	"fmt"
	"log"

	"github.com/alexibraimov/sophifs/filesystem"
	"github.com/spf13/cobra"
)

var relative bool

var linkCmd = &cobra.Command{
	Use:   "link <link> <target>",
	Short: "Create a directory symbolic link",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		link := absPath(args[0])
		target := absPath(args[1])

		linker := filesystem.NewLinker(platform())
		if err := linker.CreateDirectoryLink(link.String(), target.String(), relative); err != nil {
			log.Fatal(err)
		}
	},
}

var isLinkCmd = &cobra.Command{
	Use:   "islink <path>",
	Short: "Report whether a path is a symbolic link",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		isLink, err := absPath(args[0]).IsLink()
		if err != nil {
			log.Fatal(err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), isLink)
	},
}

func init() {
	linkCmd.Flags().BoolVarP(&relative, "relative", "r", false, "store the target relative to the link's directory")
}
