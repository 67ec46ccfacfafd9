package cmd

import (
	"errors"
	"log"

	"github.com/alexibraimov/sophifs/pkg"
	"github.com/spf13/cobra"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <plan>...",
	Short: "Remove the links created by install plans",
	Run: func(cmd *cobra.Command, args []string) {
		for _, plan := range loadPlans(args) {
			err := plan.Uninstall()
			if err != nil && !errors.Is(err, pkg.ErrPlanNotInstalled) {
				log.Fatal(err)
			}
		}
	},
}
