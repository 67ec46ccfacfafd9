package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var plansCmd = &cobra.Command{
	Use:   "plans <plan>...",
	Short: "List install plans and whether they are installed",
	Run: func(cmd *cobra.Command, args []string) {
		for _, plan := range loadPlans(args) {
			installed, err := plan.Installed()
			if err != nil {
				log.Fatal(err)
			}

			state := "not installed"
			if installed {
				state = "installed"
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", plan.Name(), state)
		}
	},
}
