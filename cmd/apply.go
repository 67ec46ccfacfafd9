package cmd

import (
	"log"

	"github.com/AlecAivazis/survey/v2"
	"github.com/alexibraimov/sophifs/pkg"
	"github.com/spf13/cobra"
)

var interactive bool
var options pkg.ApplyOptions

func interactiveFilter(plans []pkg.Plan) ([]pkg.Plan, error) {
	names := make([]string, len(plans))
	for i, plan := range plans {
		names[i] = plan.Name()
	}

	var selected []int
	prompt := &survey.MultiSelect{
		Message: "Choose plans to apply",
		Options: names,
	}

	if err := survey.AskOne(prompt, &selected, survey.WithValidator(survey.Required)); err != nil {
		return nil, err
	}

	filtered := make([]pkg.Plan, len(selected))
	for i, index := range selected {
		filtered[i] = plans[index]
	}

	return filtered, nil
}

func loadPlans(args []string) []pkg.Plan {
	p := platform()

	var plans []pkg.Plan
	for _, arg := range args {
		loader := pkg.Loader{
			Root:     absPath(arg),
			Platform: p,
		}

		plan, err := loader.Load()
		if err != nil {
			log.Fatal(err)
		}

		plans = append(plans, plan)
	}

	return plans
}

var applyCmd = &cobra.Command{
	Use:   "apply <plan>...",
	Short: "Apply install plans",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			log.Fatal("provide at least one plan directory")
		}

		plans := loadPlans(args)

		if interactive {
			var err error
			plans, err = interactiveFilter(plans)
			if err != nil {
				log.Fatal(err)
			}
		}

		if err := pkg.Apply(cmd.Context(), options, plans...); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	applyCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "start an interactive session to filter the plans passed as arguments before applying")
	applyCmd.Flags().BoolVarP(&options.Delete, "delete", "D", false, "uninstall the plans")
}
