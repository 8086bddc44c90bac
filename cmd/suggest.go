package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prooflab/stepcheck/check"
)

var (
	suggestRule string
	suggestLine string
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [proof file]",
	Short: "Propose conclusions for a derived line from its premises",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 || suggestLine == "" {
			fmt.Println("error: Please provide a proof file and --line")
			os.Exit(1)
		}

		doc, err := check.LoadDocument(args[0])
		if err != nil {
			logger.Error("Error loading proof document", zap.Error(err))
			os.Exit(1)
		}

		ruleID, premises, err := check.PremisesFor(doc, suggestLine)
		if err != nil {
			logger.Error("Error resolving line", zap.Error(err))
			os.Exit(1)
		}
		if suggestRule != "" {
			ruleID = suggestRule
		}

		suggestions, ok, err := check.SuggestAutoFill(ruleID, premises)
		if err != nil {
			logger.Error("Error suggesting conclusions", zap.Error(err))
			os.Exit(1)
		}
		if !ok {
			fmt.Printf("%s has no suggestion for the premises of line %s\n", ruleID, suggestLine)
			return
		}
		for s := range suggestions {
			fmt.Println(s)
		}
	},
}

func init() {
	suggestCmd.Flags().StringVar(&suggestRule, "rule", "", "Rule to suggest for (defaults to the line's rule)")
	suggestCmd.Flags().StringVar(&suggestLine, "line", "", "ID of the derived line to suggest for")
}
