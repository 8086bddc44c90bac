package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/prooflab/stepcheck/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the inference rules in catalogue order",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSHORT\tNAME\tTAGS\tAUTO-FILL")
		for _, entry := range rules.All() {
			tags := make([]string, 0, 2)
			for _, t := range entry.Rule.Types() {
				tags = append(tags, t.String())
			}
			autoFill := ""
			if entry.Rule.CanAutoFill() {
				autoFill = "yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				entry.ID, entry.Rule.ShortName(), entry.Rule.Name(), strings.Join(tags, ","), autoFill)
		}
		_ = w.Flush()
	},
}
