// Package formatter renders checker verdicts for the terminal.
package formatter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/prooflab/stepcheck/check"
	"github.com/prooflab/stepcheck/internal/rules"
)

var (
	validStyle   = color.New(color.FgGreen, color.Bold)
	invalidStyle = color.New(color.FgRed, color.Bold)
	ruleStyle    = color.New(color.FgYellow)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	detailStyle  = color.New(color.FgRed)
	summaryStyle = color.New(color.FgWhite, color.Bold)
)

// Format renders per-line verdicts for each checked file.
func Format(results []check.FileResult) string {
	var builder strings.Builder
	for _, file := range results {
		builder.WriteString(fileStyle.Sprint(file.Path) + "\n")
		for _, line := range file.Results {
			if line.Report.IsValid() {
				builder.WriteString(fmt.Sprintf("  %s %-4s %s\n",
					validStyle.Sprint("✓"), line.ID, ruleStyle.Sprint(shortName(line.Rule))))
				continue
			}
			builder.WriteString(fmt.Sprintf("  %s %-4s %s\n",
				invalidStyle.Sprint("✗"), line.ID, ruleStyle.Sprint(shortName(line.Rule))))
			builder.WriteString("      " + detailStyle.Sprint(line.Report.Detail) + "\n")
		}
		invalid := file.InvalidCount()
		if invalid == 0 {
			builder.WriteString(summaryStyle.Sprintf("  %d step(s), all valid\n\n", len(file.Results)))
		} else {
			builder.WriteString(summaryStyle.Sprintf("  %d step(s), %d rejected\n\n", len(file.Results), invalid))
		}
	}
	return builder.String()
}

// lineJSON is the JSON shape of one verdict.
type lineJSON struct {
	ID     string `json:"id"`
	Rule   string `json:"rule"`
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
	Detail string `json:"detail,omitempty"`
}

type fileJSON struct {
	Path  string     `json:"path"`
	Lines []lineJSON `json:"lines"`
}

// FormatJSON renders the verdicts as JSON, grouped by file.
func FormatJSON(results []check.FileResult) ([]byte, error) {
	out := make([]fileJSON, 0, len(results))
	for _, file := range results {
		f := fileJSON{Path: file.Path, Lines: make([]lineJSON, 0, len(file.Results))}
		for _, line := range file.Results {
			l := lineJSON{ID: line.ID, Rule: line.Rule, Valid: line.Report.IsValid()}
			if !l.Valid {
				l.Reason = line.Report.Reason.String()
				l.Detail = line.Report.Detail
			}
			f.Lines = append(f.Lines, l)
		}
		out = append(out, f)
	}
	return json.MarshalIndent(out, "", "  ")
}

func shortName(ruleID string) string {
	r, err := rules.Lookup(ruleID)
	if err != nil {
		return ruleID
	}
	return r.ShortName()
}
