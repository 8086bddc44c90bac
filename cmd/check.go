package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prooflab/stepcheck/check"
	"github.com/prooflab/stepcheck/formatter"
)

var (
	checkJSONOutput bool
	outPath         string
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Verify every step of the given proof documents",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		checker, err := check.New(cfgFile, logger)
		if err != nil {
			logger.Fatal("Failed to initialize checker", zap.Error(err))
		}

		runCheckProcess(ctx, checker, args, checkJSONOutput, outPath)
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSONOutput, "json", false, "Output verdicts in JSON format")
	checkCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
}

func runCheckProcess(ctx context.Context, checker *check.Checker, paths []string, isJSON bool, jsonOutput string) {
	results, err := check.ProcessFiles(ctx, logger, checker, paths)
	if err != nil {
		logger.Error("Error processing files", zap.Error(err))
		os.Exit(1)
	}

	printResults(results, isJSON, jsonOutput)

	for _, file := range results {
		if file.InvalidCount() > 0 {
			os.Exit(1)
		}
	}
}

func printResults(results []check.FileResult, isJSON bool, jsonOutput string) {
	if !isJSON {
		fmt.Print(formatter.Format(results))
		return
	}

	d, err := formatter.FormatJSON(results)
	if err != nil {
		logger.Error("Error marshalling results", zap.Error(err))
		os.Exit(1)
	}
	if jsonOutput == "" {
		fmt.Println(string(d))
		return
	}
	if err := os.WriteFile(jsonOutput, d, 0o644); err != nil {
		logger.Error("Error writing output file", zap.Error(err))
		os.Exit(1)
	}
}
