package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lucidsearch/luq"
	"github.com/lucidsearch/luq/formatter"
	"github.com/lucidsearch/luq/query"
)

// Exit codes for scripted callers.
const (
	exitEmptyQuery  = 2
	exitSyntaxError = 3
)

var (
	parseJSONOutput bool
	parseOutPath    string
)

var parseCmd = &cobra.Command{
	Use:   "parse [query]",
	Short: "Parse a query and print its narrative, deterministic, and AST forms",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		queryString := strings.Join(args, " ")

		result, err := luq.New(luq.WithLogger(logger)).Parse(queryString)
		if err != nil {
			reportParseError(err)
		}

		if parseJSONOutput {
			printResultJSON(result, parseOutPath)
			return
		}
		printResultConsole(result)
	},
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSONOutput, "json", false, "Output the result as JSON")
	parseCmd.Flags().StringVarP(&parseOutPath, "output", "o", "", "Output path (when using JSON)")
}

// reportParseError prints a diagnostic and exits with an error-class
// specific code. It does not return.
func reportParseError(err error) {
	var syntaxErr *query.SyntaxError
	switch {
	case errors.Is(err, query.ErrEmptyQuery):
		fmt.Fprintln(os.Stderr, "error: query is empty")
		os.Exit(exitEmptyQuery)
	case errors.As(err, &syntaxErr):
		fmt.Fprintf(os.Stderr, "error: %s\n", syntaxErr)
		os.Exit(exitSyntaxError)
	default:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printResultJSON(result *luq.QueryResult, outPath string) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Error("Failed to encode result", zap.Error(err))
		os.Exit(1)
	}
	if outPath == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		logger.Error("Failed to write output file", zap.String("path", outPath), zap.Error(err))
		os.Exit(1)
	}
	fmt.Printf("Result written to %s\n", outPath)
}

func printResultConsole(result *luq.QueryResult) {
	astJSON, err := result.ASTJSON.JSON()
	if err != nil {
		logger.Error("Failed to encode AST", zap.Error(err))
		os.Exit(1)
	}
	fmt.Print(formatter.Console(formatter.ConsoleData{
		Query:         result.Query,
		Narrative:     result.NarrativeText,
		Deterministic: result.DeterministicText,
		ASTJSON:       string(astJSON),
	}))
}
