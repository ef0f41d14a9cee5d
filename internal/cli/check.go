package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/vietddude/bfhl/internal/check"
	"github.com/vietddude/bfhl/internal/core/config"
)

var (
	checkURL       string
	checkScenarios string
	checkOut       string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run a scenarios file against a running server",
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkURL, "url", "http://localhost:8000", "base URL of the server")
	checkCmd.Flags().StringVar(&checkScenarios, "scenarios", "scenarios.yaml", "scenarios file")
	checkCmd.Flags().StringVar(&checkOut, "out", "", "write the JSON report to this file")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	setupLogging(config.LoggingConfig{Level: "info", Format: "text"}, isDebug)

	suite, err := check.LoadSuite(checkScenarios)
	if err != nil {
		return err
	}

	report, err := check.NewRunner(checkURL, nil).Run(cmd.Context(), suite)
	if err != nil {
		return err
	}

	for _, r := range report.Results {
		status := "PASS"
		if !r.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s/%s\t%s\n", status, r.Scenario, r.Name, r.Duration.Round(time.Millisecond))
		for _, e := range r.Errors {
			fmt.Fprintf(cmd.OutOrStdout(), "\t  error: %s\n", e)
		}
		for _, w := range r.Warnings {
			fmt.Fprintf(cmd.OutOrStdout(), "\t  warning: %s\n", w)
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), report.Summary())

	if checkOut != "" {
		if err := report.WriteFile(checkOut); err != nil {
			return err
		}
		slog.Info("Report written", "path", checkOut)
	}

	if report.Failed > 0 {
		return fmt.Errorf("%d of %d checks failed", report.Failed, report.Total)
	}
	return nil
}
