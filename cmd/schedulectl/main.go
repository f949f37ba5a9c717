package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	fileFlag   string
	outputFlag string
	rootCmd    = &cobra.Command{
		Use:           "schedulectl",
		Short:         "Offline conflict checks for activity and appointment schedules",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func main() {
	// check subcommand
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Report overlapping activities and appointments in a schedule file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(fileFlag, outputFlag, cmd.OutOrStdout())
		},
	}
	checkCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Schedule file, YAML or JSON (required)")
	checkCmd.Flags().StringVarP(&outputFlag, "output", "o", outputTable, "Output format: table or json")
	_ = checkCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(checkCmd)

	// intervals subcommand
	intervalsCmd := &cobra.Command{
		Use:   "intervals",
		Short: "Print the time window derived for every entity in a schedule file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIntervals(fileFlag, cmd.OutOrStdout())
		},
	}
	intervalsCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Schedule file, YAML or JSON (required)")
	_ = intervalsCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(intervalsCmd)

	// parse-time subcommand
	parseTimeCmd := &cobra.Command{
		Use:   "parse-time <time>",
		Short: "Show how a clock-time string is read, in minutes since midnight",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParseTime(args[0], cmd.OutOrStdout())
		},
	}
	rootCmd.AddCommand(parseTimeCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
