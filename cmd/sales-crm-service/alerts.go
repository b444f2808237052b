package main

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Print today's lead quota alerts as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// stdout занят JSON-выводом, логи уходят в stderr.
		logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))

		a, err := newApp(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer a.close()

		alerts, err := a.quota.LeadQuotaAlerts(cmd.Context())
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(alerts)
	},
}

func init() {
	rootCmd.AddCommand(alertsCmd)
}
