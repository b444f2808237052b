// Package main запускает CRM-сервис отдела продаж: HTTP API, миграции и проверку нормы лидов.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"sales-crm-service/internal/config"
)

var (
	cfg    config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sales-crm-service",
	Short: "Sales CRM HTTP API",
	Long:  "Sales CRM tracks leads, daily rep reports, lead quota alerts, revenue analytics and sales teams.",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		// Инициализация логгера (JSON)
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return nil
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
