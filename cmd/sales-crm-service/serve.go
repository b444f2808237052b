package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"sales-crm-service/internal/config"
	httpapi "sales-crm-service/internal/http"
	"sales-crm-service/internal/notify"
	"sales-crm-service/internal/worker"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  `Start the HTTP API and, if enabled, the weekday lead quota scanner.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (overrides HTTP_ADDR)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Контекст для корректного завершения
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if serveAddr != "" {
		cfg.HTTPAddr = serveAddr
	}

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	notifier, closeNotifier, err := buildNotifier(cfg, logger)
	if err != nil {
		return err
	}
	defer closeNotifier()

	if cfg.QuotaScanEnabled {
		w, err := worker.NewQuotaWorker(a.quota, notifier, cfg.QuotaScanCron, cfg.Location, registry, logger)
		if err != nil {
			return err
		}
		w.Start()
		defer w.Stop()
	}

	handler := httpapi.NewHandler(a.services, httpapi.RouterConfig{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Location:       cfg.Location,
		Registry:       registry,
	}, logger)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	// Запуск сервера в горутине
	go func() {
		logger.Info("starting http server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}

	// Graceful Shutdown
	logger.Info("shutting down server")
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server shutdown error", slog.Any("err", err))
	}
	logger.Info("server stopped")
	return nil
}

// buildNotifier собирает получателей отчёта о норме: лог всегда,
// RabbitMQ и почта при наличии настроек.
func buildNotifier(c config.Config, log *slog.Logger) (notify.Notifier, func(), error) {
	notifiers := notify.Multi{notify.NewLogNotifier(log)}
	closers := []func(){}

	if c.AMQPURL != "" {
		n, err := notify.NewAMQPNotifier(c.AMQPURL)
		if err != nil {
			return nil, nil, fmt.Errorf("init amqp notifier: %w", err)
		}
		notifiers = append(notifiers, n)
		closers = append(closers, func() {
			if err := n.Close(); err != nil {
				log.Error("close amqp notifier", slog.Any("err", err))
			}
		})
	}
	if c.MailEnabled() {
		notifiers = append(notifiers, notify.NewMailNotifier(c.SMTPHost, c.SMTPPort, c.SMTPUser, c.SMTPPass, c.AlertEmailFrom, c.AlertEmailTo))
	}

	return notifiers, func() {
		for _, fn := range closers {
			fn()
		}
	}, nil
}
