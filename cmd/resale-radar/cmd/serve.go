package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jcloud242/resale-radar/internal/api"
	"github.com/jcloud242/resale-radar/internal/api/handlers"
	"github.com/jcloud242/resale-radar/internal/cache"
	"github.com/jcloud242/resale-radar/internal/config"
	"github.com/jcloud242/resale-radar/internal/ebay"
	"github.com/jcloud242/resale-radar/internal/engine"
	"github.com/jcloud242/resale-radar/internal/fees"
	"github.com/jcloud242/resale-radar/internal/notify"
	"github.com/jcloud242/resale-radar/internal/store"
	"github.com/jcloud242/resale-radar/internal/telemetry"
	"github.com/jcloud242/resale-radar/pkg/identify"
	"github.com/jcloud242/resale-radar/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and refresh scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tel, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:     cfg.Telemetry.Enabled,
		Endpoint:    cfg.Telemetry.Endpoint,
		ServiceName: cfg.Telemetry.ServiceName,
		Version:     Version,
	})
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	feeTable := fees.NewTable(cfg.Fees.Defaults(), cfg.Fees.Categories)

	estimateCache := cache.NewMemory()
	estimateCache.StartSweeper(ctx, time.Minute)

	deps := api.Deps{
		Store:    st,
		FeeTable: feeTable,
		Cache:    estimateCache,
		Identify: identify.DefaultChain(),
		Estimate: handlers.EstimateParams{
			BinFactor:  cfg.Estimator.BinFactor,
			CacheTTL:   cfg.Estimator.CacheTTL,
			SampleSize: cfg.Estimator.SampleLimit,
		},
		HistoryLimit: cfg.Estimator.HistoryLimit,
		Version:      Version,
		Log:          log,
	}

	var scheduler *engine.Scheduler

	if cfg.Ebay.AppID != "" && cfg.Ebay.CertID != "" {
		tokens := ebay.NewOAuthTokenProvider(
			cfg.Ebay.AppID,
			cfg.Ebay.CertID,
			ebay.WithTokenURL(cfg.Ebay.TokenURL),
		)
		rl := ebay.NewRateLimiter(
			cfg.Ebay.RateLimit.PerSecond,
			cfg.Ebay.RateLimit.Burst,
			cfg.Ebay.RateLimit.DailyLimit,
		)
		browse := ebay.NewBrowseClient(
			tokens,
			ebay.WithBrowseURL(cfg.Ebay.BrowseURL),
			ebay.WithMarketplace(cfg.Ebay.Marketplace),
			ebay.WithRateLimiter(rl),
		)
		sampler := ebay.NewSampler(
			browse,
			ebay.WithSamplerLogger(logger.Component(log, "market")),
		)

		deps.Search = browse
		deps.Sampler = sampler
		deps.RateLimiter = rl
		deps.Analytics = ebay.NewAnalyticsClient(tokens)

		var notifier notify.Notifier = notify.NewNoOpNotifier(log)
		if cfg.Notify.DiscordWebhook != "" {
			notifier = notify.NewDiscordNotifier(cfg.Notify.DiscordWebhook)
		}

		eng := engine.NewEngine(
			st,
			sampler,
			feeTable,
			engine.WithLogger(logger.Component(log, "engine")),
			engine.WithBinFactor(cfg.Estimator.BinFactor),
			engine.WithSampleSize(cfg.Estimator.SampleLimit),
			engine.WithStaggerOffset(cfg.Schedule.StaggerOffset),
			engine.WithNotifier(notifier),
			engine.WithChangeThreshold(cfg.Notify.ChangeThresholdPct),
		)
		deps.Refresher = eng

		if recovered, err := eng.RecoverStale(ctx, 2*cfg.Schedule.RefreshInterval); err != nil {
			log.Warn("stale job recovery failed", "error", err)
		} else if recovered > 0 {
			log.Info("recovered stale job runs from previous instance", "count", recovered)
		}

		scheduler, err = engine.NewScheduler(eng, cfg.Schedule.RefreshInterval, log)
		if err != nil {
			return fmt.Errorf("building scheduler: %w", err)
		}
		scheduler.Start()
	} else {
		log.Warn("ebay credentials not configured, market search and refresh disabled")
	}

	e := api.NewRouter(deps)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr, "version", Version)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if scheduler != nil {
		select {
		case <-scheduler.Stop().Done():
		case <-shutdownCtx.Done():
			log.Warn("scheduler jobs did not finish before shutdown deadline")
		}
	}

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	if err := tel.Shutdown(shutdownCtx); err != nil {
		log.Warn("telemetry shutdown failed", "error", err)
	}

	log.Info("server stopped")
	return nil
}
