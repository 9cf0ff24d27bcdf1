package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "campaign-vault/internal/adapter/http"
	"campaign-vault/internal/adapter/memory"
	"campaign-vault/internal/adapter/metrics"
	"campaign-vault/internal/adapter/postgres"
	"campaign-vault/internal/adapter/usecase"
	"campaign-vault/internal/adapter/wallet"
	"campaign-vault/internal/config"
	"campaign-vault/internal/config/configs"
	"campaign-vault/internal/core/domain"
	"campaign-vault/internal/core/port"
	"campaign-vault/internal/db"
)

// main is the entry point of the campaign vault. It loads configuration,
// selects the storage backend (optionally running database migrations),
// makes sure the configured campaign exists, wires vault, wallet and
// settlement gate, then starts the HTTP server. On receiving a termination
// signal it gracefully shuts down the server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := cfg.Log.New(os.Stdout, cfg.Env)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err = run(ctx, cfg, logger); err != nil {
		logger.Error("campaign vault stopped", slog.Any("error", err))
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	var (
		repo   port.CampaignRepository
		ledger port.AssetLedger
		funder db.Funder
	)
	switch cfg.Storage.Driver {
	case configs.StorageDriverMemory:
		ml := memory.NewLedger()
		repo, ledger, funder = memory.NewCampaignRepository(), ml, ml
		logger.Warn("using in-memory storage; state is lost on exit")
	default:
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return fmt.Errorf("database connection: %w", err)
		}
		defer pool.Close()
		pl := postgres.NewLedger(pool)
		repo, ledger, funder = postgres.NewCampaignRepository(pool), pl, pl
	}

	campaign, err := repo.EnsureCampaign(ctx, cfg.Campaign.Domain(time.Now()))
	if err != nil {
		return fmt.Errorf("ensure campaign: %w", err)
	}
	logger.Info("campaign loaded",
		slog.String("id", campaign.ID.String()),
		slog.String("beneficiary", string(campaign.Beneficiary)),
		slog.Uint64("target", uint64(campaign.Target)),
		slog.Time("expiration", campaign.Expiration))

	if cfg.Seed.Enabled {
		funded, err := db.Seed(ctx, funder, cfg.Seed, campaign.Vault)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		logger.Info("demo contributors funded",
			slog.Any("contributors", cfg.Seed.Contributors),
			slog.Int("funded", funded))
	}

	prom := metrics.NewPrometheus()
	vault := usecase.NewVault(campaign.ID, repo, ledger, logger.With(slog.String("component", "vault")), usecase.WithMetrics(prom), usecase.RequireGuards())
	w := wallet.New(campaign.Beneficiary, domain.Identity(cfg.Campaign.Controller), vault, logger.With(slog.String("component", "wallet")))
	gate := usecase.NewSettlementGate(w.Module(), vault, w, logger.With(slog.String("component", "gate")))
	svc := usecase.NewVaultUseCase(vault, gate)

	var opts []httpadapter.Option
	if cfg.Metrics.Enabled {
		opts = append(opts, httpadapter.WithMetrics(cfg.Metrics.Path, prom.Handler()))
	}
	handler := httpadapter.NewHandler(svc, logger, opts...)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("server gracefully stopped")
	return nil
}
