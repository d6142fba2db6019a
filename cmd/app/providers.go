package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/askbase/faq-service/internal/domain/faqbank"
	"github.com/askbase/faq-service/internal/infra/bankrepo"
	"github.com/askbase/faq-service/internal/infra/config"
	"github.com/askbase/faq-service/internal/infra/embedding"
	"github.com/askbase/faq-service/internal/infra/llm/openai"
	"github.com/askbase/faq-service/internal/infra/usagestore"
)

func provideFAQConfig(cfg *config.Config) faqbank.Config {
	return faqbank.Config{
		TopTrending: cfg.FAQ.TopTrending,
	}
}

func provideEmbedder(cfg *config.Config, logger *slog.Logger) (faqbank.Embedder, error) {
	if cfg.Embedding.Provider == "deterministic" {
		logger.Info("using deterministic embedder", "dimension", cfg.Embedding.Dimension)
		return embedding.NewDeterministicEmbedder(cfg.Embedding.Dimension), nil
	}
	if strings.TrimSpace(cfg.Embedding.APIKey) == "" {
		logger.Warn("embedding api key not set, using deterministic embedder")
		return embedding.NewDeterministicEmbedder(cfg.Embedding.Dimension), nil
	}
	client, err := openai.NewClient(cfg.Embedding.APIKey, cfg.Embedding.BaseURL)
	if err != nil {
		return nil, err
	}
	logger.Info("openai embedder enabled", "model", cfg.Embedding.Model)
	return embedding.NewOpenAIEmbedder(client, cfg.Embedding.Model, cfg.Embedding.Dimension, logger), nil
}

func provideBankRepository(cfg *config.Config, logger *slog.Logger) faqbank.BankRepository {
	fallback := bankrepo.NewMemoryRepository()
	dsn := strings.TrimSpace(cfg.Store.Postgres.DSN)
	if dsn == "" {
		logger.Info("postgres dsn not set, using memory repository")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repository", "error", err)
		return fallback
	}
	if cfg.Store.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Store.Postgres.MaxConns
	}
	if cfg.Store.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Store.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repository", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repository", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("postgres bank repository enabled")
	return bankrepo.NewPostgresRepository(pool)
}

func provideUsageStore(cfg *config.Config, logger *slog.Logger) faqbank.UsageStore {
	if cfg.Store.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return usagestore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return usagestore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
		} else {
			logger.Info("valkey usage store enabled", "addr", cfg.Store.Valkey.Addr)
			return usagestore.NewValkeyStore(client, "faq")
		}
	}
	return usagestore.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Store.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Store.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Store.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}
