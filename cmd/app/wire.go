//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/askbase/faq-service/internal/bootstrap"
	"github.com/askbase/faq-service/internal/domain/faqbank"
	"github.com/askbase/faq-service/internal/infra/config"
	httpiface "github.com/askbase/faq-service/internal/interface/http"
	"github.com/askbase/faq-service/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideFAQConfig,
		provideEmbedder,
		provideBankRepository,
		provideUsageStore,
		faqbank.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
