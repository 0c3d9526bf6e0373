package main

import (
	"context"
	"time"

	"github.com/pventures/revops-dashboard-api/infrastructure/datagen"
	"github.com/pventures/revops-dashboard-api/infrastructure/integrator/gemini"
	"github.com/pventures/revops-dashboard-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/pventures/revops-dashboard-api/infrastructure/repository"
	"github.com/pventures/revops-dashboard-api/internal/api"
	"github.com/pventures/revops-dashboard-api/internal/config"
	"github.com/pventures/revops-dashboard-api/internal/scheduler"
	"github.com/pventures/revops-dashboard-api/internal/usecases/insighting"
	"github.com/pventures/revops-dashboard-api/internal/usecases/portfolio"
	"github.com/pventures/revops-dashboard-api/internal/usecases/ranking"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	portfolioRepo := repository.NewPortfolioRepository()
	generator := datagen.NewGenerator()

	portfolioService := portfolio.NewService(portfolioRepo, generator)

	// O estado inicial da sessão é o portfólio de demonstração; importações
	// de planilha substituem o snapshot por inteiro
	portfolioService.LoadDemo()

	geminiClient := geminiclient.NewClient(cfg)
	supplementalService := gemini.New(cfg, geminiClient)
	if cfg.Gemini.APIKey == "" {
		logrus.Info("Integração com o Gemini desabilitada (GEMINI_API_KEY vazia); insights apenas por regras")
	}

	insightService := insighting.NewService(cfg, supplementalService)
	rankerService := ranking.NewService()

	// Agendador de regeneração do snapshot de demonstração
	demoRefreshService := scheduler.NewDemoRefreshService(portfolioService, cfg)
	if err := demoRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de regeneração de demonstração")
	} else {
		logrus.Info("Agendador de regeneração de demonstração iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		portfolioService,
		insightService,
		rankerService,
		demoRefreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
