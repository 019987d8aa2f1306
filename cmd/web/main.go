package main

import (
	"context"
	"time"

	"github.com/prajwalcordiero/online-hackathon-1/internal/api"
	"github.com/prajwalcordiero/online-hackathon-1/internal/config"
	"github.com/prajwalcordiero/online-hackathon-1/internal/scheduler"
	"github.com/prajwalcordiero/online-hackathon-1/internal/usecases/insighting"
	"github.com/prajwalcordiero/online-hackathon-1/internal/usecases/loading"
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

	loaderService := loading.NewService(cfg)
	insightService := insighting.NewService()

	// Inicializa o monitor periódico do dataset
	datasetMonitorService := scheduler.NewDatasetMonitorService(
		loaderService,
		insightService,
		cfg,
	)

	if err := datasetMonitorService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do monitor do dataset")
	} else {
		logrus.Info("Agendador do monitor do dataset iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		loaderService,
		insightService,
		datasetMonitorService,
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
