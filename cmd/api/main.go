package main

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cogs-reconciler-api/infrastructure/database/postgres"
	"github.com/vfg2006/cogs-reconciler-api/infrastructure/integrator/quickbooks"
	"github.com/vfg2006/cogs-reconciler-api/infrastructure/integrator/quickbooks/qbclient"
	"github.com/vfg2006/cogs-reconciler-api/infrastructure/integrator/sellercloud"
	"github.com/vfg2006/cogs-reconciler-api/infrastructure/integrator/sellercloud/sellercloudclient"
	"github.com/vfg2006/cogs-reconciler-api/infrastructure/repository"
	"github.com/vfg2006/cogs-reconciler-api/internal/api"
	"github.com/vfg2006/cogs-reconciler-api/internal/config"
	"github.com/vfg2006/cogs-reconciler-api/internal/notifier"
	"github.com/vfg2006/cogs-reconciler-api/internal/report"
	"github.com/vfg2006/cogs-reconciler-api/internal/scheduler"
	"github.com/vfg2006/cogs-reconciler-api/internal/usecases/reconciling"
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

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	tokenRepo := repository.NewRefreshTokenRepository(pgConn)
	runRepo := repository.NewRunRepository(pgConn)

	alerts := notifier.NewEmailNotifier(cfg, notifier.NewSMTPTransport(cfg))

	sellerCloudClient := sellercloudclient.NewClient(cfg, alerts)
	sellerCloudIntegrator := sellercloud.New(cfg, sellerCloudClient)

	quickBooksClient := qbclient.NewClient(cfg)
	quickBooksIntegrator := quickbooks.New(cfg, quickBooksClient)

	reportWriter := report.NewXLSXWriter(cfg)

	reconciler := reconciling.NewService(
		cfg,
		sellerCloudIntegrator,
		quickBooksIntegrator,
		tokenRepo,
		runRepo,
		reportWriter,
		alerts,
	)

	cogsSyncService := scheduler.NewCogsSyncService(reconciler, alerts, cfg)

	// Sem agendamento habilitado o binário roda como job: executa uma rodada
	// única e termina, devolvendo o exit code ao orquestrador externo.
	if !cfg.CogsSync.Enabled {
		logrus.Info("Agendamento desabilitado, executando reconciliação única")

		if err := cogsSyncService.RunOnce(ctx); err != nil {
			logrus.WithError(err).Error("Reconciliação única terminou com erro")
			os.Exit(1)
		}
		return
	}

	if err := cogsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reconciliação de COGS")
	} else {
		logrus.Info("Agendador de reconciliação de COGS iniciado com sucesso")
	}

	server, err := api.New(cfg, cogsSyncService, runRepo)
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

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) postgres.Conn {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
