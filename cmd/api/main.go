package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/panel-billing-api/infrastructure/database/postgres"
	"github.com/vfg2006/panel-billing-api/infrastructure/repository"
	"github.com/vfg2006/panel-billing-api/internal/api"
	"github.com/vfg2006/panel-billing-api/internal/config"
	"github.com/vfg2006/panel-billing-api/internal/scheduler"
	"github.com/vfg2006/panel-billing-api/internal/usecases/billing"
	"github.com/vfg2006/panel-billing-api/internal/usecases/paneling"
	"github.com/vfg2006/panel-billing-api/internal/usecases/rating"
	"github.com/vfg2006/panel-billing-api/internal/usecases/reporting"
	"github.com/vfg2006/panel-billing-api/internal/usecases/summarizing"
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

	panelRepo := repository.NewPanelRepository(pgConn)
	eventRepo := repository.NewPanelEventRepository(pgConn)
	billingRepo := repository.NewMonthlyBillingRepository(pgConn)
	summaryRepo := repository.NewMonthlySummaryRepository(pgConn)
	yearlyRateRepo := repository.NewYearlyRateRepository(pgConn)

	rateResolver := rating.NewService(yearlyRateRepo)
	summarizer := summarizing.NewService(billingRepo, summaryRepo)

	billingService := billing.NewService(
		panelRepo,
		eventRepo,
		billingRepo,
		rateResolver,
		summarizer,
		cfg,
	)

	panelService := paneling.NewService(panelRepo)
	reportService := reporting.NewService(billingRepo, summaryRepo)

	// Inicializa os agendadores de regeneração e de reparo de resumos
	regenerationService := scheduler.NewBillingRegenerationService(billingService, cfg)
	summaryRepairService := scheduler.NewSummaryRepairService(summarizer, cfg)

	// Inicia os agendadores em background
	if err := regenerationService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de regeneração mensal de faturamento")
	} else {
		logrus.Info("Agendador de regeneração mensal de faturamento iniciado com sucesso")
	}

	if err := summaryRepairService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reparo de resumos mensais")
	} else {
		logrus.Info("Agendador de reparo de resumos mensais iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		billingService,
		panelService,
		reportService,
		regenerationService,
		summaryRepairService,
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
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
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
