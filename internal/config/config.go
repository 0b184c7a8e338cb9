package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                 App                 `mapstructure:",squash"`
	Server              Server              `mapstructure:",squash"`
	Database            Database            `mapstructure:",squash"`
	BillingRegeneration BillingRegeneration `mapstructure:",squash"`
	SummaryRepair       SummaryRepair       `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// BillingRegeneration controla a regeneração mensal em lote dos registros de faturamento
type BillingRegeneration struct {
	CronSchedule      string `mapstructure:"billing_regeneration_cron"`
	MaxConcurrentJobs int    `mapstructure:"billing_regeneration_max_concurrent_jobs"`
	PeriodLookBack    int    `mapstructure:"billing_regeneration_period_lookback"`
	Enabled           bool   `mapstructure:"billing_regeneration_enabled"`
}

// SummaryRepair controla a passada periódica de reparo dos resumos mensais
type SummaryRepair struct {
	CronSchedule   string `mapstructure:"summary_repair_cron"`
	PeriodLookBack int    `mapstructure:"summary_repair_period_lookback"`
	Enabled        bool   `mapstructure:"summary_repair_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/panel_billing")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	// Defaults para regeneração mensal de faturamento
	viper.SetDefault("BILLING_REGENERATION_CRON", "0 4 1 * *")     // No primeiro dia de cada mês às 4h da manhã
	viper.SetDefault("BILLING_REGENERATION_MAX_CONCURRENT_JOBS", 5) // 5 painéis concorrentes
	viper.SetDefault("BILLING_REGENERATION_PERIOD_LOOKBACK", 1)     // 1 mês para regenerar
	viper.SetDefault("BILLING_REGENERATION_ENABLED", false)

	// Defaults para reparo de resumos mensais
	viper.SetDefault("SUMMARY_REPAIR_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("SUMMARY_REPAIR_PERIOD_LOOKBACK", 2)
	viper.SetDefault("SUMMARY_REPAIR_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
