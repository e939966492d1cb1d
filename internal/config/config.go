package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Generator      Generator      `mapstructure:",squash"`
	Export         Export         `mapstructure:",squash"`
	DatasetRefresh DatasetRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Enabled bool   `mapstructure:"server_enabled"`
	Host    string `mapstructure:"host"`
	Port    string `mapstructure:"port"`
}

type Generator struct {
	// RandomSeed igual a zero usa o relógio como semente
	RandomSeed   int64 `mapstructure:"random_seed"`
	InsightCount int   `mapstructure:"insight_count"`
}

type Export struct {
	Format string `mapstructure:"export_format"`
}

type DatasetRefresh struct {
	CronSchedule string `mapstructure:"dataset_refresh_cron"`
	Enabled      bool   `mapstructure:"dataset_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("SERVER_ENABLED", false)
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", "8000")

	viper.SetDefault("RANDOM_SEED", 0)
	viper.SetDefault("INSIGHT_COUNT", 4)

	viper.SetDefault("EXPORT_FORMAT", "json")

	viper.SetDefault("DATASET_REFRESH_CRON", "0 * * * *") // A cada hora cheia
	viper.SetDefault("DATASET_REFRESH_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// O .env é opcional; sem ele valem os defaults e o ambiente
	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Arquivo .env não lido pelo Viper, usando defaults e variáveis de ambiente: ", err)
	} else {
		logrus.Debug("Arquivo .env lido pelo Viper com sucesso")
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

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de:", location)
			return
		}
	}
}
