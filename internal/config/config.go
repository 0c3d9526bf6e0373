package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Gemini      Gemini      `mapstructure:",squash"`
	Insights    Insights    `mapstructure:",squash"`
	DemoRefresh DemoRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Gemini configura a fonte suplementar de insights (melhor esforço).
// Com APIKey vazia a integração fica desabilitada e o dashboard opera
// apenas com os insights baseados em regras.
type Gemini struct {
	BaseURL        string        `mapstructure:"gemini_base_url"`
	Model          string        `mapstructure:"gemini_model"`
	APIKey         string        `mapstructure:"gemini_api_key"`
	Timeout        time.Duration `mapstructure:"gemini_timeout"`
	RequestsPerMin int           `mapstructure:"gemini_requests_per_minute"`
	Temperature    float64       `mapstructure:"gemini_temperature"`
	MaxTokens      int           `mapstructure:"gemini_max_tokens"`
}

// Insights configura o ranqueamento dos insights exibidos
type Insights struct {
	DisplayLimit int `mapstructure:"insights_display_limit"`
}

// DemoRefresh configura a regeneração periódica do snapshot de demonstração
type DemoRefresh struct {
	CronSchedule string `mapstructure:"demo_refresh_cron"`
	Enabled      bool   `mapstructure:"demo_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("GEMINI_API_KEY", "") // Vazio desabilita a integração
	viper.SetDefault("GEMINI_TIMEOUT", "10s")
	viper.SetDefault("GEMINI_REQUESTS_PER_MINUTE", 15)
	viper.SetDefault("GEMINI_TEMPERATURE", 0.3)
	viper.SetDefault("GEMINI_MAX_TOKENS", 500)

	viper.SetDefault("INSIGHTS_DISPLAY_LIMIT", 7)

	viper.SetDefault("DEMO_REFRESH_CRON", "0 * * * *") // A cada hora
	viper.SetDefault("DEMO_REFRESH_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
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
