package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DestinationAirtable = "airtable"
	DestinationPostgres = "postgres"
)

type Config struct {
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	GoogleAds          GoogleAds          `mapstructure:",squash"`
	Airtable           Airtable           `mapstructure:",squash"`
	Destination        Destination        `mapstructure:",squash"`
	Auth               Auth               `mapstructure:",squash"`
	MasterDatePullSync MasterDatePullSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
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

type GoogleAds struct {
	BaseURL               string `mapstructure:"google_ads_base_url"`
	Version               string `mapstructure:"google_ads_api_version"`
	TokenURL              string `mapstructure:"google_ads_token_url"`
	ClientID              string `mapstructure:"google_ads_oauth_client_id"`
	ClientSecret          string `mapstructure:"google_ads_oauth_client_secret"`
	RefreshToken          string `mapstructure:"google_ads_refresh_token"`
	DeveloperToken        string `mapstructure:"google_ads_developer_token"`
	LoginCustomerID       string `mapstructure:"google_ads_mcc_id"`
	CustomerID            string `mapstructure:"google_ads_customer_id"`
	RequestTimeoutSeconds int    `mapstructure:"google_ads_request_timeout_seconds"`
}

// RequestTimeout é o limite de uma consulta searchStream
func (g GoogleAds) RequestTimeout() time.Duration {
	return time.Duration(g.RequestTimeoutSeconds) * time.Second
}

type Airtable struct {
	URL       string `mapstructure:"airtable_url"`
	PAT       string `mapstructure:"airtable_pat"`
	APIKey    string `mapstructure:"airtable_api_key"`
	BaseID    string `mapstructure:"airtable_base_id"`
	RateLimit int    `mapstructure:"airtable_rate_limit"`
}

// Token retorna o PAT ou, na falta dele, a API key
func (a Airtable) Token() string {
	if a.PAT != "" {
		return a.PAT
	}
	return a.APIKey
}

type Destination struct {
	Driver string `mapstructure:"destination_driver"`
}

type Auth struct {
	SharedSecret string `mapstructure:"api_shared_secret"`
	Secret       string `mapstructure:"auth_secret"`
}

type MasterDatePullSync struct {
	CronSchedule string `mapstructure:"master_date_pull_sync_cron"`
	LookbackDays int    `mapstructure:"master_date_pull_sync_lookback_days"`
	Enabled      bool   `mapstructure:"master_date_pull_sync_enabled"`
	RecordID     string `mapstructure:"master_date_pull_sync_record_id"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 3000)
	viper.SetDefault("APP_ENV", "dev")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ads_metrics")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_API_VERSION", "v21")
	viper.SetDefault("GOOGLE_ADS_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("GOOGLE_ADS_OAUTH_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_ADS_OAUTH_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_ADS_REFRESH_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_MCC_ID", "")
	viper.SetDefault("GOOGLE_ADS_CUSTOMER_ID", "")
	viper.SetDefault("GOOGLE_ADS_REQUEST_TIMEOUT_SECONDS", 120)

	viper.SetDefault("AIRTABLE_URL", "https://api.airtable.com/v0")
	viper.SetDefault("AIRTABLE_PAT", "")
	viper.SetDefault("AIRTABLE_API_KEY", "")
	viper.SetDefault("AIRTABLE_BASE_ID", "")
	viper.SetDefault("AIRTABLE_RATE_LIMIT", 5) // requisições por minuto

	viper.SetDefault("DESTINATION_DRIVER", DestinationAirtable)

	viper.SetDefault("API_SHARED_SECRET", "")
	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	viper.SetDefault("MASTER_DATE_PULL_SYNC_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("MASTER_DATE_PULL_SYNC_LOOKBACK_DAYS", 0)  // 0 usa as datas do registro de controle
	viper.SetDefault("MASTER_DATE_PULL_SYNC_ENABLED", false)
	viper.SetDefault("MASTER_DATE_PULL_SYNC_RECORD_ID", "")

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
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.GoogleAds.LoginCustomerID = stripDashes(config.GoogleAds.LoginCustomerID)
	config.GoogleAds.CustomerID = stripDashes(config.GoogleAds.CustomerID)
	config.GoogleAds.BaseURL = strings.TrimRight(config.GoogleAds.BaseURL, "/")
	config.Airtable.URL = strings.TrimRight(config.Airtable.URL, "/")

	if config.Airtable.PAT == "" {
		config.Airtable.PAT = config.Airtable.APIKey
	}
	if config.Airtable.APIKey == "" {
		config.Airtable.APIKey = config.Airtable.PAT
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejeita apenas configurações que impedem a inicialização.
// Credenciais ausentes do Google Ads e do Airtable são reportadas pela
// execução no registro de controle.
func (c *Config) Validate() error {
	switch c.Destination.Driver {
	case DestinationAirtable, DestinationPostgres:
	default:
		return fmt.Errorf("config: destino desconhecido %q", c.Destination.Driver)
	}

	if c.Airtable.RateLimit <= 0 {
		return fmt.Errorf("config: AIRTABLE_RATE_LIMIT deve ser maior que zero")
	}

	if c.MasterDatePullSync.LookbackDays < 0 {
		return fmt.Errorf("config: MASTER_DATE_PULL_SYNC_LOOKBACK_DAYS não pode ser negativo")
	}

	if c.GoogleAds.CustomerID == "" {
		logrus.Warn("GOOGLE_ADS_CUSTOMER_ID não configurado, as execuções vão falhar")
	}

	return nil
}

func stripDashes(id string) string {
	return strings.ReplaceAll(strings.TrimSpace(id), "-", "")
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
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
