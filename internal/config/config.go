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
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	SellerCloud SellerCloud `mapstructure:",squash"`
	QuickBooks  QuickBooks  `mapstructure:",squash"`
	SMTP        SMTP        `mapstructure:",squash"`
	CogsSync    CogsSync    `mapstructure:",squash"`
	Report      Report      `mapstructure:",squash"`
	Channels    []Channel   `mapstructure:"-"`
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

type SellerCloud struct {
	BaseURL        string `mapstructure:"sellercloud_base_url"`
	Username       string `mapstructure:"sellercloud_username"`
	Password       string `mapstructure:"sellercloud_password"`
	CompanyID      int    `mapstructure:"sellercloud_company_id"`
	VendorUserID   int    `mapstructure:"sellercloud_vendor_user_id"`
	TimeoutSeconds int    `mapstructure:"sellercloud_timeout_seconds"`
}

type QuickBooks struct {
	BaseURL         string `mapstructure:"quickbooks_base_url"`
	TokenURL        string `mapstructure:"quickbooks_token_url"`
	ClientID        string `mapstructure:"quickbooks_client_id"`
	ClientSecret    string `mapstructure:"quickbooks_client_secret"`
	RealmID         string `mapstructure:"quickbooks_realm_id"`
	CreditAccountID string `mapstructure:"quickbooks_credit_account_id"`
	DebitAccountID  string `mapstructure:"quickbooks_debit_account_id"`
	TimeoutSeconds  int    `mapstructure:"quickbooks_timeout_seconds"`
}

type SMTP struct {
	Host       string   `mapstructure:"smtp_host"`
	Port       string   `mapstructure:"smtp_port"`
	User       string   `mapstructure:"smtp_user"`
	Password   string   `mapstructure:"smtp_password"`
	Recipients []string `mapstructure:"smtp_recipients"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// CogsSync controla o agendamento e o modo de lançamento do job de COGS.
type CogsSync struct {
	CronSchedule  string `mapstructure:"cogs_sync_cron"`
	Frequency     string `mapstructure:"cogs_sync_frequency"`
	Enabled       bool   `mapstructure:"cogs_sync_enabled"`
	RunIndividual bool   `mapstructure:"cogs_sync_run_individual"`
	RunCombined   bool   `mapstructure:"cogs_sync_run_combined"`
}

type Report struct {
	OutputDir string `mapstructure:"report_output_dir"`
}

// Channel descreve um canal de venda do SellerCloud e a classe contábil
// correspondente no QuickBooks.
type Channel struct {
	Code       string
	Name       string
	APICode    int
	ClassRefID string
	UseVendor  bool
	Enabled    bool
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/cogs")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SELLERCLOUD_BASE_URL", "https://company.api.sellercloud.us/rest/api")
	viper.SetDefault("SELLERCLOUD_USERNAME", "your_username")
	viper.SetDefault("SELLERCLOUD_PASSWORD", "your_password")
	viper.SetDefault("SELLERCLOUD_COMPANY_ID", 163)
	viper.SetDefault("SELLERCLOUD_VENDOR_USER_ID", 75437)
	viper.SetDefault("SELLERCLOUD_TIMEOUT_SECONDS", 30)

	viper.SetDefault("QUICKBOOKS_BASE_URL", "https://quickbooks.api.intuit.com/v3")
	viper.SetDefault("QUICKBOOKS_TOKEN_URL", "https://oauth.platform.intuit.com/oauth2/v1/tokens/bearer")
	viper.SetDefault("QUICKBOOKS_CLIENT_ID", "your_client_id")
	viper.SetDefault("QUICKBOOKS_CLIENT_SECRET", "your_client_secret")
	viper.SetDefault("QUICKBOOKS_REALM_ID", "your_realm_id")
	viper.SetDefault("QUICKBOOKS_CREDIT_ACCOUNT_ID", "29")
	viper.SetDefault("QUICKBOOKS_DEBIT_ACCOUNT_ID", "46")
	viper.SetDefault("QUICKBOOKS_TIMEOUT_SECONDS", 30)

	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", "587")
	viper.SetDefault("SMTP_USER", "sender_email@domain.com")
	viper.SetDefault("SMTP_PASSWORD", "sender_password")
	viper.SetDefault("SMTP_RECIPIENTS", "recipient_email@domain.com")

	// Defaults do job de reconciliação de COGS
	viper.SetDefault("COGS_SYNC_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("COGS_SYNC_FREQUENCY", "daily")
	viper.SetDefault("COGS_SYNC_ENABLED", true)
	viper.SetDefault("COGS_SYNC_RUN_INDIVIDUAL", true)
	viper.SetDefault("COGS_SYNC_RUN_COMBINED", false)

	viper.SetDefault("REPORT_OUTPUT_DIR", "tmp")

	// Flags por canal
	viper.SetDefault("CHANNEL_DF_ENABLED", true)
	viper.SetDefault("CHANNEL_WH_ENABLED", true)
	viper.SetDefault("CHANNEL_VN_ENABLED", true)
	viper.SetDefault("CHANNEL_DF_CLASS_REF_ID", "your_df_class_ref_id")
	viper.SetDefault("CHANNEL_WH_CLASS_REF_ID", "your_wh_class_ref_id")
	viper.SetDefault("CHANNEL_VN_CLASS_REF_ID", "your_vn_class_ref_id")

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

	// Tabela de canais: o código numérico filtra os pedidos na API do
	// SellerCloud e o class ref amarra a linha de débito do lançamento
	// contábil ao canal.
	config.Channels = []Channel{
		{
			Code:       "DF",
			Name:       "direct_fulfillment",
			APICode:    66,
			ClassRefID: viper.GetString("CHANNEL_DF_CLASS_REF_ID"),
			Enabled:    viper.GetBool("CHANNEL_DF_ENABLED"),
		},
		{
			Code:       "WH",
			Name:       "dropship",
			APICode:    21,
			ClassRefID: viper.GetString("CHANNEL_WH_CLASS_REF_ID"),
			Enabled:    viper.GetBool("CHANNEL_WH_ENABLED"),
		},
		{
			Code:       "VN",
			Name:       "amazon_vendor",
			APICode:    0,
			ClassRefID: viper.GetString("CHANNEL_VN_CLASS_REF_ID"),
			UseVendor:  true,
			Enabled:    viper.GetBool("CHANNEL_VN_ENABLED"),
		},
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
