package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Origens possíveis do catálogo de produtos
const (
	CatalogSourceHTTP     = "http"
	CatalogSourcePostgres = "postgres"
	CatalogSourceFixture  = "fixture"
	CatalogSourceNone     = "none"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Input      Input      `mapstructure:",squash"`
	Output     Output     `mapstructure:",squash"`
	Catalog    Catalog    `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Filters    Filters    `mapstructure:",squash"`
	Analytics  Analytics  `mapstructure:",squash"`
	ReportSync ReportSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Input struct {
	SalesDataPath string   `mapstructure:"sales_data_path"`
	Encodings     []string `mapstructure:"input_encodings"`
}

type Output struct {
	EnrichedDataPath string `mapstructure:"enriched_data_path"`
	ReportPath       string `mapstructure:"report_path"`
}

type Catalog struct {
	Source      string        `mapstructure:"catalog_source"`
	URL         string        `mapstructure:"catalog_url"`
	Limit       int           `mapstructure:"catalog_limit"`
	Timeout     time.Duration `mapstructure:"catalog_timeout"`
	Retries     int           `mapstructure:"catalog_retries"`
	RetryDelay  time.Duration `mapstructure:"catalog_retry_delay"`
	FixturePath string        `mapstructure:"catalog_fixture_path"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Filters guarda os filtros opcionais como texto; vazio significa sem filtro
type Filters struct {
	Region    string `mapstructure:"filter_region"`
	MinAmount string `mapstructure:"filter_min_amount"`
	MaxAmount string `mapstructure:"filter_max_amount"`
}

type Analytics struct {
	TopN                  int    `mapstructure:"top_n"`
	LowPerformerThreshold int    `mapstructure:"low_performer_threshold"`
	CurrencySymbol        string `mapstructure:"currency_symbol"`
}

type ReportSync struct {
	CronSchedule string `mapstructure:"report_sync_cron"`
	Enabled      bool   `mapstructure:"report_sync_enabled"`
}

// AmountBounds converte os limites de valor configurados
func (f Filters) AmountBounds() (*decimal.Decimal, *decimal.Decimal, error) {
	minAmount, err := parseOptionalDecimal(f.MinAmount)
	if err != nil {
		return nil, nil, errors.Wrap(err, "FILTER_MIN_AMOUNT inválido")
	}

	maxAmount, err := parseOptionalDecimal(f.MaxAmount)
	if err != nil {
		return nil, nil, errors.Wrap(err, "FILTER_MAX_AMOUNT inválido")
	}

	return minAmount, maxAmount, nil
}

func parseOptionalDecimal(value string) (*decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, err
	}

	return &d, nil
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("SALES_DATA_PATH", "data/sales_data.txt")
	viper.SetDefault("INPUT_ENCODINGS", "utf-8,latin-1,cp1252")

	viper.SetDefault("ENRICHED_DATA_PATH", "data/enriched_sales_data.txt")
	viper.SetDefault("REPORT_PATH", "output/sales_report.txt")

	viper.SetDefault("CATALOG_SOURCE", CatalogSourceHTTP)
	viper.SetDefault("CATALOG_URL", "https://dummyjson.com")
	viper.SetDefault("CATALOG_LIMIT", 100)
	viper.SetDefault("CATALOG_TIMEOUT", "30s")
	viper.SetDefault("CATALOG_RETRIES", 2)
	viper.SetDefault("CATALOG_RETRY_DELAY", "2s")
	viper.SetDefault("CATALOG_FIXTURE_PATH", "data/catalog.yaml")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("FILTER_REGION", "")
	viper.SetDefault("FILTER_MIN_AMOUNT", "")
	viper.SetDefault("FILTER_MAX_AMOUNT", "")

	viper.SetDefault("TOP_N", 5)
	viper.SetDefault("LOW_PERFORMER_THRESHOLD", 10)
	viper.SetDefault("CURRENCY_SYMBOL", "₹")

	viper.SetDefault("REPORT_SYNC_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("REPORT_SYNC_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Opcional, o godotenv já exportou as variáveis
	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
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

	if err := config.validate(); err != nil {
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

func (c *Config) validate() error {
	switch c.Catalog.Source {
	case CatalogSourceHTTP, CatalogSourcePostgres, CatalogSourceFixture, CatalogSourceNone:
	default:
		return fmt.Errorf("CATALOG_SOURCE desconhecido: %q", c.Catalog.Source)
	}

	if _, _, err := c.Filters.AmountBounds(); err != nil {
		return err
	}

	return nil
}

// Carrega o .env procurando no diretório atual e nos diretórios acima
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
