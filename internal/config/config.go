package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// ErrMissingConfig indica que variáveis obrigatórias não foram informadas
var ErrMissingConfig = errors.New("missing required configuration")

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	PrintSmith     PrintSmith     `mapstructure:",squash"`
	Render         Render         `mapstructure:",squash"`
	Digest         Digest         `mapstructure:",squash"`
	Thresholds     Thresholds     `mapstructure:",squash"`
	ExportSchedule ExportSchedule `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Timezone string `mapstructure:"digest_timezone"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type PrintSmith struct {
	DSN            string `mapstructure:"-"`
	Host           string `mapstructure:"printsmith_host"`
	Port           string `mapstructure:"printsmith_port"`
	DB             string `mapstructure:"printsmith_db"`
	User           string `mapstructure:"printsmith_user"`
	Password       string `mapstructure:"printsmith_password"`
	SSLMode        string `mapstructure:"printsmith_sslmode"`
	ConnectTimeout int    `mapstructure:"printsmith_connect_timeout"`
}

type Render struct {
	APIURL          string        `mapstructure:"render_api_url"`
	ExportSecret    string        `mapstructure:"export_api_secret"`
	HistoryURL      string        `mapstructure:"render_history_url"`
	RecentURL       string        `mapstructure:"render_recent_url"`
	HistoryTimeout  time.Duration `mapstructure:"render_history_timeout"`
	DeliveryTimeout time.Duration `mapstructure:"render_delivery_timeout"`
}

type Digest struct {
	ExcludedAccountIDs []int64  `mapstructure:"digest_excluded_account_ids"`
	ValidPMs           []string `mapstructure:"digest_valid_pms"`
	ValidBDs           []string `mapstructure:"digest_valid_bds"`
	LookbackDays       int      `mapstructure:"digest_lookback_days"`
	TopInvoices        int      `mapstructure:"digest_top_invoices"`
	TopEstimates       int      `mapstructure:"digest_top_estimates"`
	EstimateTableSize  int      `mapstructure:"digest_estimate_table_size"`
}

// Thresholds são os limites de qualificação de cada gerador de insight
type Thresholds struct {
	AnniversaryMinAmount        float64 `mapstructure:"insight_anniversary_min_amount"`
	LapsedMinLifetimeValue      float64 `mapstructure:"insight_lapsed_min_lifetime_value"`
	LapsedAfterMonths           int     `mapstructure:"insight_lapsed_after_months"`
	LapsedMaxMonths             int     `mapstructure:"insight_lapsed_max_months"`
	PastDueMinBalance           float64 `mapstructure:"insight_past_due_min_balance"`
	HotStreakWindowMonths       int     `mapstructure:"insight_hot_streak_window_months"`
	HotStreakMinRecentSpend     float64 `mapstructure:"insight_hot_streak_min_recent_spend"`
	HighValueEstimateMinAmount  float64 `mapstructure:"insight_high_value_estimate_min_amount"`
	HighValueEstimateMaxAgeDays int     `mapstructure:"insight_high_value_estimate_max_age_days"`
}

type ExportSchedule struct {
	CronSchedule string `mapstructure:"export_cron"`
	Enabled      bool   `mapstructure:"export_schedule_enabled"`
}

type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DIGEST_TIMEZONE", "America/New_York")

	// Conexão com o PrintSmith: sem valores padrão para credenciais
	viper.SetDefault("PRINTSMITH_HOST", "")
	viper.SetDefault("PRINTSMITH_PORT", "")
	viper.SetDefault("PRINTSMITH_DB", "")
	viper.SetDefault("PRINTSMITH_USER", "")
	viper.SetDefault("PRINTSMITH_PASSWORD", "")
	viper.SetDefault("PRINTSMITH_SSLMODE", "disable")
	viper.SetDefault("PRINTSMITH_CONNECT_TIMEOUT", 30)

	viper.SetDefault("RENDER_API_URL", "")
	viper.SetDefault("EXPORT_API_SECRET", "")
	viper.SetDefault("RENDER_HISTORY_URL", "")
	viper.SetDefault("RENDER_RECENT_URL", "")
	viper.SetDefault("RENDER_HISTORY_TIMEOUT", "10s")
	viper.SetDefault("RENDER_DELIVERY_TIMEOUT", "30s")

	viper.SetDefault("DIGEST_EXCLUDED_ACCOUNT_IDS", "20960")
	viper.SetDefault("DIGEST_VALID_PMS", "Jim,Steve,Shelley,Ellie,Ellie Lemire")
	viper.SetDefault("DIGEST_VALID_BDS", "House,Paige Chamberlain,Sean Swaim,Mike Meyer,Dave Tanner,Rob Grayson,Robert Galle")
	viper.SetDefault("DIGEST_LOOKBACK_DAYS", 14)
	viper.SetDefault("DIGEST_TOP_INVOICES", 3)
	viper.SetDefault("DIGEST_TOP_ESTIMATES", 2)
	viper.SetDefault("DIGEST_ESTIMATE_TABLE_SIZE", 10)

	viper.SetDefault("INSIGHT_ANNIVERSARY_MIN_AMOUNT", 500)
	viper.SetDefault("INSIGHT_LAPSED_MIN_LIFETIME_VALUE", 5000)
	viper.SetDefault("INSIGHT_LAPSED_AFTER_MONTHS", 6)
	viper.SetDefault("INSIGHT_LAPSED_MAX_MONTHS", 24)
	viper.SetDefault("INSIGHT_PAST_DUE_MIN_BALANCE", 0)
	viper.SetDefault("INSIGHT_HOT_STREAK_WINDOW_MONTHS", 3)
	viper.SetDefault("INSIGHT_HOT_STREAK_MIN_RECENT_SPEND", 1000)
	viper.SetDefault("INSIGHT_HIGH_VALUE_ESTIMATE_MIN_AMOUNT", 2500)
	viper.SetDefault("INSIGHT_HIGH_VALUE_ESTIMATE_MAX_AGE_DAYS", 30)

	viper.SetDefault("EXPORT_CRON", "0 6 * * *")       // Todos os dias às 6h no fuso do digest
	viper.SetDefault("EXPORT_SCHEDULE_ENABLED", false) // Habilitar exportação agendada

	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
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

	config.Digest.ValidPMs = trimAll(config.Digest.ValidPMs)
	config.Digest.ValidBDs = trimAll(config.Digest.ValidBDs)

	config.Render.HistoryURL = deriveRenderURL(config.Render.HistoryURL, config.Render.APIURL, "shown")
	config.Render.RecentURL = deriveRenderURL(config.Render.RecentURL, config.Render.APIURL, "recent")

	config.PrintSmith.DSN = buildDSN(config.PrintSmith)

	return config, nil
}

// Validate verifica as variáveis obrigatórias antes de qualquer acesso a dados.
// Em dry-run a API do Render não é necessária.
func (c *Config) Validate(dryRun bool) error {
	required := map[string]string{
		"PRINTSMITH_HOST":     c.PrintSmith.Host,
		"PRINTSMITH_PORT":     c.PrintSmith.Port,
		"PRINTSMITH_DB":       c.PrintSmith.DB,
		"PRINTSMITH_USER":     c.PrintSmith.User,
		"PRINTSMITH_PASSWORD": c.PrintSmith.Password,
	}
	if !dryRun {
		required["RENDER_API_URL"] = c.Render.APIURL
		required["EXPORT_API_SECRET"] = c.Render.ExportSecret
	}

	missing := make([]string, 0)
	for key, value := range required {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(missing, ", "))
	}

	if _, err := c.Location(); err != nil {
		return fmt.Errorf("fuso horário inválido %q: %w", c.App.Timezone, err)
	}

	return nil
}

// Location retorna o fuso fixo usado para calcular o período do digest
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.App.Timezone)
}

// deriveRenderURL monta a URL de um endpoint auxiliar a partir da URL de exportação,
// trocando /api/export por /api/export/<suffix> ou acrescentando o sufixo
func deriveRenderURL(explicit, apiURL, suffix string) string {
	if explicit != "" || apiURL == "" {
		return explicit
	}

	derived := strings.Replace(apiURL, "/api/export", "/api/export/"+suffix, 1)
	if derived == apiURL {
		derived = strings.TrimRight(apiURL, "/") + "/" + suffix
	}

	return derived
}

func buildDSN(cfg PrintSmith) string {
	if cfg.Host == "" {
		return ""
	}

	query := url.Values{}
	query.Set("sslmode", cfg.SSLMode)
	query.Set("connect_timeout", strconv.Itoa(cfg.ConnectTimeout))

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, cfg.Port),
		Path:     "/" + cfg.DB,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// loadEnvFile carrega o arquivo .env procurando em algumas localizações conhecidas
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
