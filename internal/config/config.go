package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	AI       AIConfig
	Places   PlacesConfig
	Mail     MailConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxIdleTime time.Duration
	ConnMaxLifetime time.Duration
}

type AuthConfig struct {
	JWTSecret string
	JWTIssuer string
}

// AIConfig описывает клиент генерации итинерариев (OpenAI chat completions).
// Пустой APIKey не ошибка конфигурации при старте: фича деградирует,
// а сам вызов возвращает ошибку конфигурации.
type AIConfig struct {
	APIKey             string
	BaseURL            string
	Model              string
	Timeout            time.Duration
	RateLimitPerMinute int
	RateLimitBurst     int
	MaxOutputTokens    int
}

type PlacesConfig struct {
	GoogleAPIKey   string
	GeoapifyAPIKey string
	Timeout        time.Duration
}

type MailConfig struct {
	ResendAPIKey       string
	FromAddress        string
	PublicBaseURL      string
	Timeout            time.Duration
	RateLimitPerMinute int
	RateLimitBurst     int
}

// Load загружает конфигурацию приложения из окружения и .env.
func Load() (Config, error) {
	cfg := Config{}

	if err := loadEnv(); err != nil {
		return cfg, err
	}

	cfg.Env = getEnv("APP_ENV", "local")

	serverPort, err := parseIntEnv("SERVER_PORT", 8080)
	if err != nil {
		return cfg, err
	}

	readTimeout, err := parseDurationEnv("SERVER_READ_TIMEOUT", 5*time.Second)
	if err != nil {
		return cfg, err
	}

	writeTimeout, err := parseDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second)
	if err != nil {
		return cfg, err
	}

	idleTimeout, err := parseDurationEnv("SERVER_IDLE_TIMEOUT", 60*time.Second)
	if err != nil {
		return cfg, err
	}

	cfg.Server = ServerConfig{
		Host:         getEnv("SERVER_HOST", "0.0.0.0"),
		Port:         serverPort,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	dbPort, err := parseIntEnv("DB_PORT", 5432)
	if err != nil {
		return cfg, err
	}

	maxOpenConns, err := parseIntEnv("DB_MAX_OPEN_CONNS", 10)
	if err != nil {
		return cfg, err
	}

	maxIdleConns, err := parseIntEnv("DB_MAX_IDLE_CONNS", 5)
	if err != nil {
		return cfg, err
	}

	connMaxIdleTime, err := parseDurationEnv("DB_CONN_MAX_IDLE_TIME", 5*time.Minute)
	if err != nil {
		return cfg, err
	}

	connMaxLifetime, err := parseDurationEnv("DB_CONN_MAX_LIFETIME", 30*time.Minute)
	if err != nil {
		return cfg, err
	}

	cfg.Database = DatabaseConfig{
		Host:            getEnv("DB_HOST", "localhost"),
		Port:            dbPort,
		User:            getEnv("DB_USER", "konekta"),
		Password:        getEnv("DB_PASSWORD", "konekta"),
		Name:            getEnv("DB_NAME", "konekta"),
		SSLMode:         getEnv("DB_SSLMODE", "disable"),
		MaxOpenConns:    maxOpenConns,
		MaxIdleConns:    maxIdleConns,
		ConnMaxIdleTime: connMaxIdleTime,
		ConnMaxLifetime: connMaxLifetime,
	}

	cfg.Auth = AuthConfig{
		JWTSecret: getEnv("SESSION_JWT_SECRET", ""),
		JWTIssuer: getEnv("SESSION_JWT_ISSUER", "konekta"),
	}

	aiTimeout, err := parseDurationEnv("OPENAI_TIMEOUT", 90*time.Second)
	if err != nil {
		return cfg, err
	}

	aiRateLimitPerMinute, err := parseIntEnv("AI_RATE_LIMIT_PER_MINUTE", 10)
	if err != nil {
		return cfg, err
	}

	aiRateLimitBurst, err := parseIntEnv("AI_RATE_LIMIT_BURST", 3)
	if err != nil {
		return cfg, err
	}

	aiMaxOutputTokens, err := parseIntEnv("OPENAI_MAX_OUTPUT_TOKENS", 10000)
	if err != nil {
		return cfg, err
	}

	cfg.AI = AIConfig{
		APIKey:             getEnv("OPENAI_API_KEY", ""),
		BaseURL:            getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		Model:              getEnv("OPENAI_MODEL", "gpt-4o"),
		Timeout:            aiTimeout,
		RateLimitPerMinute: aiRateLimitPerMinute,
		RateLimitBurst:     aiRateLimitBurst,
		MaxOutputTokens:    aiMaxOutputTokens,
	}

	placesTimeout, err := parseDurationEnv("PLACES_TIMEOUT", 10*time.Second)
	if err != nil {
		return cfg, err
	}

	cfg.Places = PlacesConfig{
		GoogleAPIKey:   getEnv("GOOGLE_PLACES_API_KEY", ""),
		GeoapifyAPIKey: getEnv("GEOAPIFY_API_KEY", ""),
		Timeout:        placesTimeout,
	}

	mailTimeout, err := parseDurationEnv("MAIL_TIMEOUT", 15*time.Second)
	if err != nil {
		return cfg, err
	}

	mailRateLimitPerMinute, err := parseIntEnv("MAIL_RATE_LIMIT_PER_MINUTE", 20)
	if err != nil {
		return cfg, err
	}

	mailRateLimitBurst, err := parseIntEnv("MAIL_RATE_LIMIT_BURST", 5)
	if err != nil {
		return cfg, err
	}

	cfg.Mail = MailConfig{
		ResendAPIKey:       getEnv("RESEND_API_KEY", ""),
		FromAddress:        getEnv("MAIL_FROM", "Konekta Itinerarios <onboarding@resend.dev>"),
		PublicBaseURL:      getEnv("PUBLIC_BASE_URL", "https://konekta.vercel.app"),
		Timeout:            mailTimeout,
		RateLimitPerMinute: mailRateLimitPerMinute,
		RateLimitBurst:     mailRateLimitBurst,
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// DSN возвращает строку подключения к базе данных.
func (c DatabaseConfig) DSN() string {
	user := url.UserPassword(c.User, c.Password)
	dsn := url.URL{
		Scheme: "postgres",
		User:   user,
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   c.Name,
	}

	query := url.Values{}
	query.Set("sslmode", c.SSLMode)
	return dsn.String() + "?" + query.Encode()
}

func (c Config) validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("SERVER_PORT must be greater than 0")
	}

	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}

	if c.Database.User == "" {
		return fmt.Errorf("DB_USER is required")
	}

	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}

	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("DB_MAX_IDLE_CONNS cannot exceed DB_MAX_OPEN_CONNS")
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("SESSION_JWT_SECRET is required")
	}

	if c.AI.RateLimitPerMinute <= 0 {
		return fmt.Errorf("AI_RATE_LIMIT_PER_MINUTE must be greater than 0")
	}

	if c.AI.RateLimitBurst <= 0 {
		return fmt.Errorf("AI_RATE_LIMIT_BURST must be greater than 0")
	}

	if c.AI.MaxOutputTokens <= 0 {
		return fmt.Errorf("OPENAI_MAX_OUTPUT_TOKENS must be greater than 0")
	}

	if c.Mail.RateLimitPerMinute <= 0 {
		return fmt.Errorf("MAIL_RATE_LIMIT_PER_MINUTE must be greater than 0")
	}

	if c.Mail.RateLimitBurst <= 0 {
		return fmt.Errorf("MAIL_RATE_LIMIT_BURST must be greater than 0")
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func parseIntEnv(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}

	if parsed <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}

	return parsed, nil
}

func parseDurationEnv(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}

	if parsed <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}

	return parsed, nil
}

// FeatureEnabled сообщает, настроен ли ключ соответствующей фичи.
func FeatureEnabled(key string) bool {
	return strings.TrimSpace(key) != ""
}

func loadEnv() error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}

	return nil
}
