package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/football-stats-web/internal/platform/logging"
	"github.com/riskibarqy/football-stats-web/internal/platform/resilience"
)

// Config stores runtime configuration for the web front-end.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	HTTPAddr       string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	LogLevel       logging.Level

	StatsAPIBaseURL             string
	StatsAPITimeout             time.Duration
	StatsAPIMaxRetries          int
	StatsAPIRetryBackoff        time.Duration
	StatsAPICircuitEnabled      bool
	StatsAPICircuitFailureCount int
	StatsAPICircuitOpenTimeout  time.Duration
	StatsAPICircuitHalfOpenMax  int

	SessionTTL          time.Duration
	SessionCookieSecure bool
	FetchWorkers        int

	PprofEnabled bool
	PprofAddr    string

	UptraceEnabled bool
	UptraceDSN     string

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := getEnvAsPositiveDuration("APP_READ_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	writeTimeout, err := getEnvAsPositiveDuration("APP_WRITE_TIMEOUT", "30s")
	if err != nil {
		return Config{}, err
	}

	statsAPIBaseURL := strings.TrimRight(strings.TrimSpace(getEnv("STATS_API_BASE_URL", "http://localhost:8080")), "/")
	if parsed, err := url.Parse(statsAPIBaseURL); err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Config{}, fmt.Errorf("STATS_API_BASE_URL must be an absolute URL, got %q", statsAPIBaseURL)
	}
	statsAPITimeout, err := getEnvAsPositiveDuration("STATS_API_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	statsAPIMaxRetries, err := getEnvAsInt("STATS_API_MAX_RETRIES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse STATS_API_MAX_RETRIES: %w", err)
	}
	if statsAPIMaxRetries < 0 {
		return Config{}, fmt.Errorf("STATS_API_MAX_RETRIES must be >= 0")
	}
	statsAPIRetryBackoff, err := getEnvAsPositiveDuration("STATS_API_RETRY_BACKOFF", "300ms")
	if err != nil {
		return Config{}, err
	}
	breakerDefaults := resilience.StatsBackendDefaults()
	statsAPICircuitEnabled, err := strconv.ParseBool(getEnv("STATS_API_CIRCUIT_ENABLED", strconv.FormatBool(breakerDefaults.Enabled)))
	if err != nil {
		return Config{}, fmt.Errorf("parse STATS_API_CIRCUIT_ENABLED: %w", err)
	}
	statsAPICircuitFailureCount, err := getEnvAsInt("STATS_API_CIRCUIT_FAILURE_COUNT", breakerDefaults.FailureThreshold)
	if err != nil {
		return Config{}, fmt.Errorf("parse STATS_API_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	statsAPICircuitOpenTimeout, err := getEnvAsPositiveDuration("STATS_API_CIRCUIT_OPEN_TIMEOUT", breakerDefaults.OpenTimeout.String())
	if err != nil {
		return Config{}, err
	}
	statsAPICircuitHalfOpenMax, err := getEnvAsInt("STATS_API_CIRCUIT_HALF_OPEN_MAX_REQ", breakerDefaults.HalfOpenMaxReq)
	if err != nil {
		return Config{}, fmt.Errorf("parse STATS_API_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}

	sessionTTL, err := getEnvAsPositiveDuration("SESSION_TTL", "30m")
	if err != nil {
		return Config{}, err
	}
	sessionCookieSecure, err := strconv.ParseBool(getEnv("SESSION_COOKIE_SECURE", strconv.FormatBool(appEnv == EnvProd)))
	if err != nil {
		return Config{}, fmt.Errorf("parse SESSION_COOKIE_SECURE: %w", err)
	}
	fetchWorkers, err := getEnvAsInt("FETCH_WORKERS", 64)
	if err != nil {
		return Config{}, fmt.Errorf("parse FETCH_WORKERS: %w", err)
	}
	if fetchWorkers < 1 {
		return Config{}, fmt.Errorf("FETCH_WORKERS must be >= 1")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := getEnvAsPositiveDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:                      appEnv,
		ServiceName:                 getEnv("APP_SERVICE_NAME", "football-stats-web"),
		ServiceVersion:              getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                    getEnv("APP_HTTP_ADDR", ":3000"),
		ReadTimeout:                 readTimeout,
		WriteTimeout:                writeTimeout,
		LogLevel:                    logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		StatsAPIBaseURL:             statsAPIBaseURL,
		StatsAPITimeout:             statsAPITimeout,
		StatsAPIMaxRetries:          statsAPIMaxRetries,
		StatsAPIRetryBackoff:        statsAPIRetryBackoff,
		StatsAPICircuitEnabled:      statsAPICircuitEnabled,
		StatsAPICircuitFailureCount: statsAPICircuitFailureCount,
		StatsAPICircuitOpenTimeout:  statsAPICircuitOpenTimeout,
		StatsAPICircuitHalfOpenMax:  statsAPICircuitHalfOpenMax,
		SessionTTL:                  sessionTTL,
		SessionCookieSecure:         sessionCookieSecure,
		FetchWorkers:                fetchWorkers,
		PprofEnabled:                pprofEnabled,
		PprofAddr:                   pprofAddr,
		UptraceEnabled:              uptraceEnabled,
		UptraceDSN:                  uptraceDSN,
		PyroscopeEnabled:            pyroscopeEnabled,
		PyroscopeServerAddress:      pyroscopeServerAddress,
		PyroscopeAuthToken:          strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:      strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:  strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:         pyroscopeUploadRate,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))

	if err := cfg.StatsAPICircuitBreaker().Validate(); err != nil {
		return Config{}, fmt.Errorf("STATS_API_CIRCUIT_*: %w", err)
	}

	return cfg, nil
}

func (c Config) StatsAPICircuitBreaker() resilience.CircuitBreakerConfig {
	return resilience.CircuitBreakerConfig{
		Enabled:          c.StatsAPICircuitEnabled,
		FailureThreshold: c.StatsAPICircuitFailureCount,
		OpenTimeout:      c.StatsAPICircuitOpenTimeout,
		HalfOpenMaxReq:   c.StatsAPICircuitHalfOpenMax,
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsPositiveDuration(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return out, nil
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
