package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/erp-backend/internal/data/db"
	"github.com/yungbote/erp-backend/internal/observability"
	"github.com/yungbote/erp-backend/internal/platform/envutil"
	"github.com/yungbote/erp-backend/internal/platform/logger"
	"github.com/yungbote/erp-backend/internal/realtime/bus"
)

type Config struct {
	LogMode         string
	Port            string
	ShutdownTimeout time.Duration

	Store       db.Config
	AutoMigrate bool

	CORSOrigins []string

	// Redis is only dialed when Redis.Addr is set.
	Redis bus.RedisConfig

	MetricsEnabled  bool
	MetricsAddr     string
	CollectInterval time.Duration

	OTel observability.OtelConfig
}

// LoadConfig reads the environment, falling back to the YAML file named by
// CONFIG_FILE and then to defaults. Keys in the file use the env var names.
func LoadConfig(log *logger.Logger) (Config, error) {
	src := settings{}
	if path := envutil.String("CONFIG_FILE", ""); path != "" {
		file, err := readConfigFile(path)
		if err != nil {
			return Config{}, err
		}
		src.file = file
		if log != nil {
			log.Info("Loaded config file", "path", path, "keys", len(file))
		}
	}

	cfg := Config{
		LogMode:         src.String("LOG_MODE", "development"),
		Port:            src.String("PORT", "8080"),
		ShutdownTimeout: src.Seconds("SHUTDOWN_TIMEOUT_SECONDS", 15*time.Second),
		Store: db.Config{
			Driver:           src.String("STORE_DRIVER", db.DriverPostgres),
			PostgresDSN:      src.String("POSTGRES_DSN", ""),
			PostgresHost:     src.String("POSTGRES_HOST", "localhost"),
			PostgresPort:     src.String("POSTGRES_PORT", "5432"),
			PostgresUser:     src.String("POSTGRES_USER", "postgres"),
			PostgresPassword: src.String("POSTGRES_PASSWORD", ""),
			PostgresName:     src.String("POSTGRES_NAME", "erp"),
			PostgresSSLMode:  src.String("POSTGRES_SSLMODE", "disable"),
			SQLitePath:       src.String("SQLITE_PATH", "erp.db"),
			MaxOpenConns:     src.Int("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:     src.Int("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime:  src.Seconds("DB_CONN_MAX_LIFETIME_SECONDS", 30*time.Minute),
			SlowThreshold:    time.Duration(src.Int("DB_SLOW_QUERY_MS", 500)) * time.Millisecond,
		},
		AutoMigrate: src.Bool("AUTO_MIGRATE", true),
		CORSOrigins: src.List("CORS_ALLOWED_ORIGINS"),
		Redis: bus.RedisConfig{
			Addr:     src.String("REDIS_ADDR", ""),
			Password: src.String("REDIS_PASSWORD", ""),
			DB:       src.Int("REDIS_DB", 0),
			Channel:  src.String("REDIS_CHANNEL", bus.DefaultChannel),
		},
		MetricsEnabled:  src.Bool("METRICS_ENABLED", false),
		MetricsAddr:     src.String("METRICS_ADDR", ""),
		CollectInterval: src.Seconds("METRICS_COLLECT_INTERVAL_SECONDS", 15*time.Second),
		OTel: observability.OtelConfig{
			Enabled:     src.Bool("OTEL_ENABLED", false),
			ServiceName: src.String("OTEL_SERVICE_NAME", "erp-backend"),
			Environment: src.String("OTEL_ENVIRONMENT", "development"),
			Version:     src.String("OTEL_SERVICE_VERSION", ""),
			Endpoint:    src.String("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:     observability.ParseHeaders(src.String("OTEL_EXPORTER_OTLP_HEADERS", "")),
			Insecure:    src.Bool("OTEL_EXPORTER_OTLP_INSECURE", false),
			SampleRatio: src.Float("OTEL_SAMPLER_RATIO", 1),
		},
	}
	return cfg, nil
}

func readConfigFile(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var doc map[string]interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	out := make(map[string]string, len(doc))
	for k, v := range doc {
		switch t := v.(type) {
		case nil:
			continue
		case []interface{}:
			parts := make([]string, 0, len(t))
			for _, p := range t {
				parts = append(parts, fmt.Sprint(p))
			}
			out[strings.ToUpper(k)] = strings.Join(parts, ",")
		default:
			out[strings.ToUpper(k)] = fmt.Sprint(t)
		}
	}
	return out, nil
}

// settings layers the environment over the optional config file.
type settings struct {
	file map[string]string
}

func (s settings) lookup(name string) string {
	if v := envutil.String(name, ""); v != "" {
		return v
	}
	return strings.TrimSpace(s.file[name])
}

func (s settings) String(name, def string) string {
	if v := s.lookup(name); v != "" {
		return v
	}
	return def
}

func (s settings) Int(name string, def int) int {
	return envutil.ParseInt(s.lookup(name), def)
}

func (s settings) Float(name string, def float64) float64 {
	return envutil.ParseFloat(s.lookup(name), def)
}

func (s settings) Bool(name string, def bool) bool {
	return envutil.ParseBool(s.lookup(name), def)
}

func (s settings) Seconds(name string, def time.Duration) time.Duration {
	return envutil.ParseSeconds(s.lookup(name), def)
}

func (s settings) List(name string) []string {
	return envutil.ParseList(s.lookup(name), nil)
}
