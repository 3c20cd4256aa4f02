package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Server      ServerConfig
	Logger      LoggerConfig
	Storage     StorageConfig
	Postgres    PostgresConfig
	Redis       RedisConfig
	Kafka       KafkaConfig
	Fulfillment FulfillmentConfig
}

type ServerConfig struct {
	AppEnv   string
	GRPCPort string
	HTTPPort string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

// StorageConfig selects the repository backend: "postgres" or "memory".
type StorageConfig struct {
	Driver string
}

type PostgresConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}

type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Enabled          bool
	Brokers          []string
	EventsTopic      string
	ProcurementTopic string
	CatalogTopic     string
	GroupID          string
}

type FulfillmentConfig struct {
	PricingTablePath       string
	TaxPercent             float64
	ShippingLeadDays       int
	LowStockThresholdGrams float64
	ProductionDays         int
	RawMaterialDays        int
	QualityControlDays     int
	BacklogDays            int
	BacklogThreshold       int
	LockTTLSeconds         int
	CatalogCacheTTLSeconds int
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:   getEnv("APP_ENV", "dev"),
			GRPCPort: getEnv("GRPC_PORT", ":8084"),
			HTTPPort: getEnv("HTTP_PORT", ":8085"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Storage: StorageConfig{
			Driver: getEnv("STORAGE_DRIVER", "postgres"),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "localhost"),
			Port:            getEnv("POSTGRES_PORT", "5433"),
			User:            getEnv("POSTGRES_USER", "omnipos"),
			Password:        getEnv("POSTGRES_PASSWORD", "omnipos"),
			DBName:          getEnv("POSTGRES_DB", "omnipos_fulfillment"),
			SSLMode:         getEnv("POSTGRES_SSLMODE", "disable"),
			MaxOpenConns:    getEnvInt("POSTGRES_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("POSTGRES_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvInt("POSTGRES_CONN_MAX_LIFETIME", 300),
			ConnMaxIdleTime: getEnvInt("POSTGRES_CONN_MAX_IDLE_TIME", 60),
		},
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_ENABLED", true),
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Enabled:          getEnvBool("KAFKA_ENABLED", true),
			Brokers:          getEnvSlice("KAFKA_BROKERS", []string{"localhost:9092"}),
			EventsTopic:      getEnv("KAFKA_TOPIC_FULFILLMENT", "fulfillment.events"),
			ProcurementTopic: getEnv("KAFKA_TOPIC_PROCUREMENT", "procurement.events"),
			CatalogTopic:     getEnv("KAFKA_TOPIC_CATALOG", "catalog.events"),
			GroupID:          getEnv("KAFKA_GROUP_FULFILLMENT", "fulfillment"),
		},
		Fulfillment: FulfillmentConfig{
			PricingTablePath:       getEnv("PRICING_TABLE_PATH", "config/pricing.yaml"),
			TaxPercent:             getEnvFloat("TAX_PERCENT", 18),
			ShippingLeadDays:       getEnvInt("SHIPPING_LEAD_DAYS", 7),
			LowStockThresholdGrams: getEnvFloat("LOW_STOCK_THRESHOLD_GRAMS", 100),
			ProductionDays:         getEnvInt("PRODUCTION_DAYS", 5),
			RawMaterialDays:        getEnvInt("RAW_MATERIAL_DAYS", 3),
			QualityControlDays:     getEnvInt("QUALITY_CONTROL_DAYS", 1),
			BacklogDays:            getEnvInt("BACKLOG_DAYS", 2),
			BacklogThreshold:       getEnvInt("BACKLOG_THRESHOLD", 3),
			LockTTLSeconds:         getEnvInt("ORDER_LOCK_TTL_SECONDS", 10),
			CatalogCacheTTLSeconds: getEnvInt("CATALOG_CACHE_TTL_SECONDS", 300),
		},
	}
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "postgres", "memory":
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS is required when kafka is enabled")
	}
	f := c.Fulfillment
	if f.TaxPercent < 0 {
		return fmt.Errorf("TAX_PERCENT must not be negative, got %v", f.TaxPercent)
	}
	if f.ShippingLeadDays < 0 || f.ProductionDays < 0 || f.RawMaterialDays < 0 || f.QualityControlDays < 0 || f.BacklogDays < 0 {
		return fmt.Errorf("day counts must not be negative")
	}
	if f.LockTTLSeconds <= 0 {
		return fmt.Errorf("ORDER_LOCK_TTL_SECONDS must be positive, got %d", f.LockTTLSeconds)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	if value, ok := os.LookupEnv(key); ok {
		return strings.Split(value, ",")
	}
	return fallback
}
