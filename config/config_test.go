package config

import "testing"

func TestLoadEnvDefaults(t *testing.T) {
	cfg := LoadEnv()

	if cfg.Fulfillment.ShippingLeadDays != 7 {
		t.Errorf("Expected shipping lead days 7, got %d", cfg.Fulfillment.ShippingLeadDays)
	}
	if cfg.Fulfillment.LowStockThresholdGrams != 100 {
		t.Errorf("Expected low stock threshold 100, got %v", cfg.Fulfillment.LowStockThresholdGrams)
	}
	if cfg.Fulfillment.TaxPercent != 18 {
		t.Errorf("Expected tax percent 18, got %v", cfg.Fulfillment.TaxPercent)
	}
	if cfg.Storage.Driver != "postgres" {
		t.Errorf("Expected postgres storage driver, got %s", cfg.Storage.Driver)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SHIPPING_LEAD_DAYS", "10")
	t.Setenv("TAX_PERCENT", "5.5")
	t.Setenv("KAFKA_BROKERS", "a:9092,b:9092")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("PRODUCTION_DAYS", "not-a-number")

	cfg := LoadEnv()

	if cfg.Fulfillment.ShippingLeadDays != 10 {
		t.Errorf("Expected 10, got %d", cfg.Fulfillment.ShippingLeadDays)
	}
	if cfg.Fulfillment.TaxPercent != 5.5 {
		t.Errorf("Expected 5.5, got %v", cfg.Fulfillment.TaxPercent)
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[1] != "b:9092" {
		t.Errorf("Unexpected brokers %v", cfg.Kafka.Brokers)
	}
	if cfg.Redis.Enabled {
		t.Error("Expected redis disabled")
	}
	if cfg.Fulfillment.ProductionDays != 5 {
		t.Errorf("Expected fallback 5 for malformed value, got %d", cfg.Fulfillment.ProductionDays)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "memory driver", mutate: func(c *Config) { c.Storage.Driver = "memory" }},
		{name: "unknown driver", mutate: func(c *Config) { c.Storage.Driver = "sqlite" }, wantErr: true},
		{name: "negative tax", mutate: func(c *Config) { c.Fulfillment.TaxPercent = -1 }, wantErr: true},
		{name: "negative lead days", mutate: func(c *Config) { c.Fulfillment.ShippingLeadDays = -2 }, wantErr: true},
		{name: "zero lock ttl", mutate: func(c *Config) { c.Fulfillment.LockTTLSeconds = 0 }, wantErr: true},
		{name: "kafka without brokers", mutate: func(c *Config) { c.Kafka.Brokers = nil }, wantErr: true},
		{name: "kafka disabled without brokers", mutate: func(c *Config) {
			c.Kafka.Enabled = false
			c.Kafka.Brokers = nil
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := LoadEnv()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
