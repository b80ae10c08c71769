package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ridelink/tripsync/internal/pkg/models"
	"github.com/spf13/viper"
)

// Load reads configuration from the given yaml file (optional) and the
// environment, environment variables winning. Nested keys map to env vars
// with underscores, e.g. realtime.max_connections_per_user ->
// REALTIME_MAX_CONNECTIONS_PER_USER.
func Load(path string) (*models.Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	cfg := &models.Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "tripsync")
	v.SetDefault("app.environment", "local")
	v.SetDefault("app.debug", false)

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 9990)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.shutdown_timeout", 30)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.idle_conns", 2)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("nats.url", "nats://localhost:4222")

	v.SetDefault("realtime.max_connections_per_user", 5)
	v.SetDefault("realtime.heartbeat_interval_sec", 25)
	v.SetDefault("realtime.idle_timeout_sec", 60)
	v.SetDefault("realtime.write_timeout_sec", 10)
	v.SetDefault("realtime.send_buffer_size", 64)
	v.SetDefault("realtime.presence_sweep_sec", 300)
	v.SetDefault("realtime.position_ttl_sec", 120)
	v.SetDefault("realtime.min_speed_kmh", 5)
	v.SetDefault("realtime.floor_speed_kmh", 40)
	v.SetDefault("realtime.max_message_length", 2000)

	v.SetDefault("logger.level", "info")
}
