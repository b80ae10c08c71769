package models

// Config holds all configuration for the realtime service
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	NATS     NATSConfig     `mapstructure:"nats"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Realtime RealtimeConfig `mapstructure:"realtime"`
	Logger   LoggerConfig   `mapstructure:"logger"`
}

// AppConfig holds application metadata
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Version     string `mapstructure:"version"`
	Debug       bool   `mapstructure:"debug"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ReadTimeout     int    `mapstructure:"read_timeout"`
	WriteTimeout    int    `mapstructure:"write_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig holds PostgreSQL connection configuration
type DatabaseConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	Database  string `mapstructure:"database"`
	SSLMode   string `mapstructure:"ssl_mode"`
	MaxConns  int    `mapstructure:"max_conns"`
	IdleConns int    `mapstructure:"idle_conns"`
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// NATSConfig holds NATS connection configuration
type NATSConfig struct {
	URL string `mapstructure:"url"`
}

// JWTConfig holds JWT verification configuration
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

// RealtimeConfig holds tunables for the websocket coordination layer
type RealtimeConfig struct {
	MaxConnectionsPerUser int     `mapstructure:"max_connections_per_user"`
	HeartbeatIntervalSec  int     `mapstructure:"heartbeat_interval_sec"`
	IdleTimeoutSec        int     `mapstructure:"idle_timeout_sec"`
	WriteTimeoutSec       int     `mapstructure:"write_timeout_sec"`
	SendBufferSize        int     `mapstructure:"send_buffer_size"`
	PresenceSweepSec      int     `mapstructure:"presence_sweep_sec"`
	PositionTTLSec        int     `mapstructure:"position_ttl_sec"`
	MinSpeedKmh           float64 `mapstructure:"min_speed_kmh"`
	FloorSpeedKmh         float64 `mapstructure:"floor_speed_kmh"`
	MaxMessageLength      int     `mapstructure:"max_message_length"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	FilePath string `mapstructure:"file_path"`
}
