package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Geofence GeofenceConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// GeofenceConfig contains geofence service specific configuration
type GeofenceConfig struct {
	ZonesFile          string // path to the YAML zone catalog
	VehicleStoreDriver string // "memory" or "redis"
	EventStoreDriver   string // "memory" or "postgres"
	MaxEvents          int    // cap on the in-memory event log
	DefaultEventLimit  int    // default limit for event queries
	VehicleStateTTLH   int    // TTL in hours for Redis-backed vehicle state
	GeohashPrecision   uint   // precision for geohash encoding of positions
}

// NewRelicConfig contains New Relic monitoring configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}
