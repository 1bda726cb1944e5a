package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Logger   LoggerConfig
	Tracking TrackingConfig
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

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Format   string
}

// TrackingConfig contains the live-tracking core configuration
type TrackingConfig struct {
	// ProximityThresholdM is the distance in meters at or below which a
	// vehicle is considered near a waypoint or subscriber.
	ProximityThresholdM float64
	// MinReportIntervalMS is the minimum interval between applied position
	// reports per vehicle; faster reports are coalesced.
	MinReportIntervalMS int
	// OutboundBuffer is the per-connection outbound message buffer size.
	// A member whose buffer is full at publish time is disconnected.
	OutboundBuffer int
	// WaypointCacheTTLS is the TTL in seconds for the per-route waypoint cache.
	WaypointCacheTTLS int
}
