package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Redis     RedisConfig
	NATS      NATSConfig
	JWT       JWTConfig
	Backend   BackendConfig
	Transport TransportConfig
	Logger    LoggerConfig
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

// BackendConfig contains the marketplace backend connection configuration
type BackendConfig struct {
	BaseURL string
	Token   string // service bearer token attached to every backend request
	Timeout int    // in seconds
}

// TransportConfig contains transport service specific configuration
type TransportConfig struct {
	GeofenceRadiusM float64 `json:"geofence_radius_m"` // Pickup verification threshold in meters
	JobSessionTTLH  int     `json:"job_session_ttl_h"` // Hours an active job session is kept in Redis
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string // "console", "file" or "both"
}
