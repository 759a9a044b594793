package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	SMTP     SMTPConfig
	Auth     AuthConfig
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

// NSQConfig contains NSQ producer configuration
type NSQConfig struct {
	Enabled         bool
	ProducerAddress string
}

// SMTPConfig contains outbound mail configuration for OTP delivery.
// An empty Host disables real delivery; codes are logged instead.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// AuthConfig contains authentication configuration
type AuthConfig struct {
	SuperadminEmail    string
	SuperadminPassword string
	SuperadminName     string
	StudentEmailDomain string
	TransientOTPTTL    int // seconds, email/mobile verification codes
	ResetOTPTTL        int // seconds, signup and password-reset codes
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
