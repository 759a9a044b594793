package config

import (
	"log"

	"github.com/spf13/viper"

	"github.com/snsce/attendance/internal/pkg/models"
)

// InitConfig builds the application configuration from environment
// variables, optionally seeded from an env file for local runs.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.MergeInConfig(); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	return loadConfig(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "attendance-service")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "")

	v.SetDefault("SERVER_HOST", "")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_READ_TIMEOUT", 30)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 30)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 10)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USERNAME", "")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_DATABASE", "attendance")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NSQ_ENABLED", false)
	v.SetDefault("NSQ_PRODUCER_ADDRESS", "localhost:4150")

	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USERNAME", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("SMTP_FROM", "")

	v.SetDefault("AUTH_SUPERADMIN_EMAIL", "")
	v.SetDefault("AUTH_SUPERADMIN_PASSWORD", "")
	v.SetDefault("AUTH_SUPERADMIN_NAME", "Super Admin")
	v.SetDefault("AUTH_STUDENT_EMAIL_DOMAIN", "@snsce.ac.in")
	v.SetDefault("AUTH_TRANSIENT_OTP_TTL", 60)
	v.SetDefault("AUTH_RESET_OTP_TTL", 600)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	configs.NSQ.Enabled = v.GetBool("NSQ_ENABLED")
	configs.NSQ.ProducerAddress = v.GetString("NSQ_PRODUCER_ADDRESS")

	configs.SMTP.Host = v.GetString("SMTP_HOST")
	configs.SMTP.Port = v.GetInt("SMTP_PORT")
	configs.SMTP.Username = v.GetString("SMTP_USERNAME")
	configs.SMTP.Password = v.GetString("SMTP_PASSWORD")
	configs.SMTP.From = v.GetString("SMTP_FROM")

	configs.Auth.SuperadminEmail = v.GetString("AUTH_SUPERADMIN_EMAIL")
	configs.Auth.SuperadminPassword = v.GetString("AUTH_SUPERADMIN_PASSWORD")
	configs.Auth.SuperadminName = v.GetString("AUTH_SUPERADMIN_NAME")
	configs.Auth.StudentEmailDomain = v.GetString("AUTH_STUDENT_EMAIL_DOMAIN")
	configs.Auth.TransientOTPTTL = v.GetInt("AUTH_TRANSIENT_OTP_TTL")
	configs.Auth.ResetOTPTTL = v.GetInt("AUTH_RESET_OTP_TTL")

	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}
