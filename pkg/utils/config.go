package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Media    MediaConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	// SeatCacheTTLSeconds bounds how stale the taken-seat map may get.
	SeatCacheTTLSeconds int
}

type JWTConfig struct {
	Secret         string
	AccessTTLMin   int
	RefreshTTLDays int
}

type MediaConfig struct {
	// Dir is where uploaded movie images land; served under /media/.
	Dir string
	// MaxUploadMB caps multipart image uploads.
	MaxUploadMB int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("SEAT_CACHE_TTL_SECONDS", 30)
	viper.SetDefault("JWT_ACCESS_TTL_MIN", 30)
	viper.SetDefault("JWT_REFRESH_TTL_DAYS", 14)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("MEDIA_DIR", "media/")
	viper.SetDefault("MAX_UPLOAD_MB", 10)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Redis: RedisConfig{
			Addr:                viper.GetString("REDIS_ADDR"),
			Password:            viper.GetString("REDIS_PASS"),
			DB:                  viper.GetInt("REDIS_DB"),
			SeatCacheTTLSeconds: viper.GetInt("SEAT_CACHE_TTL_SECONDS"),
		},
		JWT: JWTConfig{
			Secret:         viper.GetString("JWT_SECRET"),
			AccessTTLMin:   viper.GetInt("JWT_ACCESS_TTL_MIN"),
			RefreshTTLDays: viper.GetInt("JWT_REFRESH_TTL_DAYS"),
		},
		Media: MediaConfig{
			Dir:         viper.GetString("MEDIA_DIR"),
			MaxUploadMB: viper.GetInt("MAX_UPLOAD_MB"),
		},
	}

	return config, nil
}
