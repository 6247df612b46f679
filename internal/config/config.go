package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DatabaseDriver     string        `mapstructure:"DATABASE_DRIVER"`
	DatabaseURL        string        `mapstructure:"DATABASE_URL"`
	DBMaxOpenConns     int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns     int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	JWTSecret          string        `mapstructure:"JWT_SECRET"`
	JWTTTL             time.Duration `mapstructure:"JWT_TTL"`
	ServerAddr         string        `mapstructure:"SERVER_ADDR"`
	RedisURL           string        `mapstructure:"REDIS_URL"`
	CORSAllowedOrigins string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	LogFile            string        `mapstructure:"LOG_FILE"`
	GinMode            string        `mapstructure:"GIN_MODE"`
}

var AppConfig *Config

// Origins splits CORS_ALLOWED_ORIGINS into a list.
func (c *Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func setDefaults() {
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=chessclub port=5432 sslmode=disable")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("JWT_SECRET", "it's a secret")
	viper.SetDefault("JWT_TTL", "168h")
	viper.SetDefault("SERVER_ADDR", ":8080")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("LOG_FILE", "")
	viper.SetDefault("GIN_MODE", "debug")
}

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	setDefaults()
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	err := viper.Unmarshal(&AppConfig)
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
