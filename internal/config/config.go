package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the runtime settings, read from the environment with an
// optional .env file for development.
type Config struct {
	Addr         string
	DatabaseURL  string
	RedisAddr    string
	JWTSecret    string
	SeedDemoData bool
}

// Load reads configuration. Missing values fall back to defaults; an absent
// .env file is not an error.
func Load() Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("database_url", "")
	v.SetDefault("redis_addr", "")
	v.SetDefault("jwt_secret", "dev-secret-change-me")
	v.SetDefault("seed_demo_data", false)
	v.AutomaticEnv()

	return Config{
		Addr:         v.GetString("addr"),
		DatabaseURL:  v.GetString("database_url"),
		RedisAddr:    v.GetString("redis_addr"),
		JWTSecret:    v.GetString("jwt_secret"),
		SeedDemoData: v.GetBool("seed_demo_data"),
	}
}
