package config

import "github.com/spf13/viper"

// Config is process configuration (where the server runs, where its
// collaborators live). Establishment data lives in the catalog document,
// not here.
type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
	Redis   RedisConfig
	Profile ProfileConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port int
}

type CatalogConfig struct {
	Path string
}

type RedisConfig struct {
	Host string
	Port int
	DB   int
}

type ProfileConfig struct {
	Key string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("CATALOG_PATH", "data/bdrisorte.json")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", 6379)
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("PROFILE_KEY", "storefront:profile")
	viper.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Catalog: CatalogConfig{
			Path: viper.GetString("CATALOG_PATH"),
		},
		Redis: RedisConfig{
			Host: viper.GetString("REDIS_HOST"),
			Port: viper.GetInt("REDIS_PORT"),
			DB:   viper.GetInt("REDIS_DB"),
		},
		Profile: ProfileConfig{
			Key: viper.GetString("PROFILE_KEY"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}
