package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Store struct {
		// "redis" or "memory". Memory keeps everything in process and is
		// meant for development and tests only.
		Driver string `mapstructure:"driver"`
	} `mapstructure:"store"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`
	Session struct {
		Secret     string `mapstructure:"secret"`
		TTLMinutes int    `mapstructure:"ttl_minutes"`
	} `mapstructure:"session"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("redis.addr", "APP_REDIS_ADDR")
	viper.BindEnv("session.secret", "APP_SESSION_SECRET")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	if Cfg.Server.Port == "" {
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Store.Driver == "" {
		Cfg.Store.Driver = DefaultStoreDriver
	}
	if Cfg.Redis.Addr == "" {
		Cfg.Redis.Addr = DefaultRedisAddr
	}
	if Cfg.Session.TTLMinutes <= 0 {
		Cfg.Session.TTLMinutes = DefaultSessionTTLMinutes
	}
	if Cfg.Session.Secret == "" {
		log.Println("Warning: session secret not set, using insecure development default")
		Cfg.Session.Secret = DefaultSessionSecret
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Store Driver: %s", Cfg.Store.Driver)

	return nil
}
