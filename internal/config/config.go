package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	MySQL    MySQLConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
	Paystack PaystackConfig
	Admin    AdminConfig
}

type AppConfig struct {
	Env string
	// BaseURL is the public URL used to build the payment callback.
	BaseURL string
}

type ServerConfig struct {
	Port string
}

type MySQLConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

type RedisConfig struct {
	Host string
}

type RabbitMQConfig struct {
	URL      string
	Exchange string
}

type PaystackConfig struct {
	BaseURL string
	Secret  string
}

type AdminConfig struct {
	// Token is the shared secret for the admin report and seed endpoints.
	Token string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Env:     getEnv("APP_ENV", "development"),
			BaseURL: getEnv("BASE_URL", "http://localhost:"+getEnv("PORT", "4000")),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "4000"),
		},
		MySQL: MySQLConfig{
			Host:     getEnv("MYSQL_HOST", "localhost"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			User:     getEnv("MYSQL_USER", "root"),
			Password: getEnv("MYSQL_PASSWORD", ""),
			Database: getEnv("MYSQL_DATABASE", "shopfront"),
		},
		Redis: RedisConfig{
			Host: getEnv("REDIS_HOST", ""),
		},
		RabbitMQ: RabbitMQConfig{
			URL:      getEnv("RABBITMQ_URL", ""),
			Exchange: getEnv("RABBITMQ_EXCHANGE", "shop.events"),
		},
		Paystack: PaystackConfig{
			BaseURL: getEnv("PAYSTACK_BASE_URL", "https://api.paystack.co"),
			Secret:  getEnv("PAYSTACK_SECRET", ""),
		},
		Admin: AdminConfig{
			Token: getEnv("GODMODE_TOKEN", ""),
		},
	}

	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	if c.MySQL.Host == "" || c.MySQL.User == "" || c.MySQL.Database == "" {
		return fmt.Errorf("mysql config is incomplete")
	}
	if c.Paystack.Secret == "" {
		return fmt.Errorf("PAYSTACK_SECRET is not set")
	}
	if c.Admin.Token == "" {
		return fmt.Errorf("GODMODE_TOKEN is not set")
	}
	return nil
}

func (m MySQLConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		m.User, m.Password, m.Host, m.Port, m.Database)
}

func (s ServerConfig) Address() string {
	return ":" + s.Port
}

func getEnv(key, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return defaultVal
}
