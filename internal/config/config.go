package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DatabaseConfig holds the Postgres connection settings.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN returns the GORM connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// URL returns the migration connection URL.
func (c DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

// KafkaConfig holds the Kafka producer settings. An empty broker list
// disables event publishing.
type KafkaConfig struct {
	Brokers []string
}

// Config holds all configuration for the service.
type Config struct {
	Port   string
	AppEnv string
	DB     DatabaseConfig
	Kafka  KafkaConfig
}

// Load reads configuration from SHAREIT_-prefixed environment variables
// with local-development defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SHAREIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", ":8080")
	v.SetDefault("app_env", "development")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "shareit")
	v.SetDefault("db.password", "shareit")
	v.SetDefault("db.name", "shareit")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("kafka.brokers", "")

	var brokers []string
	if raw := v.GetString("kafka.brokers"); raw != "" {
		brokers = strings.Split(raw, ",")
	}

	return &Config{
		Port:   v.GetString("port"),
		AppEnv: v.GetString("app_env"),
		DB: DatabaseConfig{
			Host:     v.GetString("db.host"),
			Port:     v.GetInt("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			DBName:   v.GetString("db.name"),
			SSLMode:  v.GetString("db.sslmode"),
		},
		Kafka: KafkaConfig{Brokers: brokers},
	}, nil
}
