package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Storage drivers accepted by STORAGE_DRIVER
const (
	StorageDriverSQLite   = "sqlite"
	StorageDriverPostgres = "postgres"
	StorageDriverRedis    = "redis"
	StorageDriverMemory   = "memory"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	DB      DBConfig
	Redis   RedisConfig
}

type AppConfig struct {
	Port       string
	Env        string
	LogLevel   string
	CORSOrigin string
}

type StorageConfig struct {
	Driver          string
	SQLitePath      string
	ProfilesSlot    string
	UserProfileSlot string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// LoadConfig reads an optional .env file and the process environment.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGIN", "*")
	v.SetDefault("STORAGE_DRIVER", StorageDriverSQLite)
	v.SetDefault("SQLITE_PATH", "data/pethealth.db")
	v.SetDefault("STORAGE_PROFILES_SLOT", "vetProfiles")
	v.SetDefault("STORAGE_USER_PROFILE_SLOT", "userProfile")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
}

func fromViper(v *viper.Viper) (*Config, error) {
	driver := strings.ToLower(v.GetString("STORAGE_DRIVER"))
	switch driver {
	case StorageDriverSQLite, StorageDriverPostgres, StorageDriverRedis, StorageDriverMemory:
	default:
		return nil, errors.New("unsupported STORAGE_DRIVER: " + driver)
	}

	config := &Config{
		App: AppConfig{
			Port:       v.GetString("APP_PORT"),
			Env:        v.GetString("APP_ENV"),
			LogLevel:   v.GetString("LOG_LEVEL"),
			CORSOrigin: v.GetString("CORS_ALLOWED_ORIGIN"),
		},
		Storage: StorageConfig{
			Driver:          driver,
			SQLitePath:      v.GetString("SQLITE_PATH"),
			ProfilesSlot:    v.GetString("STORAGE_PROFILES_SLOT"),
			UserProfileSlot: v.GetString("STORAGE_USER_PROFILE_SLOT"),
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
	}

	return config, nil
}
