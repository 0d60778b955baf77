package config

import (
	"fmt"
	"os"
	"time"
)

// Config contient la configuration de l'application, chargée depuis l'environnement
type Config struct {
	Port       string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Flux externe d'offres d'emploi (RemoteOK par défaut)
	JobFeedURL     string
	JobFeedTimeout time.Duration

	DefaultUserID string
}

// LoadConfig lit la configuration depuis les variables d'environnement
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8001"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "thriveremote"),
		DBPassword:     getEnv("DB_PASSWORD", "thriveremote"),
		DBName:         getEnv("DB_NAME", "thriveremote"),
		JobFeedURL:     getEnv("JOB_FEED_URL", "https://remoteok.com/api"),
		JobFeedTimeout: getEnvDuration("JOB_FEED_TIMEOUT", 10*time.Second),
		DefaultUserID:  getEnv("DEFAULT_USER_ID", "default_user"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration invalide: %w", err)
	}

	return cfg, nil
}

// Validate vérifie que les champs obligatoires sont renseignés
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT ne peut pas être vide")
	}
	if c.DBHost == "" || c.DBName == "" {
		return fmt.Errorf("DB_HOST et DB_NAME sont requis")
	}
	if c.JobFeedTimeout <= 0 {
		return fmt.Errorf("JOB_FEED_TIMEOUT doit être positif")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
