package config

import (
	"os"
)

// Secrets держит токены внешних систем. Значения берутся из окружения,
// пустой токен обнаруживается на первом обращении к соответствующему API.
type Secrets struct {
	MoySkladToken string
	CatalogAPIKey string
	JWTSecret     string
}

func GetSecrets() *Secrets {
	return &Secrets{
		MoySkladToken: getEnv("MS_TOKEN", ""),
		CatalogAPIKey: getEnv("NC_API_KEY", ""),
		JWTSecret:     getEnv("JWT_SECRET", ""),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
