package config

import "os"

// Config holds process-level settings read from the environment.
type Config struct {
	MongoURI    string
	MongoDBName string
	RedisAddr   string
	HTTPPort    string
	JWTSecret   string
}

// Load reads configuration from the environment with development defaults.
func Load() *Config {
	return &Config{
		MongoURI:    getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName: getEnvOrDefault("MONGO_DB", "orgrealign"),
		RedisAddr:   getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		HTTPPort:    getEnvOrDefault("PORT", "8080"),
		JWTSecret:   getEnvOrDefault("JWT_SECRET", "super-secret-key-change-in-production"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
