package env

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Load reads the given .env files (or ./.env) into the process environment.
// Variables already set are never overridden.
func Load(log *zap.SugaredLogger, files ...string) {
	if err := godotenv.Load(files...); err != nil {
		log.Infow("startup", "env", ".env file not loaded, using environment variables")
	}
}

// OrDefault return the value of an env var, if the env var value is empty, return a default value
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	v := os.Getenv(env)
	if v == "" {
		log.Debugw("env", "key", env, "default", def)
		return def
	}
	return v
}

// Must return the value of an env var, panicking if it is empty
func Must(log *zap.SugaredLogger, env string) string {
	v := os.Getenv(env)
	if v == "" {
		log.Errorw("env", "key", env, "error", "required env var is empty")
		panic("env var " + env + " is required")
	}
	return v
}
