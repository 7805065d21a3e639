package app

import (
	"github.com/rdcatlas/rdcatlas-backend/internal/platform/logger"
	"github.com/rdcatlas/rdcatlas-backend/internal/utils"
)

type Config struct {
	Port        string
	Environment string
	Version     string
	AutoMigrate bool
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		Port:        utils.GetEnv("PORT", "8080", log),
		Environment: utils.GetEnv("APP_ENV", "development", log),
		Version:     utils.GetEnv("APP_VERSION", "dev", log),
		AutoMigrate: utils.GetEnvAsBool("DB_AUTO_MIGRATE", true, log),
	}
}
