package logger

import (
	"go.uber.org/zap"

	"github.com/aliskhannn/career-compass-bot/internal/config"
)

// New builds a zap logger: JSON production logging for the production
// environment, human readable development logging otherwise.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Env == "production" {
		return zap.NewProduction()
	}

	return zap.NewDevelopment()
}
