package impl

import (
	"io"
	"log/slog"

	"quill/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(enforceOwnership bool) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:              12,
			EnforceProjectOwnership: enforceOwnership,
		},
	}
}
