package impl

import (
	"bytes"
	"io"
	"log/slog"

	"credcheck/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newCaptureLogger records every level so tests can scan what was emitted.
func newCaptureLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func newTestConfig(minSecretLength int, disableTimingEqualization bool) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			MinSecretLength:           minSecretLength,
			DisableTimingEqualization: disableTimingEqualization,
		},
	}
}
