package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"credcheck/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const redactedValue = "[REDACTED]"

// sensitiveKeys are attribute keys that may never reach a log sink with their value.
var sensitiveKeys = map[string]struct{}{
	"password":     {},
	"passwordhash": {},
	"secret":       {},
	"secrethash":   {},
	"hash":         {},
}

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New creates and initializes slog.Logger
func New(params Params) (*slog.Logger, error) {
	return NewWithWriter(params.Config, os.Stdout)
}

// NewWithWriter builds the logger described by cfg on top of w.
func NewWithWriter(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level, ReplaceAttr: redactSensitive}

	var logger *slog.Logger
	if cfg.Env.Log.Pretty {
		logger = slog.New(slog.NewTextHandler(w, opts))
	} else {
		logger = slog.New(slog.NewJSONHandler(w, opts))
	}

	if cfg.Env.ServiceName != "" {
		logger = logger.With(slog.String("service", cfg.Env.ServiceName))
	}

	return logger, nil
}

// redactSensitive masks credential material regardless of group nesting.
func redactSensitive(_ []string, attr slog.Attr) slog.Attr {
	if _, ok := sensitiveKeys[strings.ToLower(attr.Key)]; ok {
		return slog.String(attr.Key, redactedValue)
	}

	return attr
}

// parseLogLevel converts string log level to slog.Level
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
