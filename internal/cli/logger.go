package cli

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// newLogger builds a production logger writing to stderr. quiet disables logging.
func newLogger(level string, quiet bool) (*zap.Logger, error) {
	if quiet {
		return zap.NewNop(), nil
	}

	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse log level %q", level)
	}

	config := zap.NewProductionConfig()
	config.Level = lvl
	config.Encoding = "console"
	config.DisableStacktrace = true

	log, err := config.Build()
	if err != nil {
		return nil, errors.Wrap(err, "unable to build logger")
	}

	return log, nil
}
