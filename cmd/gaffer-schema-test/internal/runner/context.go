package runner

import (
	"log/slog"

	"github.com/gchq/gaffer-experimental-sub000/internal/logging"
	"github.com/gchq/gaffer-experimental-sub000/validation"
)

type RunnerContext struct {
	Validator     *validation.Validator
	BaseDir       string
	StopOnFailure bool
	Logger        *slog.Logger
}

// NewRunnerContext creates a context resolving test files relative to baseDir.
func NewRunnerContext(validator *validation.Validator, baseDir string) *RunnerContext {
	return &RunnerContext{
		Validator: validator,
		BaseDir:   baseDir,
		Logger:    logging.Discard(),
	}
}
