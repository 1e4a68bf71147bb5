package config

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/shardcfg/internal/diffreport"
	"github.com/thoreinstein/shardcfg/internal/translate"
)

// Validation errors for settings.
var (
	// ErrUnsupportedVersion indicates a settings file of another version.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidValue indicates a setting outside its allowed values.
	ErrInvalidValue = errors.New("invalid value")
)

// FieldError reports an invalid setting.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Validate checks cfg and returns every problem found.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != 1 {
		errs = append(errs, errors.Wrapf(ErrUnsupportedVersion, "version %d (want 1)", cfg.Version))
	}

	if _, err := diffreport.ParseStyle(cfg.DiffFormat); err != nil {
		errs = append(errs, &FieldError{Field: KeyDiffFormat, Value: cfg.DiffFormat, Err: ErrInvalidValue})
	}

	if _, err := translate.ParseFormat(cfg.OutputFormat); err != nil {
		errs = append(errs, &FieldError{Field: KeyOutputFormat, Value: cfg.OutputFormat, Err: ErrInvalidValue})
	}

	if strings.ContainsRune(cfg.DataConfig, '\x00') {
		errs = append(errs, &FieldError{Field: KeyDataConfig, Value: cfg.DataConfig, Err: ErrInvalidValue})
	}

	return errs
}
