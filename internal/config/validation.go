package config

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the configuration for errors. The returned error wraps
// ErrInvalidConfig and a ValidationErrors.
func (c *Config) Validate() error {
	var errs ValidationErrors
	errs = append(errs, validateLayout(&c.Layout)...)
	errs = append(errs, validateFont(&c.Font)...)
	errs = append(errs, validateLogging(&c.Logging)...)
	if c.Selection.CaretWidth <= 0 {
		errs = append(errs, ValidationError{
			Field:   "selection.caret_width",
			Message: "caret width must be positive",
		})
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errs)
	}
	return nil
}

func validateLayout(l *LayoutConfig) ValidationErrors {
	var errs ValidationErrors

	if l.Width < 0 {
		errs = append(errs, ValidationError{Field: "layout.width", Message: "width cannot be negative"})
	}
	if l.Padding < 0 {
		errs = append(errs, ValidationError{Field: "layout.padding", Message: "padding cannot be negative"})
	}
	if l.BlockSpacing < 0 {
		errs = append(errs, ValidationError{Field: "layout.block_spacing", Message: "block spacing cannot be negative"})
	}
	if l.TabWidth < 1 {
		errs = append(errs, ValidationError{Field: "layout.tab_width", Message: "tab width must be at least 1"})
	}

	switch l.Direction {
	case "auto", "ltr", "rtl":
	default:
		errs = append(errs, ValidationError{
			Field:   "layout.direction",
			Message: fmt.Sprintf("invalid direction: %s (valid: auto, ltr, rtl)", l.Direction),
		})
	}

	if l.Locale != "" {
		if _, err := language.Parse(l.Locale); err != nil {
			errs = append(errs, ValidationError{
				Field:   "layout.locale",
				Message: fmt.Sprintf("invalid language tag %q: %v", l.Locale, err),
			})
		}
	}
	return errs
}

func validateFont(f *FontConfig) ValidationErrors {
	var errs ValidationErrors

	switch f.Face {
	case "go", "basic", "fixed":
	default:
		errs = append(errs, ValidationError{
			Field:   "font.face",
			Message: fmt.Sprintf("invalid face: %s (valid: go, basic, fixed)", f.Face),
		})
	}
	if f.Size <= 0 {
		errs = append(errs, ValidationError{Field: "font.size", Message: "size must be positive"})
	}
	if f.DPI <= 0 {
		errs = append(errs, ValidationError{Field: "font.dpi", Message: "dpi must be positive"})
	}
	return errs
}

func validateLogging(l *LoggingConfig) ValidationErrors {
	var errs ValidationErrors

	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid log level: %s (valid: debug, info, warn, error)", l.Level),
		})
	}

	switch l.Format {
	case "text", "json":
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("invalid log format: %s (valid: text, json)", l.Format),
		})
	}
	return errs
}
