package config

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

// Validation error codes (E200-E299)
const (
	// ErrSchemaViolation indicates the config does not satisfy the schema.
	ErrSchemaViolation = "E201"

	// ErrEncodeFailed indicates the config could not be encoded for
	// validation at all.
	ErrEncodeFailed = "E202"
)

// schema is the CUE definition every loaded Config must satisfy.
const schema = `
precision: int & >=0
log: {
	level:  "debug" | "info" | "warn" | "error"
	format: "text" | "json"
}
`

// ValidationError represents a config schema violation.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks cfg against the embedded CUE schema.
// Returns all violations found (does not fail-fast).
func Validate(cfg Config) []ValidationError {
	ctx := cuecontext.New()

	sv := ctx.CompileString(schema)
	if err := sv.Err(); err != nil {
		return []ValidationError{{
			Message: fmt.Sprintf("compiling config schema: %v", err),
			Code:    ErrEncodeFailed,
		}}
	}

	cv := ctx.Encode(cfg)
	if err := cv.Err(); err != nil {
		return []ValidationError{{
			Message: fmt.Sprintf("encoding config: %v", err),
			Code:    ErrEncodeFailed,
		}}
	}

	unified := sv.Unify(cv)
	err := unified.Validate(cue.Concrete(true))
	if err == nil {
		return nil
	}

	var verrs []ValidationError
	for _, e := range cueerrors.Errors(err) {
		verrs = append(verrs, ValidationError{
			Field:   strings.Join(e.Path(), "."),
			Message: e.Error(),
			Code:    ErrSchemaViolation,
		})
	}
	return verrs
}
