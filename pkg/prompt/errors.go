package prompt

import (
	"errors"
	"fmt"
)

var (
	// ErrUserQuit is returned when the operator enters a quit token or input
	// ends. Callers must handle it; there is no default recovery.
	ErrUserQuit = errors.New("prompt: user quit")
	// ErrInvalid is the base of every InvalidError.
	ErrInvalid = errors.New("prompt: invalid input")
	// ErrConfig is the base of every ConfigError.
	ErrConfig = errors.New("prompt: invalid configuration")
)

// Reason tags why an answer was rejected so rules can pick a specific error
// text.
type Reason int

const (
	// ReasonGeneric covers rules with a single failure mode.
	ReasonGeneric Reason = iota
	// ReasonNumeric marks a numeric answer that was out of bounds.
	ReasonNumeric
	// ReasonText marks a text answer that matched zero or several choices.
	ReasonText
)

func (r Reason) String() string {
	switch r {
	case ReasonNumeric:
		return "numeric"
	case ReasonText:
		return "text"
	default:
		return "generic"
	}
}

// InvalidError reports one rejected answer. It never leaves Run.
type InvalidError struct {
	Reason Reason
	Err    error
}

// Invalid builds an InvalidError with an optional cause.
func Invalid(reason Reason, cause error) *InvalidError {
	return &InvalidError{Reason: reason, Err: cause}
}

func (e *InvalidError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("prompt: invalid %s input: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("prompt: invalid %s input", e.Reason)
}

func (e *InvalidError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalid, e.Err}
	}
	return []error{ErrInvalid}
}

// ConfigError reports a programming error in a validator call, raised before
// any prompting happens.
type ConfigError struct {
	Rule string
	Key  string
	Msg  string
}

// Misconfigured builds a ConfigError.
func Misconfigured(rule, key, msg string) *ConfigError {
	return &ConfigError{Rule: rule, Key: key, Msg: msg}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("prompt: %s: %s: %s", e.Rule, e.Key, e.Msg)
}

func (e *ConfigError) Unwrap() error {
	return ErrConfig
}
