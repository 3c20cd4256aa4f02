package apperr

import (
	"errors"
	"fmt"
	"strings"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindPreconditionFailed
	KindInsufficientMaterials
	KindInsufficientInventory
	KindPersistenceFailure
	KindInvalidInput
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindPreconditionFailed:
		return "precondition_failed"
	case KindInsufficientMaterials:
		return "insufficient_materials"
	case KindInsufficientInventory:
		return "insufficient_inventory"
	case KindPersistenceFailure:
		return "persistence_failure"
	case KindInvalidInput:
		return "invalid_input"
	default:
		return "unknown"
	}
}

// Shortage describes a material whose available weight does not cover the request.
type Shortage struct {
	Material       string  `json:"material"`
	RequiredGrams  float64 `json:"required_grams"`
	AvailableGrams float64 `json:"available_grams"`
}

type Error struct {
	Kind      Kind
	Message   string
	Shortages []Shortage
	Err       error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if len(e.Shortages) > 0 {
		names := make([]string, len(e.Shortages))
		for i, s := range e.Shortages {
			names[i] = s.Material
		}
		fmt.Fprintf(&b, " (short: %s)", strings.Join(names, ", "))
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, apperr.ErrNotFound) works
// through wrapping.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == ""
}

// Sentinels for errors.Is.
var (
	ErrNotFound              = &Error{Kind: KindNotFound}
	ErrPreconditionFailed    = &Error{Kind: KindPreconditionFailed}
	ErrInsufficientMaterials = &Error{Kind: KindInsufficientMaterials}
	ErrInsufficientInventory = &Error{Kind: KindInsufficientInventory}
	ErrPersistenceFailure    = &Error{Kind: KindPersistenceFailure}
	ErrInvalidInput          = &Error{Kind: KindInvalidInput}
)

func NotFound(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func PreconditionFailed(format string, args ...interface{}) error {
	return &Error{Kind: KindPreconditionFailed, Message: fmt.Sprintf(format, args...)}
}

func InvalidInput(format string, args ...interface{}) error {
	return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func InsufficientMaterials(shortages []Shortage, cause error) error {
	return &Error{
		Kind:      KindInsufficientMaterials,
		Message:   "insufficient materials in inventory",
		Shortages: shortages,
		Err:       cause,
	}
}

func InsufficientInventory(shortages []Shortage) error {
	return &Error{
		Kind:      KindInsufficientInventory,
		Message:   "insufficient inventory to reserve",
		Shortages: shortages,
	}
}

// Persistence classifies err as a store failure unless it already carries a kind.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}
	return &Error{Kind: KindPersistenceFailure, Message: op, Err: err}
}

// KindOf returns the kind of the outermost *Error in err's chain.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// ShortagesOf returns the shortages of the first *Error in the chain that has any.
func ShortagesOf(err error) []Shortage {
	for err != nil {
		if appErr, ok := err.(*Error); ok && len(appErr.Shortages) > 0 {
			return appErr.Shortages
		}
		err = errors.Unwrap(err)
	}
	return nil
}

func formatShortage(s Shortage) string {
	return fmt.Sprintf("required %gg, available %gg", s.RequiredGrams, s.AvailableGrams)
}
