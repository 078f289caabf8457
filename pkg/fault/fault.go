// Package fault classifies business errors so controllers can map them to
// HTTP status codes without string matching.
package fault

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type Kind int

const (
	Validation Kind = iota + 1 // malformed or insufficient input
	NotFound                   // referenced entity absent
	Conflict                   // uniqueness violated (duplicate payment, promo code)
	Persistence                // underlying storage failure
)

type Fault struct {
	Kind Kind
	Msg  string
	Err  error
}

func (f *Fault) Error() string {
	if f.Msg != "" {
		return f.Msg
	}
	if f.Err != nil {
		return f.Err.Error()
	}
	return "unknown fault"
}

func (f *Fault) Unwrap() error { return f.Err }

func Validationf(format string, args ...any) error {
	return &Fault{Kind: Validation, Msg: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...any) error {
	return &Fault{Kind: NotFound, Msg: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...any) error {
	return &Fault{Kind: Conflict, Msg: fmt.Sprintf(format, args...)}
}

// Wrap surfaces a storage error with its native text. Record-not-found is
// promoted to a NotFound fault with the given message.
func Wrap(err error, notFoundMsg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &Fault{Kind: NotFound, Msg: notFoundMsg, Err: err}
	}
	return &Fault{Kind: Persistence, Msg: err.Error(), Err: err}
}

// KindOf reports the fault kind, defaulting to Persistence for untyped errors.
func KindOf(err error) Kind {
	var f *Fault
	if errors.As(err, &f) {
		return f.Kind
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound
	}
	return Persistence
}
