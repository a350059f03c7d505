// Package faults classifies every error the cart core can surface so the
// edge can map it to a user-visible status without string matching.
package faults

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// Unknown covers errors that did not pass through this package.
	Unknown Kind = iota
	// InvalidArgument: malformed or missing identifiers. Client fault,
	// never retried.
	InvalidArgument
	// ItemNotFound: an add referenced an item missing from the catalog.
	// Client fault, never retried.
	ItemNotFound
	// Infrastructure: backing-store connection, timeout or other
	// transient fault. Safe to retry with bounded backoff.
	Infrastructure
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case ItemNotFound:
		return "ItemNotFound"
	case Infrastructure:
		return "InfrastructureError"
	default:
		return "Unknown"
	}
}

// Fault carries a kind plus an optional wrapped cause.
type Fault struct {
	Kind Kind
	Msg  string
	Err  error
}

func (f *Fault) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %s: %v", f.Kind, f.Msg, f.Err)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Msg)
}

func (f *Fault) Unwrap() error { return f.Err }

func InvalidArgumentf(format string, args ...any) error {
	return &Fault{Kind: InvalidArgument, Msg: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...any) error {
	return &Fault{Kind: ItemNotFound, Msg: fmt.Sprintf(format, args...)}
}

// Infra wraps a backing-store error. A nil err returns nil so call sites
// can wrap return values unconditionally.
func Infra(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Fault{Kind: Infrastructure, Msg: msg, Err: err}
}

// KindOf extracts the classification, Unknown for foreign errors.
func KindOf(err error) Kind {
	var f *Fault
	if errors.As(err, &f) {
		return f.Kind
	}
	return Unknown
}

// Message returns the classified message, or err.Error() for foreign errors.
func Message(err error) string {
	var f *Fault
	if errors.As(err, &f) {
		return f.Msg
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

// Retryable reports whether a retry with backoff may help. Unknown errors
// are treated as infrastructure-ish and retryable; client faults are not.
func Retryable(err error) bool {
	switch KindOf(err) {
	case InvalidArgument, ItemNotFound:
		return false
	default:
		return err != nil
	}
}
