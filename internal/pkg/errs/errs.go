// Package errs is the single import point for error construction. Sentinels built
// with New can be attached to any cause with Mark and matched later with Is,
// which is how handlers map store and domain failures to status codes.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark tags err with sentinel while keeping err as the reported cause. A nil err
// yields the sentinel itself.
func Mark(err error, sentinel error) error {
	if err == nil {
		return sentinel
	}
	return cr.Mark(err, sentinel)
}

func Is(err, reference error) bool {
	return cr.Is(err, reference)
}
