// Package errs is a thin seam over cockroachdb/errors: wrapping keeps
// stack traces, Mark ties infrastructure errors to usecase sentinels so
// handlers can branch with Is.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether err matches reference, honoring marks applied via
// Mark in addition to the standard unwrap chain. The stdlib errors.Is
// cannot see marks, so callers branching on marked sentinels must use
// this instead.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// ExtractStackLines renders err with its stack and returns at most
// maxLines lines, for structured log fields.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
