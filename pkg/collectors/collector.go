// Package collectors defines how pulse-bar widgets obtain raw status text
// from the host. Battery and memory widgets shell out to small utilities
// (acpi, free) through a Runner so tests can substitute canned output.
package collectors

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"unicode/utf8"
)

// Error kinds reported by collectors. Widgets return these unchanged (or
// wrapped) so callers can match them with errors.Is / errors.As.
var (
	// ErrCommandFailed means the external program could not be run.
	ErrCommandFailed = errors.New("command failed to execute")

	// ErrInvalidEncoding means the program's output was not valid UTF-8.
	ErrInvalidEncoding = errors.New("encountered invalid utf8 string")
)

// MalformedOutputError reports output that did not have the expected shape.
type MalformedOutputError struct {
	Reason string
}

func (e *MalformedOutputError) Error() string {
	return "bad command output: " + e.Reason
}

// Malformed returns a *MalformedOutputError with the given reason.
func Malformed(reason string) error {
	return &MalformedOutputError{Reason: reason}
}

// Runner runs an external program and returns its standard output as text.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner runs programs with os/exec.
type ExecRunner struct{}

// Run executes name with args and returns stdout. A program that cannot be
// started, or is stopped by ctx, yields ErrCommandFailed. A non-zero exit
// status still returns the output. Output that is not valid UTF-8 yields
// ErrInvalidEncoding.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) || ctx.Err() != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrCommandFailed, name, err)
		}
	}
	if !utf8.Valid(out) {
		return "", ErrInvalidEncoding
	}
	return string(out), nil
}

// Match applies re to subject and returns the submatches, or a
// MalformedOutputError carrying reason when there is no match. Unmatched
// optional groups come back as empty strings.
func Match(re *regexp.Regexp, subject, reason string) ([]string, error) {
	caps := re.FindStringSubmatch(subject)
	if caps == nil {
		return nil, Malformed(reason)
	}
	return caps, nil
}

// MemoryUsage is a physical memory snapshot in kilobytes (1 kB = 1024 bytes,
// matching the units free(1) prints).
type MemoryUsage struct {
	TotalKB int
	UsedKB  int
}
