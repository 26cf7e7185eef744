package application

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Storage when the named object does not exist.
var ErrNotFound = errors.New("not found")

type Kind int

const (
	KindInternal Kind = iota
	// KindUpstream marks incomplete or malformed data from the price API.
	KindUpstream
	// KindTransport marks network failures and non-success statuses.
	KindTransport
	KindStorage
	KindCorruptSnapshot
	KindMissingFile
)

func (k Kind) String() string {
	switch k {
	case KindUpstream:
		return "upstream"
	case KindTransport:
		return "transport"
	case KindStorage:
		return "storage"
	case KindCorruptSnapshot:
		return "corrupt_snapshot"
	case KindMissingFile:
		return "missing_file"
	default:
		return "internal"
	}
}

// Recoverable kinds are logged and the run carries on.
func (k Kind) Recoverable() bool {
	return k == KindCorruptSnapshot || k == KindMissingFile
}

type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func E(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf returns the kind of the outermost *Error in the chain, or
// KindInternal when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// ExitCode maps a run result to the process exit status.
func ExitCode(err error) int {
	if err == nil || KindOf(err).Recoverable() {
		return 0
	}
	return 1
}
