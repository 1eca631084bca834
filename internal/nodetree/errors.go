package nodetree

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors describing why a tree operation failed.
// Match them with errors.Is; operations return them wrapped in a *PathError.
var (
	// ErrDataConflict is returned when merging a node that still carries data.
	ErrDataConflict = errors.New("node carries data")
	// ErrDuplicateName is returned when a merged child name already exists.
	ErrDuplicateName = errors.New("duplicate name")
	// ErrNameInUse is returned when a child name is taken or reserved.
	ErrNameInUse = errors.New("name in use")
	// ErrInvalidPath is returned for empty or malformed path segments and
	// when no free generated name could be found.
	ErrInvalidPath = errors.New("invalid path")
	// ErrNoNode is returned when a path segment does not resolve.
	ErrNoNode = errors.New("no node")
)

// PathError records the operation, the requested path and the segment that
// caused a failure.
type PathError struct {
	Op   string // operation name, e.g. "borrow"
	Path string // path as passed by the caller
	Name string // offending segment; empty when it is the whole path
	Err  error  // one of the sentinel errors
}

// Error implements the error interface.
func (e *PathError) Error() string {
	var sb strings.Builder
	sb.WriteString("nodetree: ")
	sb.WriteString(e.Op)
	sb.WriteString(" ")
	sb.WriteString(fmt.Sprintf("%q", e.Path))
	sb.WriteString(": ")
	sb.WriteString(e.Err.Error())
	if e.Name != "" && e.Name != e.Path {
		sb.WriteString(fmt.Sprintf(" %q", e.Name))
	}
	return sb.String()
}

// Unwrap returns the sentinel error.
func (e *PathError) Unwrap() error {
	return e.Err
}

func pathError(op, path, name string, err error) *PathError {
	return &PathError{Op: op, Path: path, Name: name, Err: err}
}
