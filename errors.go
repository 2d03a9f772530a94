package abicall

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
var (
	// ErrArgumentCount indicates no overload accepts the supplied number of arguments.
	ErrArgumentCount = errors.New("abicall: no overload accepts this many arguments")

	// ErrNoMatchingOverload indicates every arity-compatible overload rejected the arguments.
	ErrNoMatchingOverload = errors.New("abicall: arguments match no overload")

	// ErrNoConstructor indicates constructor arguments were given for an ABI without a constructor.
	ErrNoConstructor = errors.New("abicall: ABI declares no constructor")

	// ErrUnsupportedFragment indicates a fragment type this package does not know.
	ErrUnsupportedFragment = errors.New("abicall: unsupported fragment type")

	// ErrEmptyBytecode indicates deploy data was requested without creation bytecode.
	ErrEmptyBytecode = errors.New("abicall: empty bytecode")
)

// MethodNotFoundError indicates the accessor map has no entry for the requested method.
type MethodNotFoundError struct {
	Contract string
	Method   string
}

func (e *MethodNotFoundError) Error() string {
	if e.Contract == "" {
		return fmt.Sprintf("abicall: method %q not found", e.Method)
	}
	return fmt.Sprintf("abicall: method %q not found in contract %s", e.Method, e.Contract)
}

// ArgumentError indicates an issue with the arguments of a call.
// Index is -1 when the error concerns the argument list as a whole.
type ArgumentError struct {
	Method string
	Index  int
	Err    error
}

func (e *ArgumentError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("abicall: arguments for method %q: %v", e.Method, e.Err)
	}
	return fmt.Sprintf("abicall: argument %d for method %q: %v", e.Index, e.Method, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// TypeMismatchError indicates a value's type doesn't match the expected parameter type.
// Err holds the underlying cause when there is one.
type TypeMismatchError struct {
	Expected string
	Got      string
	Err      error
}

func (e *TypeMismatchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("abicall: type mismatch: expected %s, got %s: %v", e.Expected, e.Got, e.Err)
	}
	return fmt.Sprintf("abicall: type mismatch: expected %s, got %s", e.Expected, e.Got)
}

func (e *TypeMismatchError) Unwrap() error {
	return e.Err
}

// ParseError reports an ABI entry that could not be parsed.
// Index is the position of the entry in its source list.
type ParseError struct {
	Index int
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("abicall: parse entry %d %q: %v", e.Index, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// EncodingError indicates a failure during calldata or deploy data encoding.
type EncodingError struct {
	Value any
	Err   error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("abicall: encoding error for value %T: %v", e.Value, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}
