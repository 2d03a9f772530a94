package abicall

import (
	"errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{"ErrArgumentCount", ErrArgumentCount, "abicall: no overload accepts this many arguments"},
		{"ErrNoMatchingOverload", ErrNoMatchingOverload, "abicall: arguments match no overload"},
		{"ErrNoConstructor", ErrNoConstructor, "abicall: ABI declares no constructor"},
		{"ErrUnsupportedFragment", ErrUnsupportedFragment, "abicall: unsupported fragment type"},
		{"ErrEmptyBytecode", ErrEmptyBytecode, "abicall: empty bytecode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.msg {
				t.Errorf("Expected error message %q, got %q", tt.msg, tt.err.Error())
			}
		})
	}
}

func TestMethodNotFoundError(t *testing.T) {
	t.Run("with contract", func(t *testing.T) {
		err := &MethodNotFoundError{Contract: "Token", Method: "transfer"}

		expected := `abicall: method "transfer" not found in contract Token`
		if err.Error() != expected {
			t.Errorf("Expected error message %q, got %q", expected, err.Error())
		}
	})

	t.Run("without contract", func(t *testing.T) {
		err := &MethodNotFoundError{Method: "transfer"}

		expected := `abicall: method "transfer" not found`
		if err.Error() != expected {
			t.Errorf("Expected error message %q, got %q", expected, err.Error())
		}
	})
}

func TestArgumentError(t *testing.T) {
	t.Run("with wrapped error", func(t *testing.T) {
		innerErr := errors.New("invalid type")
		err := &ArgumentError{
			Method: "add",
			Index:  1,
			Err:    innerErr,
		}

		expected := `abicall: argument 1 for method "add": invalid type`
		if err.Error() != expected {
			t.Errorf("Expected error message %q, got %q", expected, err.Error())
		}

		if err.Unwrap() != innerErr {
			t.Error("Unwrap should return the inner error")
		}
	})

	t.Run("whole argument list", func(t *testing.T) {
		err := &ArgumentError{Method: "add", Index: -1, Err: ErrArgumentCount}

		expected := `abicall: arguments for method "add": abicall: no overload accepts this many arguments`
		if err.Error() != expected {
			t.Errorf("Expected error message %q, got %q", expected, err.Error())
		}
		if !errors.Is(err, ErrArgumentCount) {
			t.Error("errors.Is should find ErrArgumentCount in chain")
		}
	})
}

func TestTypeMismatchError(t *testing.T) {
	err := &TypeMismatchError{Expected: "uint256", Got: "address"}

	expected := "abicall: type mismatch: expected uint256, got address"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("unsupported arg type: foo")
		err := &TypeMismatchError{Expected: "valid ABI type", Got: "foo", Err: cause}

		expected := "abicall: type mismatch: expected valid ABI type, got foo: unsupported arg type: foo"
		if err.Error() != expected {
			t.Errorf("Expected error message %q, got %q", expected, err.Error())
		}
		if !errors.Is(err, cause) {
			t.Error("errors.Is should find the cause in chain")
		}
	})
}

func TestParseError(t *testing.T) {
	err := &ParseError{Index: 2, Input: "function f(", Err: ErrUnsupportedFragment}

	expected := `abicall: parse entry 2 "function f(": abicall: unsupported fragment type`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}
	if !errors.Is(err, ErrUnsupportedFragment) {
		t.Error("errors.Is should find ErrUnsupportedFragment in chain")
	}
}

func TestEncodingError(t *testing.T) {
	inner := errors.New("odd length")
	err := &EncodingError{Value: "0x420", Err: inner}

	expected := "abicall: encoding error for value string: odd length"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("errors.Is should find the inner error")
	}
}
