package abicall

import (
	"errors"
	"fmt"
	"strings"
)

var (
	errUnbalancedParens = errors.New("unbalanced parentheses")
	errMissingName      = errors.New("missing name")
)

// ParseHumanReadable parses human-readable signatures into fragments, in
// order. Supported forms:
//
//	function name(type name, ...) [pure|view|payable] [returns (type, ...)]
//	event Name(type indexed name, ...) [anonymous]
//	error Name(type name, ...)
//	constructor(type name, ...) [payable]
//	fallback() external [payable]
//	receive() external payable
//
// Tuples are written inline as "(uint256 a, address b) name", optionally
// followed by an array suffix. Visibility and data location keywords are
// accepted and ignored.
func ParseHumanReadable(signatures []string) ([]Fragment, error) {
	fragments := make([]Fragment, 0, len(signatures))
	for i, sig := range signatures {
		f, err := parseSignature(sig)
		if err == nil {
			err = f.validate()
		}
		if err != nil {
			return nil, &ParseError{Index: i, Input: sig, Err: err}
		}
		fragments = append(fragments, f)
	}
	return fragments, nil
}

// MustParseHumanReadable is like ParseHumanReadable but panics on error.
func MustParseHumanReadable(signatures ...string) []Fragment {
	fragments, err := ParseHumanReadable(signatures)
	if err != nil {
		panic(err)
	}
	return fragments
}

func parseSignature(sig string) (Fragment, error) {
	sig = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(sig), ";"))
	kind, rest, _ := strings.Cut(sig, " ")
	if open := strings.IndexByte(kind, '('); open >= 0 {
		// constructor(...) and friends have no space before the list.
		kind, rest = kind[:open], sig[open:]
	}
	rest = strings.TrimSpace(rest)

	f := Fragment{Type: FragmentType(kind)}
	switch f.Type {
	case FunctionFragment, EventFragment, ErrorFragment:
		open := strings.IndexByte(rest, '(')
		if open < 0 {
			return f, errUnbalancedParens
		}
		f.Name = strings.TrimSpace(rest[:open])
		if f.Name == "" {
			return f, errMissingName
		}
		rest = rest[open:]
	case ConstructorFragment, FallbackFragment, ReceiveFragment:
	default:
		return f, fmt.Errorf("%w: %q", ErrUnsupportedFragment, kind)
	}

	inputs, rest, err := cutParameterList(rest)
	if err != nil {
		return f, err
	}
	f.Inputs, err = parseParameters(inputs, f.Type == EventFragment)
	if err != nil {
		return f, err
	}

	if err := parseModifiers(&f, rest); err != nil {
		return f, err
	}
	if f.Type == ReceiveFragment {
		f.StateMutability = Payable
	}
	f.normalize()
	return f, nil
}

// parseModifiers consumes everything after the input list.
func parseModifiers(f *Fragment, rest string) error {
	for rest = strings.TrimSpace(rest); rest != ""; rest = strings.TrimSpace(rest) {
		if after, ok := strings.CutPrefix(rest, "returns"); ok && f.Type == FunctionFragment {
			list, remainder, err := cutParameterList(strings.TrimSpace(after))
			if err != nil {
				return err
			}
			if f.Outputs, err = parseParameters(list, false); err != nil {
				return err
			}
			rest = remainder
			continue
		}

		word, remainder, _ := strings.Cut(rest, " ")
		switch word {
		case "pure", "view", "payable", "nonpayable":
			if f.Type == EventFragment || f.Type == ErrorFragment {
				return fmt.Errorf("unexpected modifier %q", word)
			}
			f.StateMutability = Mutability(word)
		case "anonymous":
			if f.Type != EventFragment {
				return fmt.Errorf("unexpected modifier %q", word)
			}
			f.Anonymous = true
		case "external", "public", "internal", "private", "virtual", "override":
		default:
			return fmt.Errorf("unexpected modifier %q", word)
		}
		rest = remainder
	}
	return nil
}

// cutParameterList expects s to start with "(" and returns the contents of
// the balanced list plus whatever follows it.
func cutParameterList(s string) (list, rest string, err error) {
	if !strings.HasPrefix(s, "(") {
		return "", "", errUnbalancedParens
	}
	end := matchParen(s, 0)
	if end < 0 {
		return "", "", errUnbalancedParens
	}
	return s[1:end], s[end+1:], nil
}

// matchParen returns the index of the parenthesis closing s[open], or -1.
func matchParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// splitTopLevel splits s on commas that are not nested in parentheses.
func splitTopLevel(s string) ([]string, error) {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, errUnbalancedParens
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, errUnbalancedParens
	}
	return append(parts, s[start:]), nil
}

func parseParameters(list string, allowIndexed bool) ([]Parameter, error) {
	if strings.TrimSpace(list) == "" {
		return []Parameter{}, nil
	}
	parts, err := splitTopLevel(list)
	if err != nil {
		return nil, err
	}
	params := make([]Parameter, len(parts))
	for i, part := range parts {
		if params[i], err = parseParameter(strings.TrimSpace(part), allowIndexed); err != nil {
			return nil, err
		}
	}
	return params, nil
}

func parseParameter(s string, allowIndexed bool) (Parameter, error) {
	var p Parameter
	if s == "" {
		return p, errors.New("empty parameter")
	}

	var words []string
	if strings.HasPrefix(s, "(") {
		end := matchParen(s, 0)
		if end < 0 {
			return p, errUnbalancedParens
		}
		components, err := parseParameters(s[1:end], false)
		if err != nil {
			return p, err
		}
		p.Components = components
		words = strings.Fields(s[end+1:])
		p.Type = "tuple"
		if len(words) > 0 && strings.HasPrefix(words[0], "[") {
			p.Type += words[0]
			words = words[1:]
		}
	} else {
		words = strings.Fields(s)
		p.Type = normalizeType(words[0])
		words = words[1:]
	}

	for _, w := range words {
		switch w {
		case "indexed":
			if !allowIndexed {
				return p, errors.New(`"indexed" outside of event`)
			}
			p.Indexed = true
		case "memory", "calldata", "storage":
		default:
			if p.Name != "" {
				return p, fmt.Errorf("unexpected token %q", w)
			}
			p.Name = w
		}
	}
	return p, nil
}

// normalizeType expands the uint/int aliases to their 256-bit names.
func normalizeType(t string) string {
	base, suffix := t, ""
	if i := strings.IndexByte(t, '['); i >= 0 {
		base, suffix = t[:i], t[i:]
	}
	switch base {
	case "uint":
		return "uint256" + suffix
	case "int":
		return "int256" + suffix
	default:
		return t
	}
}
