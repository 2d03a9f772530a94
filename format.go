package abicall

import (
	"strings"
)

// FormatFragment renders a fragment as a human-readable signature, e.g.
//
//	function balanceOf(address owner) view returns (uint256)
//	event Transfer(address indexed from, address indexed to, uint256 value)
//	constructor(string name) payable
//
// Nonpayable mutability is implied and not printed.
func FormatFragment(f Fragment) string {
	var b strings.Builder

	switch f.Type {
	case FunctionFragment:
		b.WriteString("function ")
		b.WriteString(f.Name)
		writeParameterList(&b, f.Inputs)
		if f.StateMutability != "" && f.StateMutability != NonPayable {
			b.WriteByte(' ')
			b.WriteString(string(f.StateMutability))
		}
		if len(f.Outputs) > 0 {
			b.WriteString(" returns ")
			writeParameterList(&b, f.Outputs)
		}
	case EventFragment, ErrorFragment:
		b.WriteString(string(f.Type))
		b.WriteByte(' ')
		b.WriteString(f.Name)
		writeParameterList(&b, f.Inputs)
	case ConstructorFragment:
		b.WriteString("constructor")
		writeParameterList(&b, f.Inputs)
		if f.StateMutability == Payable {
			b.WriteString(" payable")
		}
	case FallbackFragment:
		b.WriteString("fallback() external")
		if f.StateMutability == Payable {
			b.WriteString(" payable")
		}
	case ReceiveFragment:
		b.WriteString("receive() external payable")
	}

	return b.String()
}

// FormatABI renders each fragment with FormatFragment, preserving order.
func FormatABI(fragments []Fragment) []string {
	out := make([]string, len(fragments))
	for i, f := range fragments {
		out[i] = FormatFragment(f)
	}
	return out
}

// FormatParameter renders a single parameter: type, "indexed" when set,
// then the name if present. Tuples are expanded inline.
func FormatParameter(p Parameter) string {
	var b strings.Builder
	writeParameter(&b, p)
	return b.String()
}

func writeParameterList(b *strings.Builder, params []Parameter) {
	b.WriteByte('(')
	for i, p := range params {
		if i > 0 {
			b.WriteString(", ")
		}
		writeParameter(b, p)
	}
	b.WriteByte(')')
}

func writeParameter(b *strings.Builder, p Parameter) {
	if suffix, ok := strings.CutPrefix(p.Type, "tuple"); ok {
		writeParameterList(b, p.Components)
		b.WriteString(suffix)
	} else {
		b.WriteString(p.Type)
	}
	if p.Indexed {
		b.WriteString(" indexed")
	}
	if p.Name != "" {
		b.WriteByte(' ')
		b.WriteString(p.Name)
	}
}
