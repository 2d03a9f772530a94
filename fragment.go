package abicall

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/crypto"
)

// FragmentType is the ABI type tag of a fragment.
type FragmentType string

const (
	FunctionFragment    FragmentType = "function"
	ErrorFragment       FragmentType = "error"
	EventFragment       FragmentType = "event"
	ConstructorFragment FragmentType = "constructor"
	FallbackFragment    FragmentType = "fallback"
	ReceiveFragment     FragmentType = "receive"
)

// Valid reports whether t is a known fragment type.
func (t FragmentType) Valid() bool {
	switch t {
	case FunctionFragment, ErrorFragment, EventFragment, ConstructorFragment, FallbackFragment, ReceiveFragment:
		return true
	default:
		return false
	}
}

// Mutability is the state mutability classifier of a function.
type Mutability string

const (
	Pure       Mutability = "pure"
	View       Mutability = "view"
	NonPayable Mutability = "nonpayable"
	Payable    Mutability = "payable"
)

// IsReadOnly returns true for pure and view.
func (m Mutability) IsReadOnly() bool {
	return m == Pure || m == View
}

// Parameter is a single input or output of a fragment.
type Parameter struct {
	Name         string      `json:"name,omitempty"`
	Type         string      `json:"type"`
	InternalType string      `json:"internalType,omitempty"`
	Components   []Parameter `json:"components,omitempty"`
	Indexed      bool        `json:"indexed,omitempty"`
}

// marshaling converts p to the form go-ethereum's type parser takes.
func (p Parameter) marshaling() abi.ArgumentMarshaling {
	m := abi.ArgumentMarshaling{
		Name:         p.Name,
		Type:         p.Type,
		InternalType: p.InternalType,
		Indexed:      p.Indexed,
	}
	if len(p.Components) > 0 {
		m.Components = make([]abi.ArgumentMarshaling, len(p.Components))
		for i, c := range p.Components {
			m.Components[i] = c.marshaling()
		}
	}
	return m
}

// Fragment is one entry of a contract ABI.
type Fragment struct {
	Type            FragmentType
	Name            string
	Inputs          []Parameter
	Outputs         []Parameter
	StateMutability Mutability
	Anonymous       bool
}

// fragmentJSON is the wire layout of a Fragment, including the legacy
// constant/payable flags emitted by older compilers.
type fragmentJSON struct {
	Type            FragmentType `json:"type"`
	Name            string       `json:"name,omitempty"`
	Inputs          []Parameter  `json:"inputs"`
	Outputs         []Parameter  `json:"outputs,omitempty"`
	StateMutability Mutability   `json:"stateMutability,omitempty"`
	Anonymous       bool         `json:"anonymous,omitempty"`
	Constant        *bool        `json:"constant,omitempty"`
	Payable         *bool        `json:"payable,omitempty"`
}

// UnmarshalJSON decodes a JSON ABI entry, applying the defaults of the
// Solidity ABI specification.
func (f *Fragment) UnmarshalJSON(data []byte) error {
	var raw fragmentJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*f = Fragment{
		Type:            raw.Type,
		Name:            raw.Name,
		Inputs:          raw.Inputs,
		Outputs:         raw.Outputs,
		StateMutability: raw.StateMutability,
		Anonymous:       raw.Anonymous,
	}
	if f.Type == "" {
		f.Type = FunctionFragment
	}
	if f.StateMutability == "" && f.hasMutability() {
		switch {
		case raw.Constant != nil && *raw.Constant:
			f.StateMutability = View
		case raw.Payable != nil && *raw.Payable:
			f.StateMutability = Payable
		default:
			f.StateMutability = NonPayable
		}
	}
	f.normalize()
	return nil
}

// MarshalJSON encodes the fragment in the canonical JSON ABI layout.
func (f Fragment) MarshalJSON() ([]byte, error) {
	out := fragmentJSON{
		Type:      f.Type,
		Name:      f.Name,
		Inputs:    f.Inputs,
		Anonymous: f.Anonymous,
	}
	if out.Inputs == nil {
		out.Inputs = []Parameter{}
	}
	if f.Type == FunctionFragment {
		out.Outputs = f.Outputs
	}
	if f.hasMutability() {
		out.StateMutability = f.StateMutability
	}
	return json.Marshal(out)
}

// hasMutability reports whether the fragment type carries a state mutability.
func (f *Fragment) hasMutability() bool {
	switch f.Type {
	case FunctionFragment, ConstructorFragment, FallbackFragment, ReceiveFragment:
		return true
	default:
		return false
	}
}

func (f *Fragment) normalize() {
	if f.Inputs == nil {
		f.Inputs = []Parameter{}
	}
	if f.Type == FunctionFragment && f.Outputs == nil {
		f.Outputs = []Parameter{}
	}
	if f.StateMutability == "" && f.hasMutability() {
		f.StateMutability = NonPayable
	}
}

// IsFunction returns true if the fragment declares a function.
func (f Fragment) IsFunction() bool {
	return f.Type == FunctionFragment
}

// IsRead returns true for pure and view functions.
func (f Fragment) IsRead() bool {
	return f.IsFunction() && f.StateMutability.IsReadOnly()
}

// IsWrite returns true for nonpayable and payable functions.
func (f Fragment) IsWrite() bool {
	return f.IsFunction() && !f.StateMutability.IsReadOnly()
}

// Signature returns the canonical signature used for selector hashing,
// e.g. "transfer(address,uint256)".
func (f Fragment) Signature() (string, error) {
	args, err := toArguments(f.Inputs)
	if err != nil {
		return "", err
	}
	types := make([]string, len(args))
	for i, arg := range args {
		types[i] = arg.Type.String()
	}
	return fmt.Sprintf("%s(%s)", f.Name, strings.Join(types, ",")), nil
}

// Selector returns the first 4 bytes of the Keccak-256 hash of the
// canonical signature. Meaningful for functions and errors.
func (f Fragment) Selector() ([4]byte, error) {
	var sel [4]byte
	sig, err := f.Signature()
	if err != nil {
		return sel, err
	}
	copy(sel[:], crypto.Keccak256([]byte(sig))[:4])
	return sel, nil
}

// InputArguments converts the declared inputs into go-ethereum arguments.
func (f Fragment) InputArguments() (abi.Arguments, error) {
	return toArguments(f.Inputs)
}

// OutputArguments converts the declared outputs into go-ethereum arguments.
func (f Fragment) OutputArguments() (abi.Arguments, error) {
	return toArguments(f.Outputs)
}

// Clone returns a deep copy of the fragment.
func (f Fragment) Clone() Fragment {
	clone := f
	clone.Inputs = cloneParameters(f.Inputs)
	clone.Outputs = cloneParameters(f.Outputs)
	return clone
}

// validate checks the fragment type and that every parameter type parses.
func (f Fragment) validate() error {
	if !f.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedFragment, f.Type)
	}
	if _, err := toArguments(f.Inputs); err != nil {
		return err
	}
	_, err := toArguments(f.Outputs)
	return err
}

func cloneParameters(params []Parameter) []Parameter {
	if params == nil {
		return nil
	}
	out := make([]Parameter, len(params))
	for i, p := range params {
		out[i] = p
		out[i].Components = cloneParameters(p.Components)
	}
	return out
}

func cloneFragments(fragments []Fragment) []Fragment {
	out := make([]Fragment, len(fragments))
	for i, f := range fragments {
		out[i] = f.Clone()
	}
	return out
}

func toArguments(params []Parameter) (abi.Arguments, error) {
	args := make(abi.Arguments, len(params))
	for i, p := range params {
		t, err := abi.NewType(p.Type, p.InternalType, p.marshaling().Components)
		if err != nil {
			return nil, &TypeMismatchError{Expected: "valid ABI type", Got: p.Type, Err: err}
		}
		args[i] = abi.Argument{Name: p.Name, Type: t, Indexed: p.Indexed}
	}
	return args, nil
}

// ParseABI parses a JSON ABI document, preserving declaration order.
// Overloaded functions keep their original names.
func ParseABI(abiJSON string) ([]Fragment, error) {
	var fragments []Fragment
	if err := json.Unmarshal([]byte(abiJSON), &fragments); err != nil {
		return nil, &ParseError{Index: -1, Input: abiJSON, Err: err}
	}
	for i, f := range fragments {
		if err := f.validate(); err != nil {
			return nil, &ParseError{Index: i, Input: f.Name, Err: err}
		}
	}
	if fragments == nil {
		fragments = []Fragment{}
	}
	return fragments, nil
}

// MustParseABI is like ParseABI but panics on error.
func MustParseABI(abiJSON string) []Fragment {
	parsed, err := ParseABI(abiJSON)
	if err != nil {
		panic(err)
	}
	return parsed
}

// filterFragments returns the fragments for which keep returns true.
func filterFragments(fragments []Fragment, keep func(Fragment) bool) []Fragment {
	out := make([]Fragment, 0, len(fragments))
	for _, f := range fragments {
		if keep(f) {
			out = append(out, f)
		}
	}
	return out
}
