package abicall

import (
	"github.com/ethereum/go-ethereum/common"
)

// Contract holds a contract ABI with optional bytecode and exposes accessor
// maps for its read and write methods.
type Contract struct {
	name             string
	fragments        []Fragment
	bytecode         string
	deployedBytecode string
	code             string
	address          *common.Address

	read  *Accessors
	write *Accessors
	all   *Accessors
}

// NewContract creates a Contract from parsed ABI fragments.
func NewContract(name string, fragments []Fragment, opts ...ContractOption) *Contract {
	c := &Contract{
		name:      name,
		fragments: cloneFragments(fragments),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.build()
	return c
}

// NewContractFromHumanReadable creates a Contract from human-readable
// signatures.
func NewContractFromHumanReadable(name string, signatures []string, opts ...ContractOption) (*Contract, error) {
	fragments, err := ParseHumanReadable(signatures)
	if err != nil {
		return nil, err
	}
	return NewContract(name, fragments, opts...), nil
}

// build creates the read and write accessor maps.
func (c *Contract) build() {
	opts := c.accessorOptions()
	errs := c.Errors()
	c.read = ReadFactory(filterFragments(c.fragments, Fragment.IsRead), errs, opts...)
	c.write = WriteFactory(filterFragments(c.fragments, Fragment.IsWrite), errs, opts...)
	c.all = NewAccessors(c.fragments, errs, opts...)
}

// accessorOptions decides which bytecode fields descriptors carry. Bound
// runtime code always wins; creation bytecode is only attached alongside
// deployed bytecode.
func (c *Contract) accessorOptions() []AccessorOption {
	var opts []AccessorOption
	switch {
	case c.code != "":
		opts = append(opts, WithCode(c.code))
	case c.deployedBytecode != "":
		opts = append(opts, WithCode(c.bytecode))
	}
	if c.deployedBytecode != "" {
		opts = append(opts, WithDeployedBytecode(c.deployedBytecode))
	}
	if c.address != nil {
		opts = append(opts, WithAddress(*c.address))
	}
	return opts
}

// clone creates a copy of the contract with rebuilt accessors.
func (c *Contract) clone(opts ...ContractOption) *Contract {
	clone := &Contract{
		name:             c.name,
		fragments:        c.fragments,
		bytecode:         c.bytecode,
		deployedBytecode: c.deployedBytecode,
		code:             c.code,
		address:          c.address,
	}
	for _, opt := range opts {
		opt(clone)
	}
	clone.build()
	return clone
}

// WithCode returns a copy of the contract bound to runtime code. Its
// descriptors differ from the original only in the code field.
func (c *Contract) WithCode(code string) *Contract {
	return c.clone(WithRuntimeCode(code))
}

// WithAddress returns a copy of the contract bound to addr. Its descriptors
// carry the address.
func (c *Contract) WithAddress(addr common.Address) *Contract {
	return c.clone(WithContractAddress(addr))
}

// Name returns the contract name.
func (c *Contract) Name() string {
	return c.name
}

// ABI returns a copy of every fragment, in declaration order.
func (c *Contract) ABI() []Fragment {
	return cloneFragments(c.fragments)
}

// HumanReadableABI returns the human-readable signature of every fragment.
func (c *Contract) HumanReadableABI() []string {
	return FormatABI(c.fragments)
}

// Read returns the accessor map for pure and view methods.
func (c *Contract) Read() *Accessors {
	return c.read
}

// Write returns the accessor map for nonpayable and payable methods.
func (c *Contract) Write() *Accessors {
	return c.write
}

// Methods returns the function fragments.
func (c *Contract) Methods() []Fragment {
	return cloneFragments(filterFragments(c.fragments, Fragment.IsFunction))
}

// Errors returns the error fragments.
func (c *Contract) Errors() []Fragment {
	return c.byType(ErrorFragment)
}

// Events returns the event fragments.
func (c *Contract) Events() []Fragment {
	return c.byType(EventFragment)
}

// Constructor returns the constructor fragment, if declared.
func (c *Contract) Constructor() (Fragment, bool) {
	ctors := c.byType(ConstructorFragment)
	if len(ctors) == 0 {
		return Fragment{}, false
	}
	return ctors[0], true
}

func (c *Contract) byType(t FragmentType) []Fragment {
	return cloneFragments(filterFragments(c.fragments, func(f Fragment) bool { return f.Type == t }))
}

// Bytecode returns the creation bytecode.
func (c *Contract) Bytecode() string {
	return c.bytecode
}

// DeployedBytecode returns the deployed bytecode.
func (c *Contract) DeployedBytecode() string {
	return c.deployedBytecode
}

// Code returns the bound runtime code.
func (c *Contract) Code() string {
	return c.code
}

// Address returns the bound address, if any.
func (c *Contract) Address() (common.Address, bool) {
	if c.address == nil {
		return common.Address{}, false
	}
	return *c.address, true
}

// Call builds the descriptor for methodName regardless of mutability. A
// name with both read and write overloads resolves against all of them in
// declaration order.
func (c *Contract) Call(methodName string, args ...any) (*CallDescriptor, error) {
	fn, ok := c.all.Get(methodName)
	if !ok {
		return nil, &MethodNotFoundError{Contract: c.name, Method: methodName}
	}
	return fn(args...), nil
}

// MustCall is like Call but panics on error.
func (c *Contract) MustCall(methodName string, args ...any) *CallDescriptor {
	d, err := c.Call(methodName, args...)
	if err != nil {
		panic(err)
	}
	return d
}

// DeployData encodes the creation bytecode with constructor arguments.
func (c *Contract) DeployData(args ...any) (string, error) {
	return EncodeDeployData(c.fragments, c.bytecode, args...)
}
