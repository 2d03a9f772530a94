package abicall

import (
	"github.com/ethereum/go-ethereum/common"
)

// AccessorOption configures the descriptors produced by an accessor map.
type AccessorOption func(*accessorConfig)

// accessorConfig holds the fields attached to every descriptor.
type accessorConfig struct {
	code             string
	deployedBytecode string
	address          *common.Address
}

// WithCode attaches code to every descriptor. An empty value leaves the
// field absent.
func WithCode(code string) AccessorOption {
	return func(c *accessorConfig) {
		c.code = code
	}
}

// WithDeployedBytecode attaches deployed bytecode to every descriptor.
// An empty value leaves the field absent.
func WithDeployedBytecode(bytecode string) AccessorOption {
	return func(c *accessorConfig) {
		c.deployedBytecode = bytecode
	}
}

// WithAddress attaches a target address to every descriptor.
func WithAddress(addr common.Address) AccessorOption {
	return func(c *accessorConfig) {
		c.address = &addr
	}
}

// ContractOption configures a Contract.
type ContractOption func(*Contract)

// WithBytecode sets the creation bytecode.
func WithBytecode(bytecode string) ContractOption {
	return func(c *Contract) {
		c.bytecode = bytecode
	}
}

// WithContractDeployedBytecode sets the deployed (runtime) bytecode as
// returned by the compiler.
func WithContractDeployedBytecode(bytecode string) ContractOption {
	return func(c *Contract) {
		c.deployedBytecode = bytecode
	}
}

// WithRuntimeCode binds code to be executed in place of a deployed
// contract, as used for script-style calls.
func WithRuntimeCode(code string) ContractOption {
	return func(c *Contract) {
		c.code = code
	}
}

// WithContractAddress binds the contract to a deployed address.
func WithContractAddress(addr common.Address) ContractOption {
	return func(c *Contract) {
		c.address = &addr
	}
}
