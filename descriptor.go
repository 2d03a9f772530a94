package abicall

import (
	"github.com/ethereum/go-ethereum/common"
)

// CallDescriptor describes a prepared, unexecuted contract call.
// Each accessor invocation returns a fresh descriptor that shares no
// mutable state with the accessor map or with other descriptors.
type CallDescriptor struct {
	// ABI is every fragment sharing FunctionName, in declaration order.
	ABI []Fragment `json:"abi"`

	// FunctionName is the method name.
	FunctionName string `json:"functionName"`

	// Args is nil when the caller supplied no arguments.
	Args []any `json:"args,omitempty"`

	// HumanReadableABI holds the signature(s) of the resolved fragment(s).
	HumanReadableABI []string `json:"humanReadableAbi"`

	// Code and DeployedBytecode are empty unless the owning contract
	// carries them.
	Code             string `json:"code,omitempty"`
	DeployedBytecode string `json:"deployedBytecode,omitempty"`

	// Address is set when the owning contract is bound to an address.
	Address *common.Address `json:"address,omitempty"`
}

// HasArgs reports whether the caller supplied at least one argument.
func (d *CallDescriptor) HasArgs() bool {
	return d.Args != nil
}

// HasCode reports whether the descriptor carries code.
func (d *CallDescriptor) HasCode() bool {
	return d.Code != ""
}

// HasDeployedBytecode reports whether the descriptor carries deployed bytecode.
func (d *CallDescriptor) HasDeployedBytecode() bool {
	return d.DeployedBytecode != ""
}

// ArgCount returns the number of supplied arguments.
func (d *CallDescriptor) ArgCount() int {
	return len(d.Args)
}

// IsOverloaded returns true if more than one fragment shares the name.
func (d *CallDescriptor) IsOverloaded() bool {
	return len(d.ABI) > 1
}
