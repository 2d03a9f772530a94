// Package abicall turns a contract ABI into type-checked accessors that
// describe calls without executing them.
//
// A Contract groups the ABI's functions by name and exposes two accessor
// maps: Read for pure and view methods, Write for nonpayable and payable
// methods. Invoking an accessor returns a CallDescriptor holding everything
// an execution layer needs to encode and send the call.
//
// # Basic Usage
//
//	fragments := abicall.MustParseABI(erc20ABIJSON)
//	token := abicall.NewContract("ERC20", fragments)
//
//	desc := token.Read().MustCall("balanceOf", owner)
//	data, err := desc.EncodeCallData()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Human-readable signatures work as well:
//
//	token, err := abicall.NewContractFromHumanReadable("ERC20", []string{
//	    "function balanceOf(address owner) view returns (uint256)",
//	    "function transfer(address to, uint256 amount) returns (bool)",
//	})
//
// # Overloads
//
// Functions sharing a name share one accessor. The descriptor's ABI field
// always lists every overload in declaration order; HumanReadableABI lists
// the overload whose arity matches the arguments when exactly one does, and
// all overloads otherwise. EncodeCallData performs the type-based selection.
//
// # Descriptor Fields
//
// Args is nil when the accessor was called without arguments. Code and
// DeployedBytecode are only set when the contract carries deployed bytecode
// or was bound to runtime code with Contract.WithCode:
//
//	script := contract.WithCode(deployData)
//	desc := script.Read().MustCall("run")
//	// desc.Code == deployData
//
// # Concurrency
//
// Contracts and accessor maps are immutable once built. Accessors may be
// called from any goroutine; each call allocates its own descriptor.
package abicall
