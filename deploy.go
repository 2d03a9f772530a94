package abicall

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// EncodeDeployData returns the creation bytecode with the ABI-encoded
// constructor arguments appended.
//
// With no arguments the bytecode is returned verbatim, whether or not the
// ABI declares a constructor.
func EncodeDeployData(fragments []Fragment, bytecode string, args ...any) (string, error) {
	if bytecode == "" {
		return "", ErrEmptyBytecode
	}
	if len(args) == 0 {
		return bytecode, nil
	}

	var ctor *Fragment
	for i := range fragments {
		if fragments[i].Type == ConstructorFragment {
			ctor = &fragments[i]
			break
		}
	}
	if ctor == nil {
		return "", ErrNoConstructor
	}
	if len(ctor.Inputs) != len(args) {
		return "", &ArgumentError{Method: "constructor", Index: -1, Err: ErrArgumentCount}
	}

	code, err := hexutil.Decode(bytecode)
	if err != nil {
		return "", &EncodingError{Value: bytecode, Err: err}
	}
	inputs, err := ctor.InputArguments()
	if err != nil {
		return "", err
	}
	packed, err := inputs.Pack(convertArgs(inputs, args)...)
	if err != nil {
		return "", err
	}

	return hexutil.Encode(append(code, packed...)), nil
}
