package abicall

import (
	"math/big"
	"reflect"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// EncodeCallData encodes the call as selector followed by the packed
// arguments.
//
// Overloads are selected by type: every fragment in the ABI subset whose
// arity matches the arguments is tried in declaration order and the first
// that packs wins. When exactly one fragment has the right arity its packer
// error is returned unchanged.
func (d *CallDescriptor) EncodeCallData() ([]byte, error) {
	_, data, err := d.encode()
	return data, err
}

// Match returns the fragment EncodeCallData would use.
func (d *CallDescriptor) Match() (Fragment, error) {
	f, _, err := d.encode()
	return f, err
}

// Selector returns the 4-byte selector of the matched overload.
func (d *CallDescriptor) Selector() ([4]byte, error) {
	f, err := d.Match()
	if err != nil {
		return [4]byte{}, err
	}
	return f.Selector()
}

func (d *CallDescriptor) encode() (Fragment, []byte, error) {
	candidates := filterFragments(d.ABI, func(f Fragment) bool {
		return f.IsFunction() && len(f.Inputs) == len(d.Args)
	})
	if len(candidates) == 0 {
		return Fragment{}, nil, &ArgumentError{Method: d.FunctionName, Index: -1, Err: ErrArgumentCount}
	}

	var lastErr error
	for _, f := range candidates {
		data, err := packCall(f, d.Args)
		if err == nil {
			return f, data, nil
		}
		lastErr = err
	}

	if len(candidates) == 1 {
		return Fragment{}, nil, lastErr
	}
	return Fragment{}, nil, &ArgumentError{Method: d.FunctionName, Index: -1, Err: ErrNoMatchingOverload}
}

// packCall packs args against the inputs of f and prefixes the selector.
func packCall(f Fragment, args []any) ([]byte, error) {
	inputs, err := f.InputArguments()
	if err != nil {
		return nil, err
	}
	selector, err := f.Selector()
	if err != nil {
		return nil, err
	}
	packed, err := inputs.Pack(convertArgs(inputs, args)...)
	if err != nil {
		return nil, err
	}

	data := make([]byte, 0, len(selector)+len(packed))
	data = append(data, selector[:]...)
	return append(data, packed...), nil
}

func convertArgs(inputs abi.Arguments, args []any) []any {
	out := make([]any, len(args))
	for i, arg := range args {
		out[i] = convertToABIType(arg, inputs[i].Type)
	}
	return out
}

// convertToABIType handles common Go type conversions for ABI encoding.
// Values that cannot be converted are returned unchanged so the packer
// reports the mismatch.
func convertToABIType(value any, abiType abi.Type) any {
	switch abiType.T {
	case abi.IntTy, abi.UintTy:
		n, ok := toBigInt(value)
		if !ok {
			return value
		}
		if abiType.Size > 64 {
			return n
		}
		return fitInteger(n, abiType)
	case abi.AddressTy:
		if s, ok := value.(string); ok && common.IsHexAddress(s) {
			return common.HexToAddress(s)
		}
	}
	return value
}

// fitInteger converts n to the exact Go integer type the packer expects
// for abiType, or returns n when it does not fit.
func fitInteger(n *big.Int, abiType abi.Type) any {
	rv := reflect.New(abiType.GetType()).Elem()
	switch rv.Kind() {
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if n.Sign() < 0 || !n.IsUint64() || rv.OverflowUint(n.Uint64()) {
			return n
		}
		rv.SetUint(n.Uint64())
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if !n.IsInt64() || rv.OverflowInt(n.Int64()) {
			return n
		}
		rv.SetInt(n.Int64())
	default:
		return n
	}
	return rv.Interface()
}

func toBigInt(value any) (*big.Int, bool) {
	switch v := value.(type) {
	case *big.Int:
		return v, v != nil
	case int:
		return big.NewInt(int64(v)), true
	case int8:
		return big.NewInt(int64(v)), true
	case int16:
		return big.NewInt(int64(v)), true
	case int32:
		return big.NewInt(int64(v)), true
	case int64:
		return big.NewInt(v), true
	case uint:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint8:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint16:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint32:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint64:
		return new(big.Int).SetUint64(v), true
	default:
		return nil, false
	}
}
