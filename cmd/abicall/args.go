package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	abicall "github.com/branched-services/go-abicall"
)

// convertArgs converts command line strings using the input types of the
// first overload with matching arity whose types accept every value. When
// no overload has that arity the strings are passed through unchanged.
func convertArgs(candidates []abicall.Fragment, raw []string) ([]any, error) {
	var firstErr error
	matched := false
	for _, f := range candidates {
		if len(f.Inputs) != len(raw) {
			continue
		}
		matched = true
		inputs, err := f.InputArguments()
		if err != nil {
			return nil, err
		}
		out, err := parseArgs(inputs, raw)
		if err == nil {
			return out, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if !matched {
		return stringArgs(raw), nil
	}
	return nil, firstErr
}

func parseArgs(inputs abi.Arguments, raw []string) ([]any, error) {
	out := make([]any, len(raw))
	for i, s := range raw {
		v, err := parseArg(s, inputs[i].Type)
		if err != nil {
			return nil, fmt.Errorf("argument %d (%s): %w", i, inputs[i].Type.String(), err)
		}
		out[i] = v
	}
	return out, nil
}

// parseArg converts s to the Go value the ABI packer expects for t.
func parseArg(s string, t abi.Type) (any, error) {
	switch t.T {
	case abi.IntTy, abi.UintTy:
		n, ok := new(big.Int).SetString(s, 0)
		if !ok {
			return nil, fmt.Errorf("invalid integer %q", s)
		}
		return n, nil
	case abi.BoolTy:
		return strconv.ParseBool(s)
	case abi.StringTy:
		return s, nil
	case abi.AddressTy:
		if !common.IsHexAddress(s) {
			return nil, fmt.Errorf("invalid address %q", s)
		}
		return common.HexToAddress(s), nil
	case abi.BytesTy:
		return hexutil.Decode(withPrefix(s))
	case abi.FixedBytesTy:
		b, err := hexutil.Decode(withPrefix(s))
		if err != nil {
			return nil, err
		}
		if len(b) != t.Size {
			return nil, fmt.Errorf("expected %d bytes, got %d", t.Size, len(b))
		}
		arr := reflect.New(t.GetType()).Elem()
		reflect.Copy(arr, reflect.ValueOf(b))
		return arr.Interface(), nil
	case abi.SliceTy, abi.ArrayTy, abi.TupleTy:
		return parseJSONArg(s, t)
	default:
		return nil, fmt.Errorf("unsupported command line type %s", t.String())
	}
}

// parseJSONArg decodes an array or tuple given as JSON. Tuples are either
// objects keyed by component name or positional arrays.
func parseJSONArg(s string, t abi.Type) (any, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid JSON for %s: %w", t.String(), err)
	}
	v, err := jsonValue(raw, t)
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

// jsonValue builds a value of t.GetType() from decoded JSON.
func jsonValue(raw any, t abi.Type) (reflect.Value, error) {
	out := reflect.New(t.GetType()).Elem()

	switch t.T {
	case abi.SliceTy, abi.ArrayTy:
		items, ok := raw.([]any)
		if !ok {
			return out, fmt.Errorf("expected JSON array for %s", t.String())
		}
		if t.T == abi.ArrayTy && len(items) != t.Size {
			return out, fmt.Errorf("expected %d elements for %s, got %d", t.Size, t.String(), len(items))
		}
		if t.T == abi.SliceTy {
			out.Set(reflect.MakeSlice(out.Type(), len(items), len(items)))
		}
		for i, item := range items {
			v, err := jsonValue(item, *t.Elem)
			if err != nil {
				return out, fmt.Errorf("element %d: %w", i, err)
			}
			out.Index(i).Set(v)
		}
		return out, nil

	case abi.TupleTy:
		var fields []any
		switch r := raw.(type) {
		case []any:
			fields = r
		case map[string]any:
			fields = make([]any, len(t.TupleRawNames))
			for i, name := range t.TupleRawNames {
				v, ok := r[name]
				if !ok {
					return out, fmt.Errorf("missing tuple field %q", name)
				}
				fields[i] = v
			}
		default:
			return out, fmt.Errorf("expected JSON object or array for %s", t.String())
		}
		if len(fields) != len(t.TupleElems) {
			return out, fmt.Errorf("expected %d tuple fields, got %d", len(t.TupleElems), len(fields))
		}
		for i, elem := range t.TupleElems {
			v, err := jsonValue(fields[i], *elem)
			if err != nil {
				return out, fmt.Errorf("field %d: %w", i, err)
			}
			out.Field(i).Set(v)
		}
		return out, nil
	}

	s, err := jsonScalar(raw)
	if err != nil {
		return out, err
	}
	v, err := parseArg(s, t)
	if err != nil {
		return out, err
	}
	return assignScalar(out, v)
}

func jsonScalar(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", fmt.Errorf("unexpected JSON value %v", raw)
	}
}

// assignScalar stores v in out, narrowing integers to the sized Go type
// the packer expects inside arrays and tuples.
func assignScalar(out reflect.Value, v any) (reflect.Value, error) {
	n, isInt := v.(*big.Int)
	switch {
	case isInt && out.Kind() >= reflect.Uint8 && out.Kind() <= reflect.Uint64:
		if n.Sign() < 0 || !n.IsUint64() || out.OverflowUint(n.Uint64()) {
			return out, fmt.Errorf("integer %s out of range for %s", n, out.Type())
		}
		out.SetUint(n.Uint64())
	case isInt && out.Kind() >= reflect.Int8 && out.Kind() <= reflect.Int64:
		if !n.IsInt64() || out.OverflowInt(n.Int64()) {
			return out, fmt.Errorf("integer %s out of range for %s", n, out.Type())
		}
		out.SetInt(n.Int64())
	default:
		rv := reflect.ValueOf(v)
		if !rv.Type().AssignableTo(out.Type()) {
			return out, fmt.Errorf("cannot use %s as %s", rv.Type(), out.Type())
		}
		out.Set(rv)
	}
	return out, nil
}

func withPrefix(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s
	}
	return "0x" + s
}
