package main

import (
	"bytes"
	"encoding/json"
	"math/big"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	abicall "github.com/branched-services/go-abicall"
)

const counterArtifact = `{
	"abi": [
		{"type": "function", "name": "count", "stateMutability": "view", "inputs": [], "outputs": [{"name": "", "type": "uint256"}]},
		{"type": "function", "name": "countOf", "stateMutability": "view", "inputs": [{"name": "who", "type": "address"}], "outputs": [{"name": "", "type": "uint256"}]},
		{"type": "function", "name": "set", "stateMutability": "nonpayable", "inputs": [{"name": "value", "type": "uint256"}], "outputs": []},
		{"type": "function", "name": "set", "stateMutability": "nonpayable", "inputs": [{"name": "flag", "type": "bool"}, {"name": "tag", "type": "bytes4"}], "outputs": []},
		{"type": "function", "name": "peek", "stateMutability": "view", "inputs": [], "outputs": [{"name": "", "type": "uint256"}]},
		{"type": "function", "name": "peek", "stateMutability": "nonpayable", "inputs": [{"name": "x", "type": "uint256"}], "outputs": []},
		{"type": "function", "name": "batch", "stateMutability": "nonpayable", "inputs": [
			{"name": "items", "type": "tuple[]", "components": [{"name": "to", "type": "address"}, {"name": "amount", "type": "uint64"}]}
		], "outputs": []},
		{"type": "event", "name": "Set", "inputs": [{"name": "value", "type": "uint256", "indexed": false}]}
	],
	"bytecode": {"object": "0x6080"},
	"deployedBytecode": {"object": "0x6081"}
}`

// run executes the CLI with args inside a temp dir holding Counter.json
// and a Foundry style out/Counter.sol/Counter.json.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Counter.json"), []byte(counterArtifact), 0o644))
	foundry := filepath.Join(dir, "out", "Counter.sol")
	require.NoError(t, os.MkdirAll(foundry, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(foundry, "Counter.json"), []byte(counterArtifact), 0o644))
	t.Chdir(dir)

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMethodsCommand(t *testing.T) {
	out, err := run(t, "methods", "Counter.json")
	require.NoError(t, err)

	assert.Contains(t, out, "read (3)")
	assert.Contains(t, out, "  function countOf(address who) view returns (uint256)")
	assert.Contains(t, out, "write (3)")
	assert.Contains(t, out, "  function set(uint256 value)")
	assert.Contains(t, out, "  function set(bool flag, bytes4 tag)")
}

func TestFormatCommand(t *testing.T) {
	out, err := run(t, "format", "Counter")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "function count() view returns (uint256)", lines[0])
	assert.Equal(t, "function batch((address to, uint64 amount)[] items)", lines[6])
	assert.Equal(t, "event Set(uint256 value)", lines[7])
}

func TestCallCommand(t *testing.T) {
	t.Run("descriptor without args", func(t *testing.T) {
		out, err := run(t, "call", "Counter.json", "count")
		require.NoError(t, err)

		var d map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &d))
		assert.Equal(t, "count", d["functionName"])
		assert.NotContains(t, d, "args")
		assert.Equal(t, "0x6080", d["code"])
		assert.Equal(t, "0x6081", d["deployedBytecode"])
	})

	t.Run("arguments are typed by the overload", func(t *testing.T) {
		out, err := run(t, "call", "Counter.json", "set", "true", "0xdeadbeef", "--calldata")
		require.NoError(t, err)

		parsed, err := abi.JSON(strings.NewReader(`[
			{"type": "function", "name": "set", "inputs": [{"name": "flag", "type": "bool"}, {"name": "tag", "type": "bytes4"}]}
		]`))
		require.NoError(t, err)
		want, err := parsed.Pack("set", true, [4]byte{0xde, 0xad, 0xbe, 0xef})
		require.NoError(t, err)

		assert.Contains(t, out, "calldata: 0x"+common.Bytes2Hex(want))
		assert.Contains(t, out, `"function set(bool flag, bytes4 tag)"`)
	})

	t.Run("name with read and write overloads", func(t *testing.T) {
		out, err := run(t, "call", "Counter.json", "peek", "7", "--calldata")
		require.NoError(t, err)

		parsed, err := abi.JSON(strings.NewReader(`[
			{"type": "function", "name": "peek", "inputs": [{"name": "x", "type": "uint256"}]}
		]`))
		require.NoError(t, err)
		want, err := parsed.Pack("peek", big.NewInt(7))
		require.NoError(t, err)

		assert.Contains(t, out, "calldata: 0x"+common.Bytes2Hex(want))
		assert.Contains(t, out, `"function peek(uint256 x)"`)
		assert.NotContains(t, out, `"function peek() view returns (uint256)"`)
	})

	t.Run("tuple array argument as JSON", func(t *testing.T) {
		items := `[{"to": "0x1111111111111111111111111111111111111111", "amount": 5}, ["0x2222222222222222222222222222222222222222", 6]]`
		out, err := run(t, "call", "Counter.json", "batch", items, "--calldata")
		require.NoError(t, err)

		selector := crypto.Keccak256([]byte("batch((address,uint64)[])"))[:4]
		assert.Contains(t, out, "calldata: 0x"+common.Bytes2Hex(selector))
	})

	t.Run("script code and address", func(t *testing.T) {
		addr := "0x1234567890123456789012345678901234567890"
		out, err := run(t, "call", "Counter.json", "countOf", addr, "--code", "0xc0de", "--address", addr)
		require.NoError(t, err)

		var d map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &d))
		assert.Equal(t, "0xc0de", d["code"])
		assert.Equal(t, addr, strings.ToLower(d["address"].(string)))
	})

	t.Run("unknown method", func(t *testing.T) {
		_, err := run(t, "call", "Counter.json", "missing")
		var notFound *abicall.MethodNotFoundError
		assert.ErrorAs(t, err, &notFound)
	})

	t.Run("bad argument", func(t *testing.T) {
		_, err := run(t, "call", "Counter.json", "set", "twelve")
		assert.ErrorContains(t, err, "invalid integer")
	})

	t.Run("invalid address flag", func(t *testing.T) {
		_, err := run(t, "call", "Counter.json", "count", "--address", "0x12")
		assert.ErrorContains(t, err, "invalid address")
	})

	t.Run("missing artifact", func(t *testing.T) {
		_, err := run(t, "call", "Nope", "count")
		assert.Error(t, err)
	})
}

func TestParseArg(t *testing.T) {
	mustType := func(s string) abi.Type {
		typ, err := abi.NewType(s, "", nil)
		require.NoError(t, err)
		return typ
	}

	tests := []struct {
		name  string
		input string
		typ   string
		want  any
	}{
		{"decimal uint", "42", "uint256", big.NewInt(42)},
		{"hex int", "0x10", "int64", big.NewInt(16)},
		{"bool", "false", "bool", false},
		{"string", "hello", "string", "hello"},
		{"address", "0x1111111111111111111111111111111111111111", "address", common.HexToAddress("0x1111111111111111111111111111111111111111")},
		{"bytes without prefix", "cafe", "bytes", []byte{0xca, 0xfe}},
		{"bytes2", "0xcafe", "bytes2", [2]byte{0xca, 0xfe}},
		{"uint array", "[1, \"0x2\"]", "uint256[]", []*big.Int{big.NewInt(1), big.NewInt(2)}},
		{"small int array", "[-1, 2]", "int8[2]", [2]int8{-1, 2}},
		{"bool slice", "[true, false]", "bool[]", []bool{true, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArg(tt.input, mustType(tt.typ))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("wrong fixed size", func(t *testing.T) {
		_, err := parseArg("0xcafe", mustType("bytes4"))
		assert.ErrorContains(t, err, "expected 4 bytes")
	})

	t.Run("tuple", func(t *testing.T) {
		typ, err := abi.NewType("tuple", "", []abi.ArgumentMarshaling{
			{Name: "to", Type: "address"},
			{Name: "amount", Type: "uint64"},
		})
		require.NoError(t, err)

		for _, input := range []string{
			`{"to": "0x1111111111111111111111111111111111111111", "amount": 5}`,
			`["0x1111111111111111111111111111111111111111", "5"]`,
		} {
			got, err := parseArg(input, typ)
			require.NoError(t, err)

			v := reflect.ValueOf(got)
			require.Equal(t, reflect.Struct, v.Kind())
			assert.Equal(t, common.HexToAddress("0x1111111111111111111111111111111111111111"), v.Field(0).Interface())
			assert.Equal(t, uint64(5), v.Field(1).Interface())
		}

		_, err = parseArg(`{"to": "0x1111111111111111111111111111111111111111"}`, typ)
		assert.ErrorContains(t, err, `missing tuple field "amount"`)
	})

	t.Run("fixed array length", func(t *testing.T) {
		_, err := parseArg("[1]", mustType("uint8[2]"))
		assert.ErrorContains(t, err, "expected 2 elements")
	})

	t.Run("integer out of range in array", func(t *testing.T) {
		_, err := parseArg("[256]", mustType("uint8[]"))
		assert.ErrorContains(t, err, "out of range")
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := parseArg("[1,", mustType("uint256[]"))
		assert.ErrorContains(t, err, "invalid JSON")
	})

	t.Run("unsupported type", func(t *testing.T) {
		_, err := parseArg("0x00", mustType("function"))
		assert.ErrorContains(t, err, "unsupported")
	})
}
