package abicall

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Artifact is the compiler output this package consumes. Both the Foundry
// layout ({"bytecode": {"object": "0x.."}}) and the Hardhat layout
// ({"bytecode": "0x.."}) are accepted.
type Artifact struct {
	ContractName     string     `json:"contractName,omitempty"`
	ABI              []Fragment `json:"abi"`
	Bytecode         Bytecode   `json:"bytecode"`
	DeployedBytecode Bytecode   `json:"deployedBytecode"`
}

// Bytecode is a hex string that unmarshals from either a plain string or an
// object with an "object" field.
type Bytecode string

// UnmarshalJSON accepts "0x.." and {"object": "0x.."}.
func (b *Bytecode) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*b = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*b = Bytecode(normalizeHex(s))
		return nil
	}
	var obj struct {
		Object string `json:"object"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*b = Bytecode(normalizeHex(obj.Object))
	return nil
}

// normalizeHex adds the 0x prefix Foundry sometimes omits. "0x" alone
// means no bytecode.
func normalizeHex(s string) string {
	if s == "" || s == "0x" {
		return ""
	}
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return "0x" + s
	}
	return s
}

// ParseArtifact decodes an artifact from JSON. A bare ABI array is accepted
// as an artifact without bytecode.
func ParseArtifact(data []byte) (*Artifact, error) {
	trimmed := bytes.TrimSpace(data)
	art := &Artifact{}
	if len(trimmed) > 0 && trimmed[0] == '[' {
		fragments, err := ParseABI(string(trimmed))
		if err != nil {
			return nil, err
		}
		art.ABI = fragments
		return art, nil
	}

	if err := json.Unmarshal(trimmed, art); err != nil {
		return nil, &ParseError{Index: -1, Input: "artifact", Err: err}
	}
	for i, f := range art.ABI {
		if err := f.validate(); err != nil {
			return nil, &ParseError{Index: i, Input: f.Name, Err: err}
		}
	}
	return art, nil
}

// Contract creates a Contract from the artifact. name overrides the
// artifact's contract name when non-empty.
func (a *Artifact) Contract(name string) *Contract {
	if name == "" {
		name = a.ContractName
	}
	return NewContract(name, a.ABI,
		WithBytecode(string(a.Bytecode)),
		WithContractDeployedBytecode(string(a.DeployedBytecode)),
	)
}

// LoadArtifact reads an artifact from r and builds its Contract.
func LoadArtifact(r io.Reader, name string) (*Contract, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	art, err := ParseArtifact(data)
	if err != nil {
		return nil, err
	}
	return art.Contract(name), nil
}

// LoadArtifactFile reads an artifact file. When the artifact has no
// contract name the file name without extension is used.
func LoadArtifactFile(path string) (*Contract, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	art, err := ParseArtifact(data)
	if err != nil {
		return nil, err
	}
	if art.ContractName == "" {
		art.ContractName = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return art.Contract(""), nil
}
