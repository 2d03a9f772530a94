package abicall

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestAccessorOptions(t *testing.T) {
	t.Run("defaults are empty", func(t *testing.T) {
		cfg := &accessorConfig{}
		if cfg.code != "" || cfg.deployedBytecode != "" || cfg.address != nil {
			t.Errorf("Expected empty config, got %+v", cfg)
		}
	})

	t.Run("WithCode", func(t *testing.T) {
		cfg := &accessorConfig{}
		WithCode("0x01")(cfg)
		if cfg.code != "0x01" {
			t.Errorf("Expected code 0x01, got %q", cfg.code)
		}
	})

	t.Run("WithDeployedBytecode", func(t *testing.T) {
		cfg := &accessorConfig{}
		WithDeployedBytecode("0x02")(cfg)
		if cfg.deployedBytecode != "0x02" {
			t.Errorf("Expected deployedBytecode 0x02, got %q", cfg.deployedBytecode)
		}
	})

	t.Run("WithAddress copies the address", func(t *testing.T) {
		addr := common.HexToAddress("0x01")
		cfg := &accessorConfig{}
		WithAddress(addr)(cfg)
		addr[19] = 0xff
		if cfg.address == nil || cfg.address[19] != 0x01 {
			t.Errorf("Expected address to be copied, got %v", cfg.address)
		}
	})
}

func TestContractOptions(t *testing.T) {
	addr := common.HexToAddress("0xabcdef1234567890abcdef1234567890abcdef12")
	c := NewContract("Opts", nil,
		WithBytecode("0x60"),
		WithContractDeployedBytecode("0x61"),
		WithRuntimeCode("0x62"),
		WithContractAddress(addr),
	)

	if c.Bytecode() != "0x60" {
		t.Errorf("Expected bytecode 0x60, got %q", c.Bytecode())
	}
	if c.DeployedBytecode() != "0x61" {
		t.Errorf("Expected deployed bytecode 0x61, got %q", c.DeployedBytecode())
	}
	if c.Code() != "0x62" {
		t.Errorf("Expected code 0x62, got %q", c.Code())
	}
	if got, ok := c.Address(); !ok || got != addr {
		t.Errorf("Expected address %s, got %s", addr.Hex(), got.Hex())
	}
	if c.Read().Len() != 0 || c.Write().Len() != 0 {
		t.Error("Expected empty accessor maps for nil ABI")
	}
}
