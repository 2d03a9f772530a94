package main

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type callOptions struct {
	calldata bool
	code     string
	address  string
}

func newCallCmd(a *app) *cobra.Command {
	opts := &callOptions{}

	cmd := &cobra.Command{
		Use:   "call <artifact> <method> [args...]",
		Short: "Print the call descriptor for a method",
		Long: "Build the call descriptor for a method. Arguments are converted using the input types " +
			"of the overload that accepts that many arguments. Array and tuple arguments are given as JSON, " +
			"e.g. '[1,2]' or '[{\"to\":\"0x..\",\"amount\":5}]'; tuples may also be positional arrays.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCall(a, opts, cmd.Flags().Changed("calldata"), args[0], args[1], args[2:])
		},
	}

	cmd.Flags().BoolVar(&opts.calldata, "calldata", false, "also print the encoded calldata")
	cmd.Flags().StringVar(&opts.code, "code", "", "bind runtime code (script-style call)")
	cmd.Flags().StringVar(&opts.address, "address", "", "bind the contract to an address")
	return cmd
}

func runCall(a *app, opts *callOptions, calldataSet bool, artifact, method string, raw []string) error {
	contract, err := a.loadContract(artifact)
	if err != nil {
		return err
	}
	if opts.address != "" {
		if !common.IsHexAddress(opts.address) {
			return fmt.Errorf("invalid address %q", opts.address)
		}
		contract = contract.WithAddress(common.HexToAddress(opts.address))
	}
	if opts.code != "" {
		contract = contract.WithCode(opts.code)
	}

	// The first call only needs the arity to find the overloads.
	probe, err := contract.Call(method, stringArgs(raw)...)
	if err != nil {
		return err
	}
	args, err := convertArgs(probe.ABI, raw)
	if err != nil {
		return err
	}
	desc, err := contract.Call(method, args...)
	if err != nil {
		return err
	}
	a.logger.Debug("descriptor built",
		zap.String("method", method),
		zap.Int("args", desc.ArgCount()),
		zap.Int("overloads", len(desc.ABI)))

	var out []byte
	if a.cfg.Output.Indent {
		out, err = json.MarshalIndent(desc, "", "  ")
	} else {
		out, err = json.Marshal(desc)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, string(out))

	printCalldata := a.cfg.Output.Calldata
	if calldataSet {
		printCalldata = opts.calldata
	}
	if printCalldata {
		data, err := desc.EncodeCallData()
		if err != nil {
			return fmt.Errorf("encode calldata: %w", err)
		}
		fmt.Fprintf(a.out, "calldata: %s\n", hexutil.Encode(data))
	}
	return nil
}

func stringArgs(raw []string) []any {
	out := make([]any, len(raw))
	for i, s := range raw {
		out[i] = s
	}
	return out
}
