package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFormatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "format <artifact>",
		Short: "Print the human-readable ABI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			contract, err := a.loadContract(args[0])
			if err != nil {
				return err
			}
			for _, sig := range contract.HumanReadableABI() {
				fmt.Fprintln(a.out, sig)
			}
			return nil
		},
	}
}
