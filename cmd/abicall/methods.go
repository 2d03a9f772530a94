package main

import (
	"fmt"

	"github.com/spf13/cobra"

	abicall "github.com/branched-services/go-abicall"
)

func newMethodsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "methods <artifact>",
		Short: "List read and write methods",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			contract, err := a.loadContract(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "%s\n", contract.Name())
			printGroup(a, "read", contract.Read(), contract.Methods(), abicall.Fragment.IsRead)
			printGroup(a, "write", contract.Write(), contract.Methods(), abicall.Fragment.IsWrite)
			return nil
		},
	}
}

func printGroup(a *app, title string, accessors *abicall.Accessors, methods []abicall.Fragment, keep func(abicall.Fragment) bool) {
	fmt.Fprintf(a.out, "\n%s (%d)\n", title, accessors.Len())
	for _, name := range accessors.Names() {
		for _, m := range methods {
			if m.Name == name && keep(m) {
				fmt.Fprintf(a.out, "  %s\n", abicall.FormatFragment(m))
			}
		}
	}
}
