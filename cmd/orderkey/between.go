package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type keysOutput struct {
	Keys []string `json:"keys" yaml:"keys"`
}

func newBetweenCmd(a *app) *cobra.Command {
	var n uint
	cmd := &cobra.Command{
		Use:     "between [a] [b]",
		Aliases: []string{"nkeys"},
		Short:   "Generate keys between a and b",
		Long: `Generate one or more keys that sort strictly between a and b.
Omit a bound, or pass "-", to leave that end open.`,
		Example: `  orderkey between            # a0
  orderkey between a0 a1      # a0V
  orderkey between - a0 -n 3  # Zx Zy Zz`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := a.gen.NKeysBetween(bound(args, 0), bound(args, 1), n)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), a.cfg.Output, keysOutput{Keys: keys}, func(w io.Writer) error {
				for _, k := range keys {
					if _, err := fmt.Fprintln(w, k); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().UintVarP(&n, "count", "n", 1, "number of keys to generate")
	return cmd
}
