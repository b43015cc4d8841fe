package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type approximation struct {
	Key   string  `json:"key" yaml:"key"`
	Value float64 `json:"value" yaml:"value"`
}

func newApproxCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "approx KEY...",
		Short: "Print the approximate numeric value of keys",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := make([]approximation, 0, len(args))
			for _, k := range args {
				v, err := a.gen.Float64Approx(k)
				if err != nil {
					return err
				}
				out = append(out, approximation{Key: k, Value: v})
			}
			return render(cmd.OutOrStdout(), a.cfg.Output, out, func(w io.Writer) error {
				for _, r := range out {
					if _, err := fmt.Fprintf(w, "%s\t%g\n", r.Key, r.Value); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
