package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ntauth/orderkey"
)

type rankOutput struct {
	Rank   string `json:"rank" yaml:"rank"`
	Bucket uint8  `json:"bucket" yaml:"bucket"`
	Key    string `json:"key" yaml:"key"`
}

func newRankCmd(a *app) *cobra.Command {
	var bucket uint8
	cmd := &cobra.Command{
		Use:   "rank [a] [b]",
		Short: "Generate a bucket|key lexorank between two ranks",
		Example: `  orderkey rank -b 2             # 2|a0
  orderkey rank '2|a0' '2|a1'    # 2|a0V`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var bounds [2]orderkey.Lexorank
			for i := range bounds {
				s := bound(args, i)
				if s == "" {
					continue
				}
				rk, err := a.gen.ParseLexorank(s)
				if err != nil {
					return err
				}
				bounds[i] = rk
			}
			b := orderkey.Bucket(bucket)
			if !cmd.Flags().Changed("bucket") {
				for _, rk := range bounds {
					if !rk.IsZero() {
						b = rk.Bucket()
						break
					}
				}
			}
			rk, err := a.gen.LexorankBetween(b, bounds[0], bounds[1])
			if err != nil {
				return err
			}
			out := rankOutput{Rank: rk.String(), Bucket: uint8(rk.Bucket()), Key: rk.Key()}
			return render(cmd.OutOrStdout(), a.cfg.Output, out, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, out.Rank)
				return err
			})
		},
	}
	cmd.Flags().Uint8VarP(&bucket, "bucket", "b", 0, "bucket for the new rank (default: bucket of the bounds)")
	return cmd
}
