package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var errInvalidKeys = errors.New("some keys are invalid")

type validation struct {
	Key   string `json:"key" yaml:"key"`
	Valid bool   `json:"valid" yaml:"valid"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate KEY...",
		Short: "Check that keys are well formed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]validation, 0, len(args))
			failed := 0
			for _, k := range args {
				r := validation{Key: k, Valid: true}
				if err := a.gen.Validate(k); err != nil {
					r.Valid = false
					r.Error = err.Error()
					failed++
				}
				results = append(results, r)
			}
			err := render(cmd.OutOrStdout(), a.cfg.Output, results, func(w io.Writer) error {
				for _, r := range results {
					status := "ok"
					if !r.Valid {
						status = r.Error
					}
					if _, err := fmt.Fprintf(w, "%s\t%s\n", r.Key, status); err != nil {
						return err
					}
				}
				return nil
			})
			if err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", errInvalidKeys, failed, len(args))
			}
			return nil
		},
	}
}
