// Copyright 2020 Aleksandr Demakin. All rights reserved.

package cli

import (
	"fmt"
	"strconv"

	"github.com/avdva/decnum/dtoa"
	"github.com/avdva/decnum/internal/strutil"
	"github.com/avdva/decnum/mag"
	"github.com/spf13/cobra"
)

func newShortestCommand(a *app) *cobra.Command {
	var float32Mode bool
	cmd := &cobra.Command{
		Use:   "shortest <float>",
		Short: "Shortest decimal representation of a binary float",
		Long: `Prints the shortest decimal, which parses back to the same float.
With --scale the exact binary value is printed instead, rounded to the given scale.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bitSize := 64
			if float32Mode {
				bitSize = 32
			}
			f, err := strconv.ParseFloat(args[0], bitSize)
			if err != nil {
				return fmt.Errorf("shortest: %w", err)
			}
			if cmd.Flags().Changed("scale") {
				res, err := a.exactFloat(f)
				if err != nil {
					return fmt.Errorf("shortest: %w", err)
				}
				a.print(cmd, "%s", res)
				return nil
			}
			var r dtoa.Result
			if float32Mode {
				r = dtoa.Shortest32(float32(f))
			} else {
				r = dtoa.Shortest64(f)
			}
			a.log.Printf("digits=%d exp=%d neg=%v", r.Digits, r.Exp, r.Neg)
			if r.Kind != dtoa.Finite {
				a.print(cmd, "%s", r)
				return nil
			}
			a.print(cmd, "%s", strutil.FormatMantExp(r.Neg, r.Digits, r.Exp, a.verb))
			return nil
		},
	}
	cmd.Flags().BoolVar(&float32Mode, "float32", false, "treat the input as a float32")
	cmd.Flags().IntVar(&a.scale, "scale", -18, "print the exact value rounded to this scale")
	return cmd
}

func (a *app) exactFloat(f float64) (string, error) {
	x, ok := dtoa.Fixed64(f, a.cfg.Scale, a.mode)
	if !ok {
		return "", fmt.Errorf("%v can not be rounded to scale %d with rounding %s", f, a.cfg.Scale, a.mode)
	}
	abs := new(mag.Int).Abs(x)
	return strutil.FormatDigits(x.Sign() < 0, abs.String(), a.cfg.Scale, a.verb), nil
}
