// Copyright 2020 Aleksandr Demakin. All rights reserved.

package cli

import (
	"fmt"
	"strconv"

	"github.com/avdva/decnum/dfp"
	"github.com/spf13/cobra"
)

var decOps = map[string]operation{
	"add":       {2, "a + b"},
	"sub":       {2, "a - b"},
	"mul":       {2, "a * b"},
	"div":       {2, "a / b rounded to --scale"},
	"divmod":    {2, "quotient truncated to --scale and the remainder"},
	"rem":       {2, "remainder of a / b"},
	"sqrt":      {1, "square root rounded to --scale"},
	"setscale":  {1, "a rounded to --scale"},
	"neg":       {1, "-a"},
	"abs":       {1, "|a|"},
	"normalize": {1, "a without trailing zeros of the significand"},
	"cmp":       {2, "-1, 0, or 1"},
}

func newDecCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dec <op> a [b]",
		Short: "Extended decimal operations",
		Long:  "Operations on decimals with a 64-bit significand and a 16-bit scale. Operations:\n" + opsUsage(decOps),
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkArgs(decOps, args); err != nil {
				return err
			}
			res, err := a.evalDec(args[0], args[1:])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			a.print(cmd, "%s", res)
			return nil
		},
	}
	cmd.Flags().IntVar(&a.scale, "scale", -18, "target scale of div, divmod, sqrt and setscale")
	return cmd
}

func (a *app) evalDec(op string, args []string) (string, error) {
	ds := make([]*dfp.Decimal, len(args))
	for i, arg := range args {
		d, err := dfp.Parse(arg, a.mode)
		if err != nil {
			return "", err
		}
		if !d.Valid() {
			return "", fmt.Errorf("%s is out of range with rounding %s", arg, a.mode)
		}
		a.log.Printf("operand %d: %#v", i, d)
		ds[i] = d
	}
	x, scale := ds[0], a.cfg.Scale
	switch op {
	case "add":
		x.Add(ds[1], a.mode)
	case "sub":
		x.Sub(ds[1], a.mode)
	case "mul":
		x.Mul(ds[1], a.mode)
	case "div":
		x.Div(ds[1], scale, a.mode)
	case "divmod":
		q, r := x.DivMod(ds[1], scale)
		return q.Text(a.verb) + " " + r.Text(a.verb), nil
	case "rem":
		x.Rem(ds[1])
	case "sqrt":
		x.Sqrt(scale, a.mode)
	case "setscale":
		x.SetScale(scale, a.mode)
	case "neg":
		x.Neg()
	case "abs":
		x.Abs()
	case "normalize":
		x.Normalize()
	case "cmp":
		return strconv.Itoa(x.Cmp(ds[1])), nil
	}
	a.log.Printf("result: %#v", x)
	return x.Text(a.verb), nil
}
