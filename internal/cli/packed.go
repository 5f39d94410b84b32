// Copyright 2020 Aleksandr Demakin. All rights reserved.

package cli

import (
	"fmt"
	"strconv"

	fixed "github.com/avdva/decnum"
	"github.com/spf13/cobra"
)

var packedOps = map[string]operation{
	"add":       {2, "a + b"},
	"sub":       {2, "a - b"},
	"mul":       {2, "a * b"},
	"div":       {2, "a / b, exact if possible, otherwise with all the digits the split holds"},
	"divscale":  {2, "a / b rounded to --scale"},
	"rem":       {2, "remainder of a / b"},
	"setscale":  {1, "a rounded to --scale"},
	"sqrt":      {1, "square root"},
	"ln":        {1, "natural logarithm"},
	"log10":     {1, "decimal logarithm"},
	"exp":       {1, "e ** a"},
	"sin":       {1, "sine"},
	"cos":       {1, "cosine"},
	"tan":       {1, "tangent"},
	"neg":       {1, "-a"},
	"abs":       {1, "|a|"},
	"normalize": {1, "a without trailing zeros of the significand"},
	"cmp":       {2, "-1, 0, or 1"},
	"encode":    {1, "the packed word of a as an int64"},
	"decode":    {1, "the value of an int64 packed word"},
}

func newPackedCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "packed <op> a [b]",
		Short: "Packed fixed-point decimal word operations",
		Long:  "Operations on 64-bit words holding a significand and a scale. Operations:\n" + opsUsage(packedOps),
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkArgs(packedOps, args); err != nil {
				return err
			}
			res, err := a.evalPacked(args[0], args[1:])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			a.print(cmd, "%s", res)
			return nil
		},
	}
	cmd.Flags().IntVarP(&a.split, "split", "s", 8, "number of scale bits, [0, 8]")
	cmd.Flags().IntVar(&a.scale, "scale", -18, "target scale of divscale and setscale")
	return cmd
}

func (a *app) evalPacked(op string, args []string) (string, error) {
	switch a.cfg.Split {
	case 0:
		return evalWord[fixed.Split0](a, op, args)
	case 1:
		return evalWord[fixed.Split1](a, op, args)
	case 2:
		return evalWord[fixed.Split2](a, op, args)
	case 3:
		return evalWord[fixed.Split3](a, op, args)
	case 4:
		return evalWord[fixed.Split4](a, op, args)
	case 5:
		return evalWord[fixed.Split5](a, op, args)
	case 6:
		return evalWord[fixed.Split6](a, op, args)
	case 7:
		return evalWord[fixed.Split7](a, op, args)
	default:
		return evalWord[fixed.Split8](a, op, args)
	}
}

func evalWord[S fixed.Split](a *app, op string, args []string) (string, error) {
	ar := fixed.Arithmetic[S]{Rounding: a.mode}
	def := fixed.NaN[S]()
	if op == "decode" {
		v, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return "", err
		}
		return fixed.Word[S](v).Text(a.verb), nil
	}
	ws := make([]fixed.Word[S], len(args))
	for i, arg := range args {
		w, err := ar.Parse(arg, def)
		if err != nil {
			return "", err
		}
		if !w.Valid() {
			return "", fmt.Errorf("%s does not fit split %d with rounding %s", arg, a.cfg.Split, a.mode)
		}
		a.log.Printf("operand %d: %#v", i, w)
		ws[i] = w
	}
	x := ws[0]
	var res fixed.Word[S]
	switch op {
	case "add":
		res = ar.Add(x, ws[1], def)
	case "sub":
		res = ar.Sub(x, ws[1], def)
	case "mul":
		res = ar.Mul(x, ws[1], def)
	case "div":
		res = ar.Div(x, ws[1], def)
	case "divscale":
		res = ar.DivToScale(x, ws[1], a.cfg.Scale, def)
	case "rem":
		res = ar.Rem(x, ws[1], def)
	case "setscale":
		res = ar.SetScale(x, a.cfg.Scale, def)
	case "sqrt":
		res = ar.Sqrt(x, def)
	case "ln":
		res = ar.Ln(x, def)
	case "log10":
		res = ar.Log10(x, def)
	case "exp":
		res = ar.Exp(x, def)
	case "sin":
		res = ar.Sin(x, def)
	case "cos":
		res = ar.Cos(x, def)
	case "tan":
		res = ar.Tan(x, def)
	case "neg":
		res = ar.Neg(x, def)
	case "abs":
		res = ar.Abs(x, def)
	case "normalize":
		res = x.Normalized()
	case "cmp":
		return strconv.Itoa(ar.Cmp(x, ws[1])), nil
	case "encode":
		return strconv.FormatInt(int64(x), 10), nil
	}
	a.log.Printf("result: %#v", res)
	return res.Text(a.verb), nil
}
