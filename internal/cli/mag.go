// Copyright 2020 Aleksandr Demakin. All rights reserved.

package cli

import (
	"fmt"
	"strconv"

	"github.com/avdva/decnum/mag"
	"github.com/spf13/cobra"
)

var magOps = map[string]operation{
	"add":  {2, "a + b"},
	"sub":  {2, "a - b"},
	"mul":  {2, "a * b"},
	"div":  {2, "truncated quotient a / b"},
	"rem":  {2, "remainder of a / b, with the sign of a"},
	"sqrt": {1, "square root of a, rounded to an integer"},
	"pow":  {2, "a ** b, b is a non-negative int"},
	"and":  {2, "bitwise a & b, two's complement"},
	"or":   {2, "bitwise a | b"},
	"xor":  {2, "bitwise a ^ b"},
	"not":  {1, "bitwise ^a"},
	"cmp":  {2, "-1, 0, or 1"},
}

func newMagCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mag <op> a [b]",
		Short: "Arbitrary-precision integer operations",
		Long:  "Arbitrary-precision integer operations. Operations:\n" + opsUsage(magOps),
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkArgs(magOps, args); err != nil {
				return err
			}
			res, err := a.evalMag(args[0], args[1:])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			a.print(cmd, "%s", res)
			return nil
		},
	}
}

func (a *app) evalMag(op string, args []string) (string, error) {
	x, err := mag.Parse(args[0])
	if err != nil {
		return "", err
	}
	var y *mag.Int
	if len(args) > 1 && op != "pow" {
		if y, err = mag.Parse(args[1]); err != nil {
			return "", err
		}
	}
	a.log.Printf("mag %s %v", op, args)
	z := new(mag.Int)
	switch op {
	case "add":
		z.Add(x, y)
	case "sub":
		z.Sub(x, y)
	case "mul":
		z.Mul(x, y)
	case "div", "rem":
		if y.Sign() == 0 {
			return "", fmt.Errorf("division by zero")
		}
		if op == "div" {
			z.Quo(x, y)
		} else {
			z.Rem(x, y)
		}
	case "sqrt":
		if x.Sign() < 0 {
			return "", fmt.Errorf("square root of a negative number")
		}
		if _, ok := z.Sqrt(x, a.mode); !ok {
			return "", fmt.Errorf("inexact result with rounding %s", a.mode)
		}
	case "pow":
		n, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			return "", err
		}
		z.Exp(x, uint(n))
	case "and":
		z.And(x, y)
	case "or":
		z.Or(x, y)
	case "xor":
		z.Xor(x, y)
	case "not":
		z.Not(x)
	case "cmp":
		return strconv.Itoa(x.Cmp(y)), nil
	}
	a.log.Printf("result has %d words", len(z.Words()))
	return z.String(), nil
}
