// Package strutil parses and formats decimal text shared by the packed and extended decimals.
package strutil

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/zeebo/errs"
)

const (
	delim = '.'
)

var (
	manyZeros = bytes.Repeat([]byte{'0'}, 256)
)

// Error is the class of parsing errors.
var Error = errs.Class("parse")

// PosError is an error at a given 1-based position of the input.
type PosError struct {
	Pos int
	Err string
}

func newPosError(err string, pos int) *PosError {
	return &PosError{Err: err, Pos: pos}
}

func (pe PosError) Error() string {
	return pe.Err + fmt.Sprintf(" at pos %d", pe.Pos)
}

func addPosErrorOffset(err error, offset int) error {
	var pe *PosError
	if !errors.As(err, &pe) { // try to locate error position.
		return err
	}
	pe.Pos += offset
	return pe
}

// Parse parses a decimal string: optional quotes and spaces, optional sign,
// digits with an optional point, and an optional exponent after 'e' or 'E'.
// It returns the digits without leading zeros and the exponent, so that
// the value is (-1)^neg * digits * 10^exp. The digits are empty for zero.
// Trailing zeros are kept: "1.50" is 150e-2.
func Parse(s string) (digits string, exp int, neg bool, err error) {
	s, offset, neg := prepareString(s)
	if len(s) == 0 {
		return "", 0, false, Error.New("empty input")
	}
	digits, exp, err = doParse(s)
	if err != nil {
		// add what we've trimmed before and add +1 to the offset to start indices from 1.
		return "", 0, false, Error.Wrap(addPosErrorOffset(err, offset+1))
	}
	return digits, exp, neg, nil
}

// doParse parses the unsigned part of a decimal string.
func doParse(s string) (result string, e int, err error) {
	result, delimPos, e, err := removeLeadingZeros(s)
	if err != nil {
		return "", 0, err
	}
	return result, e - fractionDigits(s, delimPos), nil
}

// fractionDigits returns the number of digits after the delimiter at delimPos and before the exponent.
func fractionDigits(s string, delimPos int) int {
	if delimPos < 0 {
		return 0
	}
	frac := s[delimPos+1:]
	if i := strings.IndexAny(frac, "eE"); i >= 0 {
		frac = frac[:i]
	}
	return len(frac)
}

// prepareString cleans the string from ",-,+ symbols, and spaces.
func prepareString(s string) (prepared string, offset int, neg bool) {
	if len(s) == 0 {
		return "", 0, false
	}
	if s[0] == '"' {
		s = s[1:]
		offset++
	}
	if len(s) == 0 {
		return "", 0, false
	}
	if s[len(s)-1] == '"' {
		s = s[:len(s)-1]
	}
	if trimmed := strings.TrimLeftFunc(s, unicode.IsSpace); len(trimmed) != len(s) {
		offset += len(s) - len(trimmed)
		s = trimmed
	}
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	if len(s) == 0 {
		return "", 0, false
	}
	if s[0] == '-' {
		neg = true
		offset++
		s = s[1:]
	} else if s[0] == '+' {
		offset++
		s = s[1:]
	}
	return s, offset, neg
}

// removeLeadingZeros collects the digits of s without leading zeros.
// delimPos is the index of the delimiter in s or -1.
func removeLeadingZeros(s string) (result string, delimPos int, e int, err error) {
	var b strings.Builder
	delimPos = -1
	var digits int
outer:
	for i, r := range s {
		switch {
		case '0' <= r && r <= '9':
			digits++
			if b.Len() == 0 && r == '0' { // trim leading zeros
				continue
			}
			b.WriteRune(r)
		case r == 'e' || r == 'E':
			if digits == 0 {
				return "", 0, 0, newPosError("no digits before exponent", i)
			}
			parsed, err := strconv.ParseInt(s[i+1:], 10, 32)
			if err != nil {
				return "", 0, 0, newPosError("error parsing exponent: "+err.Error(), i+1)
			}
			e = int(parsed)
			break outer
		case r == delim:
			if delimPos != -1 {
				return "", 0, 0, newPosError("unexpected delimeter", i)
			}
			delimPos = i
		default:
			return "", 0, 0, newPosError(fmt.Sprintf("unexpected symbol %q", r), i)
		}
	}
	if digits == 0 {
		return "", 0, 0, newPosError("no digits", 0)
	}
	return b.String(), delimPos, e, nil
}

// FormatMantExp formats (-1)^neg * mant * 10^exp.
// 'f' and 's' produce a plain decimal, 'e' and 'v' the scientific notation.
func FormatMantExp(neg bool, mant uint64, exp int, format byte) string {
	return FormatDigits(neg, strconv.FormatUint(mant, 10), exp, format)
}

// FormatDigits formats (-1)^neg * digits * 10^exp, where digits is a non-empty string of decimal digits.
func FormatDigits(neg bool, digits string, exp int, format byte) string {
	var b bytes.Buffer
	switch format {
	case 'f', 's':
		formatAsDecimal(&b, neg, digits, exp)
	default:
		formatWithExponent(&b, neg, digits, exp)
	}
	return b.String()
}

func formatAsDecimal(b *bytes.Buffer, neg bool, mString string, exp int) {
	if mString == "0" {
		b.WriteByte('0')
		if exp < 0 {
			b.WriteByte(delim)
			b.Write(zeroBytes(-exp))
		}
		return
	}
	if neg {
		b.WriteByte('-')
	}
	switch {
	case exp >= 0:
		b.WriteString(mString)
		if exp > 0 {
			b.Write(zeroBytes(exp))
		}
	default:
		if diff := len(mString) + exp; diff <= 0 { // add leading zeros and a delimiter
			b.Write([]byte{'0', delim})
			b.Write(zeroBytes(-diff))
			b.WriteString(mString)
		} else { // insert a delimeter
			b.WriteString(mString[:diff])
			b.WriteByte(delim)
			b.WriteString(mString[diff:])
		}
	}
}

// formatWithExponent writes d.ddd e±x, keeping all the digits.
func formatWithExponent(b *bytes.Buffer, neg bool, mString string, exp int) {
	if neg && mString != "0" {
		b.WriteByte('-')
	}
	b.WriteByte(mString[0])
	if len(mString) > 1 {
		b.WriteByte(delim)
		b.WriteString(mString[1:])
	}
	b.WriteByte('e')
	e := exp + len(mString) - 1
	if e >= 0 {
		b.WriteByte('+')
	}
	b.WriteString(strconv.Itoa(e))
}

func zeroBytes(count int) []byte {
	if count <= len(manyZeros) {
		return manyZeros[:count]
	}
	result := bytes.Repeat(manyZeros, count/len(manyZeros))
	if rem := count % len(manyZeros); rem > 0 {
		result = append(result, manyZeros[:rem]...)
	}
	return result
}
