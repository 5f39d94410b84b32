// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fixed implements a fixed-point decimal, where both significand
// and scale are stored in a single 64-bit word.
// The number of bits given to the scale is selected by the type parameter,
// see Split0..Split8. Arithmetic never fails with an error: every operation
// takes a default value, which is returned if the result can not be represented.
package fixed

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/avdva/decnum/internal/mathutil"
	"github.com/avdva/decnum/internal/norm"
	"github.com/avdva/decnum/internal/strutil"
	"github.com/avdva/decnum/round"
	"github.com/zeebo/errs"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeCompact
)

const (
	// JSONModeString produces values as strings, like `"1234.5678"`
	JSONModeString = iota
	// JSONModeFloat marshals values as floats, like `1234.5678`.
	JSONModeFloat
	// JSONModeME marshals values with significand and scale, like `{"m":123,"e":-5}`.
	JSONModeME
	// JSONModeCompact will choose the shortest form between JSONModeString and JSONModeME.
	JSONModeCompact
)

// Error is the class of errors returned by parsing and unmarshaling.
var Error = errs.Class("fixed")

var (
	jsonParts = []string{`{"m":`, `,"e":`, `}`}
	jsonLen   = len(jsonParts[0]) + len(jsonParts[1]) + len(jsonParts[2])

	errRange = Error.New("value out of range")
)

const nanString = "NaN"

// Word is a packed decimal: value = significand * 10^scale.
type Word[S Split] int64

// NaN returns the only bit pattern, which is never a valid encoding.
// It is a convenient default value for arithmetic.
func NaN[S Split]() Word[S] {
	return Word[S](math.MinInt64)
}

// Max returns the maximum value of the split.
func Max[S Split]() Word[S] {
	l := Limits[S]()
	return encode[S](l, l.MaxSignificand, l.MaxScale)
}

// Min returns the minimum value of the split.
func Min[S Split]() Word[S] {
	l := Limits[S]()
	return encode[S](l, -l.MaxSignificand, l.MaxScale)
}

// Encode packs a significand and a scale.
// It returns def if any of them is out of the split's range.
func Encode[S Split](sig int64, scale int, def Word[S]) Word[S] {
	l := Limits[S]()
	if sig > l.MaxSignificand || sig < -l.MaxSignificand || scale < l.MinScale || scale > l.MaxScale {
		return def
	}
	return encode[S](l, sig, scale)
}

func encode[S Split](l Layout, sig int64, scale int) Word[S] {
	return Word[S](sig<<l.ScaleBits | int64(scale)&l.scaleMask())
}

// Valid returns true if w is a valid encoding.
func Valid[S Split](w Word[S]) bool {
	return w.Valid()
}

// Valid returns true if w is not NaN.
func (w Word[S]) Valid() bool {
	return w != NaN[S]()
}

// Decode returns w's significand and scale.
func (w Word[S]) Decode() (sig int64, scale int) {
	return w.Significand(), w.Scale()
}

// Significand returns w's significand.
func (w Word[S]) Significand() int64 {
	var s S
	return int64(w) >> s.ScaleBits()
}

// Scale returns w's scale.
func (w Word[S]) Scale() int {
	var s S
	shift := 64 - s.ScaleBits()
	return int(int64(w) << shift >> shift)
}

// Sign returns -1, 0, or 1.
func (w Word[S]) Sign() int {
	return mathutil.Int64Sign(w.Significand())
}

// IsZero returns true if w represents zero at any scale.
func (w Word[S]) IsZero() bool {
	return w.Significand() == 0
}

// Eq returns true, if both words represent the same number. NaN is not equal to anything.
func (w Word[S]) Eq(other Word[S]) bool {
	return w.Valid() && other.Valid() && (w == other || w.Cmp(other) == 0)
}

// Cmp compares two words.
// Returns -1 if w < other, 0 if w == other, 1 if w > other.
// NaN is less than any valid word.
func (w Word[S]) Cmp(other Word[S]) int {
	if !w.Valid() || !other.Valid() {
		return boolCmp(w.Valid(), other.Valid())
	}
	s1, e1 := w.Decode()
	s2, e2 := other.Decode()
	return norm.Cmp(s1, e1, s2, e2)
}

func boolCmp(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}

// Normalized eliminates trailing zeros of the significand.
// The process basically increases the scale, and stops,
// if it reaches its maximum value, so that it is possible,
// that the significand has trailing zeros.
func (w Word[S]) Normalized() Word[S] {
	if !w.Valid() {
		return w
	}
	l := Limits[S]()
	sig, scale := w.Decode()
	if sig == 0 {
		return encode[S](l, 0, 0)
	}
	m, e := mathutil.TrimMantExp(mathutil.Uint64Abs(sig), scale, l.MaxScale)
	return encode[S](l, signed(m, sig < 0), e)
}

// Float64 returns the nearest float64 value.
func (w Word[S]) Float64() float64 {
	if !w.Valid() {
		return math.NaN()
	}
	sig, scale := w.Decode()
	// only range errors are possible here, f is ±Inf or 0 then.
	f, _ := strconv.ParseFloat(strconv.FormatInt(sig, 10)+"e"+strconv.Itoa(scale), 64)
	return f
}

// GoString returns debug string representation.
func (w Word[S]) GoString() string {
	sig, scale := w.Decode()
	return w.String() + fmt.Sprintf(" {%v, %v}", sig, scale)
}

// String returns a plain decimal representation of w, keeping its scale: 2.00 is "2.00".
func (w Word[S]) String() string {
	return w.Text('f')
}

// Text returns w formatted with 'f' (plain) or 'e' (scientific) format.
func (w Word[S]) Text(format byte) string {
	if !w.Valid() {
		return nanString
	}
	sig, scale := w.Decode()
	return strutil.FormatMantExp(sig < 0, mathutil.Uint64Abs(sig), scale, format)
}

// Format implements fmt.Formatter. It accepts 's', 'v', 'f', 'e', and 'q' verbs.
func (w Word[S]) Format(s fmt.State, verb rune) {
	var str string
	switch verb {
	case 'v':
		if s.Flag('#') {
			str = w.GoString()
		} else {
			str = w.Text('f')
		}
	case 's', 'f':
		str = w.Text('f')
	case 'e':
		str = w.Text('e')
	case 'q':
		str = strconv.Quote(w.Text('f'))
	default:
		fmt.Fprintf(s, "%%!%c(fixed.Word=%s)", verb, w.Text('f'))
		return
	}
	if width, ok := s.Width(); ok && width > len(str) {
		pad := strings.Repeat(" ", width-len(str))
		if s.Flag('-') {
			str += pad
		} else {
			str = pad + str
		}
	}
	fmt.Fprint(s, str)
}

// MarshalText implements encoding.TextMarshaler.
func (w Word[S]) MarshalText() ([]byte, error) {
	return []byte(w.Text('f')), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// The text must be representable exactly, otherwise an error is returned.
func (w *Word[S]) UnmarshalText(data []byte) error {
	v, err := parseExact[S](string(data))
	if err != nil {
		return err
	}
	*w = v
	return nil
}

// MarshalJSON marshals value according to current JSONMode.
// See JSONMode and JSONMode* constants. NaN is always marshaled as a string.
func (w Word[S]) MarshalJSON() ([]byte, error) {
	if !w.Valid() {
		return []byte(`"` + nanString + `"`), nil
	}
	return w.toJSON(JSONMode), nil
}

func (w Word[S]) toJSON(mode int) []byte {
	switch mode {
	case JSONModeFloat:
		return []byte(strconv.FormatFloat(w.Float64(), 'f', -1, 64))
	case JSONModeME:
		var builder strings.Builder
		sig, scale := w.Decode()
		builder.WriteString(jsonParts[0])
		builder.WriteString(strconv.FormatInt(sig, 10))
		builder.WriteString(jsonParts[1])
		builder.WriteString(strconv.Itoa(scale))
		builder.WriteString(jsonParts[2])
		return []byte(builder.String())
	case JSONModeCompact:
		if calcStrLen(w) <= calcMeLen(w) {
			return w.toJSON(JSONModeString)
		}
		return w.toJSON(JSONModeME)
	default: // marshal as a string
		return []byte(`"` + w.Text('f') + `"`)
	}
}

// UnmarshalJSON unmarshals a string, float, or an object into a value.
func (w *Word[S]) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return Error.New("empty json")
	}
	switch data[0] {
	case '{':
		d := struct {
			M int64
			E int
		}{}
		if err := json.Unmarshal(data, &d); err != nil {
			return Error.Wrap(err)
		}
		v := Encode[S](d.M, d.E, NaN[S]())
		if !v.Valid() {
			return errRange
		}
		*w = v
	default:
		return w.UnmarshalText(data)
	}
	return nil
}

func parseExact[S Split](s string) (Word[S], error) {
	if strings.Trim(s, `"`) == nanString {
		return NaN[S](), nil
	}
	v, err := Arithmetic[S]{Rounding: round.Exact}.Parse(s, NaN[S]())
	if err != nil {
		return v, err
	}
	if !v.Valid() {
		return v, errRange
	}
	return v, nil
}

func calcMeLen[S Split](w Word[S]) int {
	sig, scale := w.Decode()
	return jsonLen + int64DecimalLen(sig) + int64DecimalLen(int64(scale))
}

func calcStrLen[S Split](w Word[S]) int {
	sig, scale := w.Decode()
	mantLen := int64DecimalLen(sig)
	// the length of the string. 2 for a pair of quotes plus len of significand
	sLen := 2 + mantLen
	if sig < 0 {
		mantLen--
	}
	if scale >= 0 { // `scale` trailing zeros, zero is always "0"
		if sig != 0 {
			sLen += scale
		}
	} else {
		// a delimeter
		sLen++
		// leading zeros and a zero before the delimeter
		if diff := scale + mantLen; diff <= 0 {
			sLen += 1 - diff
		}
	}
	return sLen
}

func int64DecimalLen(value int64) int {
	result := 0
	if value < 0 {
		result++
	}
	return result + mathutil.DecimalDigits(mathutil.Uint64Abs(value))
}

func signed(m uint64, neg bool) int64 {
	if neg {
		return -int64(m)
	}
	return int64(m)
}
