// Copyright 2020 Aleksandr Demakin. All rights reserved.

package dfp

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/avdva/decnum/internal/mathutil"
	"github.com/avdva/decnum/internal/strutil"
	"github.com/avdva/decnum/round"
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

const invalidString = "NaN"

// String returns a plain decimal representation of d, keeping its scale.
func (d *Decimal) String() string {
	return d.Text('f')
}

// Text returns d formatted with 'f' (plain) or 'e' (scientific) format.
func (d *Decimal) Text(format byte) string {
	if d.invalid {
		return invalidString
	}
	return strutil.FormatMantExp(d.sig < 0, mathutil.Uint64Abs(d.sig), int(d.scale), format)
}

// GoString returns debug string representation.
func (d *Decimal) GoString() string {
	return fmt.Sprintf("%s {%d, %d, %v}", d.String(), d.sig, d.scale, !d.invalid)
}

// Format implements fmt.Formatter. It accepts 's', 'v', 'f', 'e', and 'q' verbs.
// For 'f' the precision sets the number of fractional digits, half-even rounding is used.
func (d *Decimal) Format(s fmt.State, verb rune) {
	var str string
	switch verb {
	case 'v':
		if s.Flag('#') {
			str = d.GoString()
		} else {
			str = d.String()
		}
	case 's':
		str = d.String()
	case 'f':
		str = d.String()
		if prec, ok := s.Precision(); ok {
			str = new(Decimal).Set(d).SetScale(-prec, round.HalfEven).String()
		}
	case 'e':
		str = d.Text('e')
	case 'q':
		str = strconv.Quote(d.String())
	default:
		fmt.Fprintf(s, "%%!%c(dfp.Decimal=%s)", verb, d.String())
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

// Float64 returns the nearest float64 value. Invalid decimals give NaN.
func (d *Decimal) Float64() float64 {
	if d.invalid {
		return math.NaN()
	}
	// only range errors are possible here, f is ±Inf or 0 then.
	f, _ := strconv.ParseFloat(strconv.FormatInt(d.sig, 10)+"e"+strconv.Itoa(int(d.scale)), 64)
	return f
}

// MarshalText implements encoding.TextMarshaler.
func (d *Decimal) MarshalText() ([]byte, error) {
	if d.invalid {
		return nil, errInvalid
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// The text must be representable exactly, otherwise an error is returned.
func (d *Decimal) UnmarshalText(data []byte) error {
	v, err := Parse(string(data), round.Exact)
	if err != nil {
		return err
	}
	if !v.Valid() {
		return Error.New("value out of range: %s", data)
	}
	*d = *v
	return nil
}

// MarshalJSON marshals value according to current JSONMode.
func (d *Decimal) MarshalJSON() ([]byte, error) {
	if d.invalid {
		return nil, errInvalid
	}
	return d.toJSON(JSONMode), nil
}

func (d *Decimal) toJSON(mode int) []byte {
	switch mode {
	case JSONModeFloat:
		return []byte(strconv.FormatFloat(d.Float64(), 'f', -1, 64))
	case JSONModeME:
		data, _ := json.Marshal(meJSON{M: d.sig, E: int(d.scale)})
		return data
	case JSONModeCompact:
		str, me := d.toJSON(JSONModeString), d.toJSON(JSONModeME)
		if len(str) <= len(me) {
			return str
		}
		return me
	default: // marshal as a string
		return []byte(`"` + d.String() + `"`)
	}
}

type meJSON struct {
	M int64 `json:"m"`
	E int   `json:"e"`
}

// UnmarshalJSON unmarshals a string, float, or an object into a value.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return Error.New("empty json")
	}
	if data[0] != '{' {
		return d.UnmarshalText(data)
	}
	var me meJSON
	if err := json.Unmarshal(data, &me); err != nil {
		return Error.Wrap(err)
	}
	if me.E < MinScale || me.E > MaxScale {
		return Error.New("scale out of range: %d", me.E)
	}
	if me.M == math.MinInt64 {
		return Error.New("significand out of range")
	}
	*d = Decimal{sig: me.M, scale: int16(me.E)}
	return nil
}
