// Copyright 2020 Aleksandr Demakin. All rights reserved.

package dfp

import (
	"encoding/json"
	"fmt"

	"github.com/avdva/decnum/round"
)

func ExampleDecimal() {
	v1, err := Parse("1.23456", round.HalfEven)
	if err != nil {
		panic(err)
	}
	fmt.Printf("v1 as a float = %v, significand = %v, scale = %v\n", v1.Float64(), v1.Significand(), v1.Scale())

	v2 := FromFloat64(1.23456)
	fmt.Printf("value from string: %s, value from float: %s, values are equal: %v\n", v1, v2, v1.Eq(v2))

	v3 := New(12345, -4)
	fmt.Printf("significands at scale -6: %d, %d\n",
		new(Decimal).Set(v1).SetScale(-6, round.Exact).Significand(), v3.SetScale(-6, round.Exact).Significand())

	data, err := json.Marshal(v1)
	if err != nil {
		panic(err)
	}
	fmt.Printf("json for value: %s\n", string(data))

	JSONMode = JSONModeME
	data, err = json.Marshal(v1)
	if err != nil {
		panic(err)
	}
	fmt.Printf("json for value and JSONModeME: %s\n", string(data))
	JSONMode = JSONModeCompact

	v4 := MustParse("1234560")
	fmt.Printf("%s + %s = %s\n", v4, v1, new(Decimal).Set(v4).Add(v1, round.HalfEven))
	fmt.Printf("%s * %s = %s\n", v1, v4, new(Decimal).Set(v1).Mul(v4, round.HalfEven))

	a, b := New(45, -2), New(15, -2)
	fmt.Printf("%s / %s = %s\n", a, b, new(Decimal).Set(a).Div(b, -2, round.HalfEven))

	a, b = New(15, 0), New(7, 0)
	for _, scale := range []int{-3, -2, 0} {
		q, r := a.DivMod(b, scale)
		fmt.Printf("%s / %s = %s (%s), scale = %d\n", a, b, q, r, scale)
	}

	a, b = New(15, 4), New(7, 1)
	q, r := a.DivMod(b, -2)
	fmt.Printf("%s / %s = %s (%s), scale = -2\n", a, b, q, r)

	fmt.Printf("1 / 0 = %s\n", New(1, 0).Div(New(0, 0), 0, round.HalfEven))

	// Output:
	// v1 as a float = 1.23456, significand = 123456, scale = -5
	// value from string: 1.23456, value from float: 1.23456, values are equal: true
	// significands at scale -6: 1234560, 1234500
	// json for value: "1.23456"
	// json for value and JSONModeME: {"m":123456,"e":-5}
	// 1234560 + 1.23456 = 1234561.23456
	// 1.23456 * 1234560 = 1524138.39360
	// 0.45 / 0.15 = 3.00
	// 15 / 7 = 2.142 (0.006), scale = -3
	// 15 / 7 = 2.14 (0.02), scale = -2
	// 15 / 7 = 2 (1), scale = 0
	// 150000 / 70 = 2142.85 (0.5), scale = -2
	// 1 / 0 = NaN
}
