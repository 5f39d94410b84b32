// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"encoding/json"
	"fmt"

	"github.com/avdva/decnum/round"
)

func ExampleWord() {
	var ar Arithmetic[Split8]
	def := NaN[Split8]()
	v1, err := ar.Parse("1.23456", def)
	if err != nil {
		panic(err)
	}
	sig, scale := v1.Decode()
	fmt.Printf("v1 as a float = %v, significand = %v, scale = %v\n", v1.Float64(), sig, scale)

	v2 := ar.FromFloat64(1.23456, def)
	fmt.Printf("value from string: %s, value from float: %s, values are equal: %v\n", v1, v2, v1.Eq(v2))

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
	JSONMode = JSONModeCompact
	fmt.Printf("json for value and JSONModeME: %s\n", string(data))

	v3 := ar.MustParse("1234560", def)
	fmt.Printf("%s + %s = %s\n", v3, v1, ar.Add(v3, v1, def))
	fmt.Printf("%s / 0 = %s\n", v1, ar.Div(v1, ar.FromInt64(0, def), def))

	// Output:
	// v1 as a float = 1.23456, significand = 123456, scale = -5
	// value from string: 1.23456, value from float: 1.23456, values are equal: true
	// json for value: "1.23456"
	// json for value and JSONModeME: {"m":123456,"e":-5}
	// 1234560 + 1.23456 = 1234561.23456
	// 1.23456 / 0 = NaN
}

func ExampleArithmetic() {
	money := Arithmetic[Split4]{Rounding: round.HalfUp}
	def := NaN[Split4]()
	price := money.MustParse("19.99", def)
	qty := money.FromInt64(3, def)
	total := money.Mul(price, qty, def)
	share := money.DivToScale(total, money.FromInt64(7, def), -2, def)
	fmt.Println(total, share, money.SetScale(share, -1, def))
	fmt.Println(Limits[Split4]())

	// Output:
	// 59.97 8.57 8.6
	// {4 -8 7 576460752303423487}
}
