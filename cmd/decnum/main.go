// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Command decnum is a calculator for arbitrary-precision integers and decimals.
package main

import "github.com/avdva/decnum/internal/cli"

func main() {
	cli.Execute()
}
