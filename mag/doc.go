// Copyright 2020 Aleksandr Demakin. All rights reserved.

/*
Package mag implements arbitrary-precision signed integers (magnitudes)
stored as a sign and a normalized little-endian slice of 32-bit words.

There are two kinds of API. The in-place one follows the z.Op(x, y) convention:
the receiver is the caller-owned output buffer, it is reused when its capacity
is sufficient, and the method returns it:

	var z mag.Int
	z.Add(x, y) // len(z.Words()) <= max(len(x.Words()), len(y.Words()))+1
	z.Mul(x, y) // len(z.Words()) <= len(x.Words())+len(y.Words())

The allocating one consists of package-level functions (Add, Sub, Mul, DivRem, Sqrt ...),
each of them allocates exactly one result.

Division by zero and the square root of a negative number are programming errors and panic.
*/
package mag
