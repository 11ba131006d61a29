// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// field is the Galois field GF(929) with 3 as the generator.  It is
// used to check the generated generator table and the error
// correction codewords.
type field struct {
	exp [NumCodewords]uint16
	log [NumCodewords]uint16
}

func newField() *field {
	f := new(field)
	x := 1
	for i := 0; i < NumCodewords-1; i++ {
		f.exp[i] = uint16(x)
		f.log[x] = uint16(i)
		x = x * 3 % NumCodewords
	}
	f.exp[NumCodewords-1] = f.exp[0]
	return f
}

// Exp returns the generator raised to the power e.
func (f *field) Exp(e int) int {
	e %= NumCodewords - 1
	if e < 0 {
		e += NumCodewords - 1
	}
	return int(f.exp[e])
}

// Log returns the discrete logarithm of x, which must be non-zero.
func (f *field) Log(x int) int { return int(f.log[x]) }

// Add returns x+y.
func (f *field) Add(x, y int) int { return (x + y) % NumCodewords }

// Sub returns x-y.
func (f *field) Sub(x, y int) int { return (NumCodewords + x - y) % NumCodewords }

// Mul returns x*y.
func (f *field) Mul(x, y int) int {
	if x == 0 || y == 0 {
		return 0
	}
	return f.Exp(f.Log(x) + f.Log(y))
}

// Generator returns the coefficients of the Reed-Solomon generator
// polynomial with k check words, the product of (x - 3^i) for i from
// 1 to k, lowest degree first.  The last coefficient is 1.
func (f *field) Generator(k int) []int {
	g := make([]int, k+1)
	g[0] = 1
	for i := 1; i <= k; i++ {
		a := f.Exp(i)
		for j := i; j > 0; j-- {
			g[j] = f.Sub(g[j-1], f.Mul(a, g[j]))
		}
		g[0] = f.Sub(0, f.Mul(a, g[0]))
	}
	return g
}
