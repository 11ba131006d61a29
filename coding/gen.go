// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore

package main

import (
	"bufio"
	"fmt"
	"os"
)

const (
	prime   = 929 // field size
	alpha   = 3   // primitive element
	perLine = 12  // coefficients per line
)

// generator returns the coefficients of the product of (x - alpha^i)
// for i from 1 to k, highest degree first.
func generator(k int) []int {
	g := []int{1}
	a := 1
	for i := 0; i < k; i++ {
		a = a * alpha % prime
		g = append(g, 0)
		for j := len(g) - 1; j > 0; j-- {
			g[j] = (g[j] + prime - a*g[j-1]%prime) % prime
		}
	}
	return g
}

func main() {
	w := bufio.NewWriter(os.Stdout)
	fmt.Fprint(w, `// generated by go run gen.go | gofmt; DO NOT EDIT

package coding

// Reed-Solomon generator polynomial coefficients for each level,
// lowest degree first, leading coefficient omitted.
var generators = [MaxLevel + 1][]uint16{
`)
	for l := 0; l <= 8; l++ {
		g := generator(2 << l)
		fmt.Fprintf(w, "\t%d: {\n", l)
		for i := len(g) - 1; i > 0; i-- {
			if (len(g)-1-i)%perLine == 0 {
				fmt.Fprint(w, "\t\t")
			}
			fmt.Fprintf(w, "%d,", g[i])
			if (len(g)-i)%perLine == 0 || i == 1 {
				fmt.Fprintln(w)
			} else {
				fmt.Fprint(w, " ")
			}
		}
		fmt.Fprintln(w, "\t},")
	}
	fmt.Fprintln(w, "}")
	w.Flush()
}
