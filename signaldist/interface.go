/*
 * MIT License
 *
 * Copyright (c) 2023 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package signaldist implements the weighted and triangular probability
// distributions the signal log's sensor/location synthesis draws from. The
// exact shapes (weights, low/high/mode triples) are part of the wire contract,
// not an implementation detail — two clients must be statistically
// indistinguishable. This package holds only the samplers; the tables
// themselves live with their callers in the rpc package.
package signaldist

import (
	"math"
	"math/rand/v2"
)

// TriangularFloat samples the standard triangular distribution via the
// closed-form inverse-CDF sampler: given uniform u in [0,1) and c = (mode-low)/
// (high-low), if u>c swap and negate; result = low + (high-low)*sqrt(u*c).
func TriangularFloat(low, high, mode float64) float64 {
	if high <= low {
		return low
	}
	c := (mode - low) / (high - low)
	u := rand.Float64()
	if u > c {
		u = 1 - u
		c = 1 - c
		low, high = high, low
	}
	return low + (high-low)*sqrtNonNeg(u*c)
}

func sqrtNonNeg(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Sqrt(x)
}

// TriangularInt is TriangularFloat rounded down to an integer, used for the
// signal log's backward timestamp offsets.
func TriangularInt(low, high, mode int) int {
	return int(TriangularFloat(float64(low), float64(high), float64(mode)))
}

// WeightedEntry is one (value, weight) pair in a WeightedPick table.
type WeightedEntry[T any] struct {
	Value  T
	Weight int
}

// WeightedPick draws one value from entries with probability proportional to
// its weight.
func WeightedPick[T any](entries []WeightedEntry[T]) T {
	total := 0
	for _, e := range entries {
		total += e.Weight
	}
	r := rand.IntN(total)
	for _, e := range entries {
		if r < e.Weight {
			return e.Value
		}
		r -= e.Weight
	}
	return entries[len(entries)-1].Value
}

// UniformFloat draws a value uniformly in [low, high).
func UniformFloat(low, high float64) float64 {
	return low + rand.Float64()*(high-low)
}
