// SPDX-License-Identifier: MIT
package bloch_test

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/blochsphere/bloch"
)

// sinks to defeat dead-code elimination
var (
	sinkA bloch.Angles
	sinkP r3.Vec
)

func BenchmarkPointToAngles(b *testing.B) {
	p := r3.Vec{X: 0.3, Y: -0.4, Z: 0.2}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		a, err := bloch.PointToAngles(p)
		if err != nil {
			b.Fatal(err)
		}
		sinkA = a
	}
}

func BenchmarkRotatePoint(b *testing.B) {
	p := bloch.AnglesToPoint(1.1, 2.2)
	axis := r3.Vec{X: 1, Y: 1, Z: 1}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		q, err := bloch.RotatePoint(p, axis, 0.7)
		if err != nil {
			b.Fatal(err)
		}
		sinkP = q
	}
}
