package shapes

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestIdentityMapper(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	for _, x := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.99} {
		diff(t, x, IdentityMapper.Map(x), approx)
		diff(t, x, IdentityMapper.MapBack(x), approx)
	}
}

func TestDoubleMapperWrapAround(t *testing.T) {
	m := NewDoubleMapper(
		MappedProgress{0.4, 0.2},
		MappedProgress{0.5, 0.22},
		MappedProgress{0.0, 0.8},
	)
	approx := cmpopts.EquateApprox(0, distanceEpsilon)
	diff(t, 0.8, m.Map(0.0), approx)
	diff(t, 0.0, m.MapBack(0.8), approx)
	diff(t, 0.2, m.Map(0.4), approx)
	diff(t, 0.22, m.Map(0.5), approx)
	// Halfway through the wrapped segment from 0.5 to 0.0, which spans
	// target 0.22 to 0.8.
	diff(t, 0.51, m.Map(0.75), approx)
}

func TestDoubleMapperInverse(t *testing.T) {
	mappers := []DoubleMapper{
		IdentityMapper,
		NewDoubleMapper(MappedProgress{0, 0.3}, MappedProgress{0.2, 0.4}, MappedProgress{0.5, 0.7}, MappedProgress{0.8, 0.9}),
		NewDoubleMapper(MappedProgress{0.1, 0.9}, MappedProgress{0.4, 0.1}, MappedProgress{0.7, 0.4}),
	}
	approx := cmpopts.EquateApprox(0, distanceEpsilon)
	for i, m := range mappers {
		for j := range 100 {
			x := float64(j) / 100
			diff(t, x, m.MapBack(m.Map(x)), approx)
			if t.Failed() {
				t.Fatalf("mapper %d failed at x=%v", i, x)
			}
		}
	}
}

func TestDoubleMapperValidation(t *testing.T) {
	// Progress outside [0, 1).
	assertPanicsInvalidArg(t, func() {
		NewDoubleMapper(MappedProgress{0, 0}, MappedProgress{1, 0.5})
	})
	assertPanicsInvalidArg(t, func() {
		NewDoubleMapper(MappedProgress{-0.1, 0}, MappedProgress{0.5, 0.5})
	})
	// Progresses too close together.
	assertPanicsInvalidArg(t, func() {
		NewDoubleMapper(MappedProgress{0.2, 0}, MappedProgress{0.2 + 1e-7, 0.5})
	})
	// Wrap-aware closeness: 0.999999 is next to 0.
	assertPanicsInvalidArg(t, func() {
		NewDoubleMapper(MappedProgress{0, 0}, MappedProgress{0.999999, 0.5})
	})
	// The sequence wraps more than once.
	assertPanicsInvalidArg(t, func() {
		NewDoubleMapper(
			MappedProgress{0, 0},
			MappedProgress{0.5, 0.1},
			MappedProgress{0.1, 0.2},
			MappedProgress{0.6, 0.3},
		)
	})
	// Fewer than two mappings.
	assertPanicsInvalidArg(t, func() { NewDoubleMapper(MappedProgress{0, 0}) })
	assertPanicsInvalidArg(t, func() { NewDoubleMapper() })
}

func TestLinearMapValidation(t *testing.T) {
	assertPanicsInvalidArg(t, func() { IdentityMapper.Map(-0.5) })
	assertPanicsInvalidArg(t, func() { IdentityMapper.Map(1.5) })
}
