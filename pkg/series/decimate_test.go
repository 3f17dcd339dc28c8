package series

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rampSeries(n int) Series {
	s := Series{Name: "ramp", X: make([]float64, n), Y: make([]float64, n)}
	for i := 0; i < n; i++ {
		s.X[i] = float64(i)
		s.Y[i] = float64(i) * 0.01
	}
	return s
}

func TestDecimate_NoDecimation(t *testing.T) {
	src := Series{Name: "a", X: []float64{0, 1, 2}, Y: []float64{1.0, 1.1, 1.2}}

	// Test with empty dst
	result := Decimate(Series{}, src, 10)
	require.Equal(t, 3, result.Len())
	assert.Equal(t, src, result)

	// Test with sufficient capacity dst
	dst := Series{X: make([]float64, 0, 10), Y: make([]float64, 0, 10)}
	result = Decimate(dst, src, 10)
	assert.Equal(t, src.X, result.X)
	assert.Equal(t, src.Y, result.Y)
	// Should reuse dst
	assert.Equal(t, cap(dst.X), cap(result.X))
	assert.Equal(t, cap(dst.Y), cap(result.Y))
}

func TestDecimate_WithDecimation(t *testing.T) {
	src := rampSeries(100)

	dst := Series{X: make([]float64, 0, 20), Y: make([]float64, 0, 20)}
	result := Decimate(dst, src, 10)
	require.Equal(t, 10, result.Len())

	// Should always include first and last sample
	assert.Equal(t, 0.0, result.X[0])
	assert.Equal(t, 99.0, result.X[9])
	assert.Equal(t, src.Y[99], result.Y[9])
	assert.Equal(t, 10.0, result.X[1])

	// Should reuse dst if capacity sufficient
	assert.Equal(t, 20, cap(result.X))
}

func TestDecimate_DestinationReuse(t *testing.T) {
	first := Decimate(Series{X: make([]float64, 0, 10), Y: make([]float64, 0, 10)}, rampSeries(2), 10)
	require.Equal(t, 2, first.Len())

	// Second call - should reuse dst
	second := Decimate(first, rampSeries(3), 10)
	require.Equal(t, 3, second.Len())
	assert.Equal(t, cap(first.X), cap(second.X))
	assert.Equal(t, "ramp", second.Name)
}

func TestDecimate_EmptyInput(t *testing.T) {
	result := Decimate(Series{}, Series{}, 10)
	assert.Equal(t, 0, result.Len())
}

func TestDecimate_ExactMaxPoints(t *testing.T) {
	src := rampSeries(10)
	result := Decimate(Series{}, src, 10)
	assert.Equal(t, src, result)
}

func TestDecimate_Disabled(t *testing.T) {
	src := rampSeries(50)
	result := Decimate(Series{}, src, 0)
	assert.Equal(t, src, result)
}
