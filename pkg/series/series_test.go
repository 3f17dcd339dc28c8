package series

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, Series{X: []float64{1, 2}, Y: []float64{3, 4}}.Validate())

	err := Series{Name: "bad", X: []float64{1, 2}, Y: []float64{3}}.Validate()
	assert.ErrorIs(t, err, ErrLengthMismatch)
	assert.Contains(t, err.Error(), `"bad"`)
}

func TestBounds(t *testing.T) {
	a := Series{X: []float64{0, 1, 2}, Y: []float64{5, -1, 3}}
	b := Series{X: []float64{-4, 10, math.NaN()}, Y: []float64{0, math.Inf(1), 100}}

	x, y, ok := Bounds(a, b)
	require.True(t, ok)
	assert.Equal(t, Range{Min: -4, Max: 2}, x)
	assert.Equal(t, Range{Min: -1, Max: 5}, y)
}

func TestBounds_NoFiniteSamples(t *testing.T) {
	_, _, ok := Bounds(Series{X: []float64{math.NaN()}, Y: []float64{1}})
	assert.False(t, ok)

	_, _, ok = Bounds()
	assert.False(t, ok)
}

func TestRange_Pad(t *testing.T) {
	tests := []struct {
		name     string
		in       Range
		fraction float64
		want     Range
	}{
		{"ten percent", Range{Min: 0, Max: 10}, 0.1, Range{Min: -1, Max: 11}},
		{"no margin", Range{Min: 2, Max: 4}, 0, Range{Min: 2, Max: 4}},
		{"flat data", Range{Min: 3, Max: 3}, 0.1, Range{Min: 2.4, Max: 3.6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Pad(tt.fraction)
			assert.InDelta(t, tt.want.Min, got.Min, 1e-12)
			assert.InDelta(t, tt.want.Max, got.Max, 1e-12)
		})
	}
}

func TestReadCSV(t *testing.T) {
	input := `# generated
x, volts, amps
0, 1.5, 0.1
1, 1.5,
2, 1.75, 0.3
`
	series, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, series, 2)

	assert.Equal(t, "volts", series[0].Name)
	assert.Equal(t, []float64{0, 1, 2}, series[0].X)
	assert.Equal(t, []float64{1.5, 1.5, 1.75}, series[0].Y)

	assert.Equal(t, "amps", series[1].Name)
	assert.Equal(t, []float64{0, 2}, series[1].X)
	assert.Equal(t, []float64{0.1, 0.3}, series[1].Y)
}

func TestReadCSV_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty", "", "header"},
		{"no series", "x\n1\n", "no series"},
		{"bad x", "x,a\n0,1\nzero,2\n", "line 3, column x"},
		{"bad y", "x,a\n0,1\n1,one\n", `line 3, column "a"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf,
		Series{Name: "a", X: []float64{0, 20}, Y: []float64{-5, 0.25}},
		Series{Name: "b", X: []float64{1}, Y: []float64{2}},
	)
	require.NoError(t, err)
	assert.Equal(t, "series,x,y\na,0,-5\na,20,0.25\nb,1,2\n", buf.String())
}
