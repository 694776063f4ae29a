package booleans

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToNumber(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, ToInt(true))
	assert.Equal(t, 0, ToInt(false))
	assert.Equal(t, int8(1), ToInt8(true))
	assert.Equal(t, int16(0), ToInt16(false))
	assert.Equal(t, int32(1), ToInt32(true))
	assert.Equal(t, int64(1), ToInt64(true))
	assert.Equal(t, uint(1), ToUint(true))
	assert.Equal(t, byte(0), ToByte(false))
	assert.InDelta(t, float32(1), ToFloat32(true), 0)
	assert.InDelta(t, 0.0, ToFloat64(false), 0)
	assert.Equal(t, time.Nanosecond, ToDuration(true))
	assert.Equal(t, time.Duration(0), ToDuration(false))
}

func TestToNumberOr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    *bool
		def      int
		expected int
	}{
		{name: "true", input: Of(true), def: 5, expected: 1},
		{name: "false", input: Of(false), def: 5, expected: 0},
		{name: "nil uses default", input: nil, def: 5, expected: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, ToIntOr(tt.input, tt.def))
			assert.Equal(t, int64(tt.expected), ToInt64Or(tt.input, int64(tt.def)))
			assert.InDelta(t, float64(tt.expected), ToFloat64Or(tt.input, float64(tt.def)), 0)
		})
	}
}

func TestToNumberObject(t *testing.T) {
	t.Parallel()

	assert.Nil(t, ToIntObject(nil))
	assert.Nil(t, ToByteObject(nil))
	assert.Equal(t, 1, *ToIntObject(Of(true)))
	assert.Equal(t, int64(0), *ToInt64Object(Of(false)))
	assert.InDelta(t, 1.0, *ToFloat64Object(Of(true)), 0)
}

func TestToIntMapped(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10, ToIntMapped(Of(true), 10, 20, 30))
	assert.Equal(t, 20, ToIntMapped(Of(false), 10, 20, 30))
	assert.Equal(t, 30, ToIntMapped(nil, 10, 20, 30))
	assert.Equal(t, uint16(7), ToNumberMapped[uint16](nil, 1, 0, 7))
}
