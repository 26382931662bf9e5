package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOperation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Operation
	}{
		{"add", "add", OpAdd},
		{"subtract", "subtract", OpSubtract},
		{"multiply", "multiply", OpMultiply},
		{"divide", "divide", OpDivide},
		{"mixed_case", "Add", OpAdd},
		{"upper_case", "DIVIDE", OpDivide},
		{"surrounding_space", "  multiply ", OpMultiply},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOperation(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOperation_Unknown(t *testing.T) {
	for _, input := range []string{"", "modulo", "plus", "a dd"} {
		_, err := ParseOperation(input)
		require.Error(t, err, "label %q should be rejected", input)
		assert.True(t, IsUnsupportedOperation(err))
	}
}

func TestOperations_FixedSet(t *testing.T) {
	assert.Equal(t, []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide}, Operations())
}
