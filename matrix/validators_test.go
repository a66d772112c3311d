package matrix_test

import (
	"testing"

	"github.com/katalvlaran/densegraph/matrix"
	"github.com/stretchr/testify/assert"
)

func TestValidators(t *testing.T) {
	a := mustRows(t, [][]int{{1, 2}, {3, 4}})
	b := mustRows(t, [][]int{{1}})

	assert.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	assert.NoError(t, matrix.ValidateNotNil(a))

	assert.ErrorIs(t, matrix.ValidateSameShape(a, b), matrix.ErrDimensionMismatch)
	assert.NoError(t, matrix.ValidateSameShape(a, a.Clone()))

	// NotNil is checked before shape
	assert.ErrorIs(t, matrix.ValidateBinarySameShape(nil, b), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.ValidateBinarySameShape(a, b), matrix.ErrDimensionMismatch)

	assert.ErrorIs(t, matrix.ValidateRows(nil), matrix.ErrEmpty)
}
