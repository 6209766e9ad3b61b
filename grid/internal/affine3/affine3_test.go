package affine3_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/puzzlecore/grid/internal/affine3"
)

func TestPower_ZeroIsIdentity(t *testing.T) {
	tr := affine3.Translation(3, -2, 1)
	id := affine3.Power(tr, 0)
	assert.Equal(t, affine3.Identity(), id)
}

func TestPower_NegativeIsInverse(t *testing.T) {
	tr := affine3.Translation(3, -2, 1)
	fwd := affine3.Power(tr, 2)
	back := affine3.Power(tr, -2)
	composed := affine3.Compose(back, fwd)
	assert.Equal(t, affine3.Identity(), composed)
}

func TestApply_TranslationIsShift(t *testing.T) {
	tr := affine3.Translation(1, 2, 3)
	out := tr.Apply([3]int{10, 10, 10})
	assert.Equal(t, [3]int{11, 12, 13}, out)
}
