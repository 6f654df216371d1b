package ranges_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-lazy-ranges/ranges"
)

func TestMinCategory(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b, want ranges.Category
	}{
		{ranges.SinglePass, ranges.SinglePass, ranges.SinglePass},
		{ranges.SinglePass, ranges.RandomAccess, ranges.SinglePass},
		{ranges.RandomAccess, ranges.SinglePass, ranges.SinglePass},
		{ranges.MultiPass, ranges.Bidirectional, ranges.MultiPass},
		{ranges.RandomAccess, ranges.Bidirectional, ranges.Bidirectional},
		{ranges.Bidirectional, ranges.RandomAccess, ranges.Bidirectional},
		{ranges.RandomAccess, ranges.RandomAccess, ranges.RandomAccess},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ranges.MinCategory(tc.a, tc.b), "min(%s, %s)", tc.a, tc.b)
	}
}

func TestCategoryAtLeast(t *testing.T) {
	t.Parallel()

	assert.True(t, ranges.RandomAccess.AtLeast(ranges.Bidirectional))
	assert.True(t, ranges.Bidirectional.AtLeast(ranges.Bidirectional))
	assert.True(t, ranges.MultiPass.AtLeast(ranges.SinglePass))
	assert.False(t, ranges.MultiPass.AtLeast(ranges.Bidirectional))
	assert.False(t, ranges.SinglePass.AtLeast(ranges.MultiPass))
}

func TestCategoryString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "single-pass", ranges.SinglePass.String())
	assert.Equal(t, "multi-pass", ranges.MultiPass.String())
	assert.Equal(t, "bidirectional", ranges.Bidirectional.String())
	assert.Equal(t, "random-access", ranges.RandomAccess.String())
	assert.Equal(t, "Category(9)", ranges.Category(9).String())
}

func TestCategoryUnknownPanics(t *testing.T) {
	t.Parallel()

	err := recoverErr(func() { ranges.MinCategory(ranges.Category(9), ranges.SinglePass) })
	require.ErrorIs(t, err, ranges.ErrNotRanked)
}

func TestOrderingMin(t *testing.T) {
	t.Parallel()

	order := ranges.NewOrdering("char", "int", "double")
	assert.Equal(t, "char", order.Min("char", "char"))
	assert.Equal(t, "char", order.Min("char", "int"))
	assert.Equal(t, "char", order.Min("int", "char"))
	assert.Equal(t, "int", order.Min("double", "int"))
	assert.Equal(t, "double", order.Max("double", "int"))
	assert.True(t, order.Less("int", "double"))
	assert.False(t, order.Less("double", "double"))
}

func TestOrderingDuplicateKeepsFirstRank(t *testing.T) {
	t.Parallel()

	order := ranges.NewOrdering(3, 1, 3, 2)
	assert.Equal(t, 0, order.Rank(3))
	assert.Equal(t, 3, order.Min(3, 2))
}

func TestOrderingUnknownValue(t *testing.T) {
	t.Parallel()

	order := ranges.NewOrdering('a', 'b')
	assert.True(t, order.Contains('a'))
	assert.False(t, order.Contains('z'))

	err := recoverErr(func() { order.Min('a', 'z') })
	require.ErrorIs(t, err, ranges.ErrNotRanked)
}
