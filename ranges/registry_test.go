package ranges_test

import (
	"fmt"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-lazy-ranges/collections"
	"github.com/hasbyte1/go-lazy-ranges/ranges"
)

// Registry tests share package-level state and therefore do not run in
// parallel.

func TestRegisterAndPipeNamed(t *testing.T) {
	ranges.FlushStages()
	t.Cleanup(ranges.FlushStages)

	ranges.RegisterStage("evens", ranges.Filter(ranges.FuncOf(isEven)))
	require.True(t, ranges.HasStage("evens"))
	assert.False(t, ranges.HasStage("odds"))

	out, err := ranges.PipeNamed[int, int](oneToSix(), "evens")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 6}, out.Collect())

	s, err := ranges.LookupStage[int, int]("evens")
	require.NoError(t, err)
	assert.Equal(t, "evens", s.Name())
	assert.Equal(t, ranges.KindFilter, s.Kind())
}

func TestRegisterStageReplaces(t *testing.T) {
	ranges.FlushStages()
	t.Cleanup(ranges.FlushStages)

	ranges.RegisterStage("f", ranges.Transform(ranges.FuncOf(square)))
	ranges.RegisterStage("f", ranges.Transform(ranges.FuncOf(plusOne)))

	out, err := ranges.PipeNamed[int, int](ints(1, 2), "f")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, out.Collect())
}

func TestLookupStageErrors(t *testing.T) {
	ranges.FlushStages()
	t.Cleanup(ranges.FlushStages)

	_, err := ranges.LookupStage[int, int]("missing")
	require.ErrorIs(t, err, ranges.ErrStageNotFound)
	assert.Contains(t, err.Error(), `"missing"`)

	ranges.RegisterStage("itoa", ranges.Transform(ranges.FuncOf(strconv.Itoa)))

	_, err = ranges.LookupStage[int, int]("itoa")
	require.ErrorIs(t, err, ranges.ErrStageType)

	_, err = ranges.PipeNamed[string, int](collections.New("a"), "itoa")
	require.ErrorIs(t, err, ranges.ErrStageType)

	out, err := ranges.PipeNamed[int, string](ints(7, 8), "itoa")
	require.NoError(t, err)
	assert.Equal(t, []string{"7", "8"}, out.Collect())
}

func TestFlushStages(t *testing.T) {
	ranges.FlushStages()
	t.Cleanup(ranges.FlushStages)

	ranges.RegisterStage("a", ranges.Transform(ranges.FuncOf(square)))
	ranges.FlushStages()
	assert.False(t, ranges.HasStage("a"))
}

func TestRegistryConcurrentAccess(t *testing.T) {
	ranges.FlushStages()
	t.Cleanup(ranges.FlushStages)

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := fmt.Sprintf("stage-%d", i%4)
			ranges.RegisterStage(name, ranges.Transform(ranges.FuncOf(plusOne)))
			_ = ranges.HasStage(name)
			_, _ = ranges.LookupStage[int, int](name)
		}()
	}
	wg.Wait()

	for i := range 4 {
		assert.True(t, ranges.HasStage(fmt.Sprintf("stage-%d", i)))
	}
}
