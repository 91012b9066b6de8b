package par

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"testing"

	errs "github.com/osmike/batchkit/internal/error"

	"github.com/stretchr/testify/assert"
)

func TestMap_PreservesOrder(t *testing.T) {
	in := []int{5, 4, 3, 2, 1}

	out, err := Map(context.Background(), in, 3, func(_ context.Context, v int) (string, error) {
		return strconv.Itoa(v * 10), nil
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"50", "40", "30", "20", "10"}, out)
}

func TestMap_EmptyInput(t *testing.T) {
	out, err := Map(context.Background(), nil, 3, func(_ context.Context, v int) (int, error) {
		return v, nil
	})

	assert.NoError(t, err)
	assert.Empty(t, out)
}

func TestMap_NilFunction(t *testing.T) {
	_, err := Map[int, int](context.Background(), []int{1}, 1, nil)
	assert.ErrorIs(t, err, errs.ErrNoFunction)
}

func TestMap_FirstErrorWins(t *testing.T) {
	boom := errors.New("boom")
	in := make([]int, 100)

	_, err := Map(context.Background(), in, 4, func(_ context.Context, v int) (int, error) {
		return 0, boom
	})

	assert.ErrorIs(t, err, boom)
}

func TestMap_BoundsConcurrency(t *testing.T) {
	var active, peak atomic.Int32
	in := make([]int, 50)

	_, err := Map(context.Background(), in, 2, func(_ context.Context, v int) (int, error) {
		n := active.Add(1)
		defer active.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		return v, nil
	})

	assert.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestForEach_VisitsAll(t *testing.T) {
	var sum atomic.Int64
	in := []int{1, 2, 3, 4, 5}

	err := ForEach(context.Background(), in, 0, func(_ context.Context, v int) error {
		sum.Add(int64(v))
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(15), sum.Load())
}

func TestForEach_PropagatesError(t *testing.T) {
	boom := errors.New("boom")

	err := ForEach(context.Background(), []int{1, 2, 3}, 1, func(_ context.Context, v int) error {
		if v == 2 {
			return boom
		}
		return nil
	})

	assert.ErrorIs(t, err, boom)
}

func TestFilter_PreservesOrder(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6}

	out, err := Filter(context.Background(), in, 3, func(_ context.Context, v int) (bool, error) {
		return v%2 == 0, nil
	})

	assert.NoError(t, err)
	assert.Equal(t, []int{2, 4, 6}, out)
}

func TestGroupBy(t *testing.T) {
	in := []string{"apple", "avocado", "banana", "cherry", "blueberry"}

	groups := GroupBy(in, func(s string) string {
		return s[:1]
	})

	assert.Equal(t, []string{"apple", "avocado"}, groups["a"])
	assert.Equal(t, []string{"banana", "blueberry"}, groups["b"])
	assert.Equal(t, []string{"cherry"}, groups["c"])
}

func TestChunks(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7}

	chunks := Chunks(in, 3)
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7}}, chunks)
}

func TestChunks_EdgeCases(t *testing.T) {
	assert.Nil(t, Chunks[int](nil, 3))
	assert.Equal(t, [][]int{{1, 2}}, Chunks([]int{1, 2}, 0))
	assert.Equal(t, [][]int{{1}, {2}}, Chunks([]int{1, 2}, 1))
}

func TestPartition_StableAndBounded(t *testing.T) {
	keys := []string{"alpha", "beta", "gamma", "delta", ""}

	for _, k := range keys {
		p := Partition(k, 8)
		assert.GreaterOrEqual(t, p, 0)
		assert.Less(t, p, 8)
		assert.Equal(t, p, Partition(k, 8), "partition must be stable for key %q", k)
	}

	assert.Equal(t, 0, Partition("anything", 0))
	assert.Equal(t, 0, Partition("anything", -1))
}

func TestPartition_SpreadsKeys(t *testing.T) {
	seen := map[int]bool{}
	for i := 0; i < 100; i++ {
		seen[Partition("key-"+strconv.Itoa(i), 4)] = true
	}
	assert.Equal(t, 4, len(seen))
}
