// Package par provides driver-side parallel collection helpers for batch jobs:
// bounded fan-out over slices with order-preserving results, plus small
// grouping and partitioning utilities.
//
// All helpers run on the calling driver. They bound concurrency with an
// errgroup limit and cancel outstanding work as soon as one element fails.
package par

import (
	"context"
	"hash/fnv"
	"runtime"

	errs "github.com/osmike/batchkit/internal/error"

	"golang.org/x/sync/errgroup"
)

// Map applies fn to every element of in using up to workers goroutines and
// returns the results in input order.
//
// The first error cancels the shared context; remaining calls may observe the
// cancellation through ctx.
//
// Parameters:
//   - ctx: Parent context; cancellation aborts outstanding work.
//   - in: Input slice.
//   - workers: Maximum concurrent calls. Defaults to GOMAXPROCS if <= 0.
//   - fn: Transformation applied to each element.
//
// Returns:
//   - The transformed slice, index-aligned with in.
//   - The first error returned by fn, or nil.
func Map[T, R any](ctx context.Context, in []T, workers int, fn func(context.Context, T) (R, error)) ([]R, error) {
	if fn == nil {
		return nil, errs.New(errs.ErrNoFunction, "par.Map")
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultWorkers(workers))

	out := make([]R, len(in))
	for i, v := range in {
		i, v := i, v
		g.Go(func() error {
			r, err := fn(ctx, v)
			if err != nil {
				return err
			}
			out[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ForEach applies fn to every element of in using up to workers goroutines.
// The first error cancels the shared context and is returned.
func ForEach[T any](ctx context.Context, in []T, workers int, fn func(context.Context, T) error) error {
	if fn == nil {
		return errs.New(errs.ErrNoFunction, "par.ForEach")
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultWorkers(workers))

	for _, v := range in {
		v := v
		g.Go(func() error {
			return fn(ctx, v)
		})
	}

	return g.Wait()
}

// Filter evaluates pred against every element of in using up to workers
// goroutines and returns the elements for which pred holds, preserving input
// order.
func Filter[T any](ctx context.Context, in []T, workers int, pred func(context.Context, T) (bool, error)) ([]T, error) {
	if pred == nil {
		return nil, errs.New(errs.ErrNoFunction, "par.Filter")
	}

	keep, err := Map(ctx, in, workers, pred)
	if err != nil {
		return nil, err
	}

	var out []T
	for i, v := range in {
		if keep[i] {
			out = append(out, v)
		}
	}
	return out, nil
}

// GroupBy collects the elements of in into a map keyed by keyFn, preserving
// input order within each group. It runs sequentially: grouping is memory
// bound, not CPU bound.
func GroupBy[T any, K comparable](in []T, keyFn func(T) K) map[K][]T {
	out := make(map[K][]T)
	for _, v := range in {
		k := keyFn(v)
		out[k] = append(out[k], v)
	}
	return out
}

// Chunks splits in into consecutive batches of at most size elements. The
// returned slices share backing storage with in. A size <= 0 yields a single
// chunk containing the whole input.
func Chunks[T any](in []T, size int) [][]T {
	if len(in) == 0 {
		return nil
	}
	if size <= 0 {
		return [][]T{in}
	}

	out := make([][]T, 0, (len(in)+size-1)/size)
	for start := 0; start < len(in); start += size {
		end := start + size
		if end > len(in) {
			end = len(in)
		}
		out = append(out, in[start:end])
	}
	return out
}

// Partition maps a string key onto one of n partitions using FNV-1a hashing.
// The assignment is stable across runs. A non-positive n always yields 0.
func Partition(key string, n int) int {
	if n <= 0 {
		return 0
	}
	h := fnv.New32a()
	h.Write([]byte(key))
	return int(h.Sum32() % uint32(n))
}

func defaultWorkers(workers int) int {
	if workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return workers
}
