package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/webbmaffian/go-collections/hashmap"
	"github.com/webbmaffian/go-collections/list"
	"github.com/webbmaffian/go-collections/minheap"
)

// Context is checked every this many operations.
const checkEvery = 1024

func benchMap(ctx context.Context) error {
	m, err := hashmap.New[int64, int64](cfg.MapBuckets, cfg.MapThreshold)
	if err != nil {
		return err
	}

	m.SetLogger(log.Logger)

	var (
		rnd      = rand.New(rand.NewSource(cfg.Seed))
		keySpace = int64(cfg.Operations/2 + 1)
		p        = newProgress(3)
		start    = time.Now()

		puts, replaced, gets, hits, removes, resizes int
	)

	defer p.stop()

	render := func() {
		p.render(
			fmt.Sprintf("Puts: %d (replaced %d), gets: %d (hits %d), removes: %d", puts, replaced, gets, hits, removes),
			fmt.Sprintf("Size: %d", m.Size()),
			fmt.Sprintf("Buckets: %d, load factor: %.3f, resizes: %d", m.Buckets(), m.LoadFactor(), resizes),
		)
	}

	for i := 0; i < cfg.Operations; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		key := rnd.Int63n(keySpace)

		switch op := rnd.Intn(10); {
		case op < 5:
			buckets := m.Buckets()
			_, ok, err := m.Put(key, int64(i))
			if err != nil {
				return err
			}
			if ok {
				replaced++
			}
			if m.Buckets() != buckets {
				resizes++
			}
			puts++

		case op < 8:
			_, ok, err := m.Lookup(key)
			if err != nil {
				return err
			}
			if ok {
				hits++
			}
			gets++

		default:
			if _, _, err := m.Remove(key); err != nil {
				return err
			}
			removes++
		}

		if p.due() {
			render()
		}
	}

	render()

	if err := m.Verify(); err != nil {
		return errors.Wrap(err, "map failed verification")
	}

	log.Info().
		Int("operations", cfg.Operations).
		Dur("duration", time.Since(start)).
		Int("size", m.Size()).
		Int("buckets", m.Buckets()).
		Int("resizes", resizes).
		Float64("load_factor", m.LoadFactor()).
		Msg("map workload verified")

	return nil
}

func benchList(ctx context.Context) error {
	var (
		rnd     = rand.New(rand.NewSource(cfg.Seed))
		l       = list.New[int]()
		pending = list.New[int]()
		cursor  = l.Sentinel()
		p       = newProgress(2)
		start   = time.Now()

		expected, inserts, removes, splices, stale int
	)

	defer p.stop()

	render := func() {
		p.render(
			fmt.Sprintf("Inserts: %d, removes: %d, splices: %d, stale cursors: %d", inserts, removes, splices, stale),
			fmt.Sprintf("Length: %d, pending: %d", l.Len(), pending.Len()),
		)
	}

	for i := 0; i < cfg.Operations; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		switch op := rnd.Intn(10); {
		case op < 2:
			cursor = l.AddFirst(i)
			expected++
			inserts++

		case op < 4:
			cursor = l.AddLast(i)
			expected++
			inserts++

		case op < 6:
			n, err := l.AddAfter(cursor, i)
			if errors.Is(err, list.ErrInvalidArgument) {
				// the cursor was removed
				cursor = l.First()
				stale++
				continue
			} else if err != nil {
				return err
			}
			cursor = n
			expected++
			inserts++

		case op < 8:
			pending.AddLast(i)

		case op < 9:
			var err error
			if rnd.Intn(2) == 0 {
				_, err = l.RemoveFirst()
			} else {
				_, err = l.RemoveLast()
			}
			if errors.Is(err, list.ErrEmptyCollection) {
				continue
			} else if err != nil {
				return err
			}
			expected--
			removes++

		default:
			n := pending.Len()
			if err := l.SpliceAfter(cursor, pending); errors.Is(err, list.ErrInvalidArgument) {
				cursor = l.First()
				stale++
				continue
			} else if err != nil {
				return err
			}
			expected += n
			splices++
		}

		if p.due() {
			render()
		}
	}

	render()

	if err := l.Verify(); err != nil {
		return errors.Wrap(err, "list failed verification")
	}

	if l.Len() != expected {
		return errors.Errorf("list holds %d values, expected %d", l.Len(), expected)
	}

	log.Info().
		Int("operations", cfg.Operations).
		Dur("duration", time.Since(start)).
		Int("length", l.Len()).
		Int("splices", splices).
		Int("stale_cursors", stale).
		Msg("list workload verified")

	return nil
}

func benchHeap(ctx context.Context) error {
	var (
		rnd   = rand.New(rand.NewSource(cfg.Seed))
		h     = minheap.New[int]()
		p     = newProgress(2)
		start = time.Now()

		added, drained int
	)

	defer p.stop()

	render := func() {
		p.render(
			fmt.Sprintf("Added: %d, drained: %d", added, drained),
			fmt.Sprintf("Length: %d", h.Len()),
		)
	}

	for i := 0; i < cfg.Operations; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		if err := h.Add(rnd.Int()); err != nil {
			return err
		}
		added++

		if p.due() {
			render()
		}
	}

	if err := h.Verify(); err != nil {
		return errors.Wrap(err, "heap failed verification")
	}

	prev := 0
	for !h.IsEmpty() {
		if drained%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		min, err := h.RemoveMin()
		if err != nil {
			return err
		}

		if drained > 0 && min < prev {
			return errors.Errorf("heap yielded %d after %d", min, prev)
		}

		prev = min
		drained++

		if p.due() {
			render()
		}
	}

	render()

	log.Info().
		Int("operations", cfg.Operations).
		Dur("duration", time.Since(start)).
		Int("drained", drained).
		Msg("heap workload verified in sorted order")

	return nil
}
