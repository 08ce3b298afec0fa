package util

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestSafeSetLimit(t *testing.T) {
	t.Run("zero limit does not panic", func(t *testing.T) {
		g := &errgroup.Group{}

		assert.NotPanics(t, func() { SafeSetLimit(g, 0) })
		assert.NotPanics(t, func() { SafeSetLimit(g, -3) })
	})

	t.Run("limit bounds running goroutines", func(t *testing.T) {
		g := &errgroup.Group{}
		SafeSetLimit(g, 2)

		var running, peak atomic.Int32

		for i := 0; i < 10; i++ {
			g.Go(func() error {
				n := running.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}

				time.Sleep(time.Millisecond)
				running.Add(-1)

				return nil
			})
		}

		require.NoError(t, g.Wait())
		assert.LessOrEqual(t, peak.Load(), int32(2))
	})

	t.Run("unlimited runs everything", func(t *testing.T) {
		g := &errgroup.Group{}
		SafeSetLimit(g, 0)

		var done atomic.Int32

		for i := 0; i < 20; i++ {
			g.Go(func() error {
				done.Add(1)
				return nil
			})
		}

		require.NoError(t, g.Wait())
		assert.Equal(t, int32(20), done.Load())
	})
}
