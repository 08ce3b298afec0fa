package util

import "golang.org/x/sync/errgroup"

// SafeSetLimit sets the limit on g. errgroup panics on a zero limit, so any
// non-positive limit is treated as no limit at all.
func SafeSetLimit(g *errgroup.Group, limit int) {
	if limit <= 0 {
		g.SetLimit(-1)
		return
	}

	g.SetLimit(limit)
}
