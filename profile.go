package turbo2d

import (
	"github.com/soypat/turbo2d/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Profile is an ordered sequence of points forming a polyline. The order is
// the traversal order of the boundary. A closed profile's first and last
// points coincide.
type Profile []r2.Vec

// Direction selects the angular sweep of an arc. See must2.Arc.
type Direction int

const (
	// Clockwise sweeps straight from the lower bound angle to the upper
	// bound angle as returned by atan2.
	Clockwise Direction = iota
	// CounterClockwise adds a full turn to the lower bound angle before
	// sweeping to the upper bound angle.
	CounterClockwise
)

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	}
	return "Direction(?)"
}

// Closed reports whether the first and last points coincide within tol.
func (p Profile) Closed(tol float64) bool {
	if len(p) < 2 {
		return false
	}
	return d2.EqualWithin(p[0], p[len(p)-1], tol)
}

// First returns the first point of the profile.
func (p Profile) First() r2.Vec { return p[0] }

// Last returns the last point of the profile.
func (p Profile) Last() r2.Vec { return p[len(p)-1] }

// Bounds returns the bounding box of the profile. It panics on an empty profile.
func (p Profile) Bounds() r2.Box {
	return r2.Box(d2.Set(p).Bounds())
}

// Translate returns a copy of the profile offset by v.
func (p Profile) Translate(v r2.Vec) Profile {
	return Profile(d2.Set(p).Translate(v))
}

// MirrorX returns the profile reflected about the vertical axis in reverse
// traversal order.
func (p Profile) MirrorX() Profile {
	return Profile(d2.Set(p).MirrorX())
}

// Clone returns a copy of p.
func (p Profile) Clone() Profile {
	return append(Profile(nil), p...)
}

// Chain concatenates profile segments. Every concatenation states how the
// shared joint point is treated:
//   - Append keeps all points of both sides.
//   - Join drops the chain's current last point; the segment's first point
//     takes its place.
//
// The zero value is an empty chain ready to use.
type Chain struct {
	pts Profile
}

// NewChain starts a chain with a copy of seed.
func NewChain(seed Profile) *Chain {
	return &Chain{pts: seed.Clone()}
}

// Append adds every point of seg to the end of the chain.
func (c *Chain) Append(seg ...r2.Vec) *Chain {
	c.pts = append(c.pts, seg...)
	return c
}

// Join drops the chain's last point and appends seg. Use it when the
// chain's last point duplicates seg's first point.
func (c *Chain) Join(seg Profile) *Chain {
	if len(c.pts) > 0 {
		c.pts = c.pts[:len(c.pts)-1]
	}
	c.pts = append(c.pts, seg...)
	return c
}

// JoinAt translates seg so its first point lands on the chain's last point,
// drops that last point and appends the translated segment.
func (c *Chain) JoinAt(seg Profile) *Chain {
	if len(c.pts) == 0 {
		return c.Append(seg...)
	}
	return c.Join(seg.Translate(r2.Sub(c.pts.Last(), seg.First())))
}

// Len returns the number of points in the chain.
func (c *Chain) Len() int { return len(c.pts) }

// Last returns the chain's last point.
func (c *Chain) Last() r2.Vec { return c.pts.Last() }

// Profile returns a copy of the accumulated points.
func (c *Chain) Profile() Profile {
	return c.pts.Clone()
}
