package ribbon

import "github.com/rileyhilliard/panicribbon/internal/health"

// OpKind identifies a draw operation.
type OpKind int

const (
	// OpFill paints a whole segment in its health color.
	OpFill OpKind = iota
	// OpSeparator paints the one-row divider at the bottom of a segment.
	OpSeparator
)

// String returns a human-readable name for the op kind.
func (k OpKind) String() string {
	switch k {
	case OpFill:
		return "fill"
	case OpSeparator:
		return "separator"
	default:
		return "unknown"
	}
}

// DrawOp paints rows [Start, End) of the ribbon.
type DrawOp struct {
	Kind    OpKind
	Index   int
	Start   int
	End     int
	Healthy bool
}

// Render produces the draw operations for one frame.
//
// Every segment gets one fill. Every segment except the last also gets a
// separator on its final row, painted after the fill. Segments one row tall
// get no separator. A service that was never checked renders exactly like
// one whose last check failed.
func Render(statuses []health.Status, g Geometry) []DrawOp {
	n := g.Count()
	if len(statuses) < n {
		n = len(statuses)
	}

	ops := make([]DrawOp, 0, 2*n)
	for i := 0; i < n; i++ {
		start, end := g.SegmentBounds(i)
		ops = append(ops, DrawOp{
			Kind:    OpFill,
			Index:   i,
			Start:   start,
			End:     end,
			Healthy: statuses[i].Healthy,
		})
		if i < g.Count()-1 && g.SegmentHeight() > 1 {
			ops = append(ops, DrawOp{
				Kind:  OpSeparator,
				Index: i,
				Start: end - 1,
				End:   end,
			})
		}
	}
	return ops
}
