package ribbon

// Geometry splits a vertical extent into equal segments, one per service.
//
// Segment height is floor(total / count). Rows past count*height belong to
// no segment, and a terminal shorter than the service count has no segments
// at all.
type Geometry struct {
	total  int
	count  int
	height int
}

// NewGeometry computes the layout for count services over total rows.
func NewGeometry(total, count int) Geometry {
	g := Geometry{total: total, count: count}
	if total > 0 && count > 0 {
		g.height = total / count
	}
	return g
}

// Total returns the vertical extent the geometry was built for.
func (g Geometry) Total() int {
	return g.total
}

// Count returns the number of segments.
func (g Geometry) Count() int {
	return g.count
}

// SegmentHeight returns the height of every segment.
func (g Geometry) SegmentHeight() int {
	return g.height
}

// Covered returns the number of rows that belong to some segment.
func (g Geometry) Covered() int {
	return g.count * g.height
}

// SegmentBounds returns the half-open row range [start, end) of segment i.
func (g Geometry) SegmentBounds(i int) (start, end int) {
	return i * g.height, (i + 1) * g.height
}

// IndexForCoordinate returns the segment that contains row y.
func (g Geometry) IndexForCoordinate(y int) (int, bool) {
	if g.height == 0 || y < 0 || y >= g.Covered() {
		return 0, false
	}
	return y / g.height, true
}
