package numgeom

// Rect is an axis-aligned rectangle spanning [X0, X1] × [Y0, Y1].
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// BoundingBox returns the smallest rectangle enclosing the finite points in
// pts. It returns false if there are none.
func BoundingBox(pts []Point) (Rect, bool) {
	var r Rect
	found := false
	for _, p := range pts {
		if !p.IsFinite() {
			continue
		}
		if !found {
			r = Rect{p.X, p.Y, p.X, p.Y}
			found = true
			continue
		}
		r = r.UnionPoint(p)
	}
	return r, found
}

// UnionPoint returns the smallest rectangle enclosing r and pt. Starting from
// the zero-area rectangle of one point, repeated calls yield the bounding box
// of all points.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Inflate grows r by dx on the left and right and by dy on the top and bottom.
func (r Rect) Inflate(dx, dy float64) Rect {
	return Rect{
		X0: r.X0 - dx,
		Y0: r.Y0 - dy,
		X1: r.X1 + dx,
		Y1: r.Y1 + dy,
	}
}

// Overlaps reports whether r and o share at least one point. Touching edges
// count as overlapping, and so do zero-area rectangles.
func (r Rect) Overlaps(o Rect) bool {
	return r.X0 <= o.X1 && o.X0 <= r.X1 &&
		r.Y0 <= o.Y1 && o.Y0 <= r.Y1
}
