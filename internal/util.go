package internal

import "github.com/golang/geo/r2"

// Lexicographic ordering, X first. The hull walk depends on ties being broken
// consistently, so Y is only consulted when X values are exactly equal.
func (p Point) Less(other Point) bool {
	if p.X != other.X {
		return p.X < other.X
	}
	return p.Y < other.Y
}

// Arithmetic mean of two points. This must be exact for the quad rule, so no
// tolerance is applied.
func Midpoint(a, b Point) Point {
	return Point(r2.Point(a).Add(r2.Point(b)).Mul(0.5))
}

// Twice the signed area of the triangle abc. Positive when abc winds
// counterclockwise.
func Orient(a, b, c Point) float64 {
	return r2.Point(b).Sub(r2.Point(a)).Cross(r2.Point(c).Sub(r2.Point(a)))
}

// Signed area of a triangle; negative for clockwise triangles.
func SignedArea(a, b, c Point) float64 {
	return Orient(a, b, c) / 2
}

func IsCCW(a, b, c Point) bool {
	return Orient(a, b, c) > 0
}

// Is d strictly inside the circumcircle of the counterclockwise triangle abc?
func InCircle(a, b, c, d Point) bool {
	return InCircleDeterminant(a, b, c, d) > 0
}

// The incircle determinant. Positive when d is inside the circumcircle of the
// counterclockwise triangle abc, zero when the four points are cocircular.
func InCircleDeterminant(a, b, c, d Point) float64 {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y

	ap := adx*adx + ady*ady
	bp := bdx*bdx + bdy*bdy
	cp := cdx*cdx + cdy*cdy

	return adx*(bdy*cp-bp*cdy) -
		ady*(bdx*cp-bp*cdx) +
		ap*(bdx*cdy-bdy*cdx)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (s *IndexStack) Push(i int) {
	*s = append(*s, i)
}

// Pop returns -1 on an empty stack
func (s *IndexStack) Pop() int {
	if len(*s) == 0 {
		return -1
	}
	i := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return i
}

// Peek at the item n places from the top. Peek(0) is the top of the stack.
func (s *IndexStack) Peek(n int) int {
	if n >= len(*s) {
		return -1
	}
	return (*s)[len(*s)-1-n]
}

func (s *IndexStack) Len() int {
	return len(*s)
}

func (s *IndexStack) Empty() bool {
	return len(*s) == 0
}
