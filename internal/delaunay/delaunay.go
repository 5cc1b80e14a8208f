// Package delaunay is an incremental Bowyer-Watson triangulation with a
// Voronoi dual view. Vertices are inserted one at a time inside a super
// triangle sized from the expected bounds; the dual face of every vertex can
// be walked in counter-clockwise order with each dual edge classified as
// inner (two circumcenters) or outer (a ray leaving the convex hull).
package delaunay

import (
	"math"
	"sync"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

var (
	// ErrDuplicate is returned when a point coincides with an existing vertex.
	ErrDuplicate = errors.New("delaunay: duplicate vertex")
	// ErrDegenerate is returned for NaN or infinite coordinates.
	ErrDegenerate = errors.New("delaunay: degenerate vertex")
	// ErrOutOfBounds is returned for points outside the super triangle.
	ErrOutOfBounds = errors.New("delaunay: vertex outside triangulation bounds")
)

// VertexHandle identifies an inserted vertex. Handles are dense and follow
// insertion order starting at zero.
type VertexHandle int

const (
	superVertices = 3
	superMargin   = 20
	dupEpsilon2   = 1e-18
)

// triangle stores vertex indices in counter-clockwise order; n[i] is the
// neighbour across the edge opposite v[i], or -1.
type triangle struct {
	v     [3]int
	n     [3]int
	alive bool
}

// Triangulation is safe for concurrent readers once insertion has
// finished. Insert must not run concurrently with anything else.
type Triangulation struct {
	pts  []r2.Point
	tris []triangle
	last int

	mu   sync.Mutex
	mesh *mesh
}

// New creates an empty triangulation whose super triangle comfortably
// encloses bounds.
func New(bounds r2.Rect) *Triangulation {
	if bounds.IsEmpty() {
		bounds = r2.RectFromPoints(r2.Point{X: -1, Y: -1}, r2.Point{X: 1, Y: 1})
	}
	size := bounds.Size()
	delta := math.Max(math.Max(size.X, size.Y), 1)
	mid := bounds.Center()

	a := r2.Point{X: mid.X - superMargin*delta, Y: mid.Y - delta}
	b := r2.Point{X: mid.X + superMargin*delta, Y: mid.Y - delta}
	c := r2.Point{X: mid.X, Y: mid.Y + superMargin*delta}

	t := &Triangulation{pts: []r2.Point{a, b, c}}
	t.tris = append(t.tris, triangle{v: [3]int{0, 1, 2}, n: [3]int{-1, -1, -1}, alive: true})
	return t
}

// Insert adds p and restores the Delaunay property around it.
func (t *Triangulation) Insert(p r2.Point) (VertexHandle, error) {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return -1, errors.Wrapf(ErrDegenerate, "point %v", p)
	}
	if !t.insideSuper(p) {
		return -1, errors.Wrapf(ErrOutOfBounds, "point %v", p)
	}

	start := t.locate(p)
	bad, isBad := t.cavity(start, p)
	for _, ti := range bad {
		for _, vi := range t.tris[ti].v {
			if vi < superVertices {
				continue
			}
			d := t.pts[vi].Sub(p)
			if d.Dot(d) < dupEpsilon2 {
				return -1, errors.Wrapf(ErrDuplicate, "point %v matches vertex %d", p, vi-superVertices)
			}
		}
	}

	pi := len(t.pts)
	t.pts = append(t.pts, p)

	type rim struct {
		a, b    int
		outside int
		old     int
	}
	rims := make([]rim, 0, len(bad)+2)
	for _, ti := range bad {
		tr := t.tris[ti]
		for i := 0; i < 3; i++ {
			nb := tr.n[i]
			if nb >= 0 && isBad[nb] {
				continue
			}
			rims = append(rims, rim{a: tr.v[(i+1)%3], b: tr.v[(i+2)%3], outside: nb, old: ti})
		}
	}
	for _, ti := range bad {
		t.tris[ti].alive = false
	}

	byFirst := make(map[int]int, len(rims))
	bySecond := make(map[int]int, len(rims))
	created := make([]int, 0, len(rims))
	for _, r := range rims {
		idx := len(t.tris)
		t.tris = append(t.tris, triangle{v: [3]int{r.a, r.b, pi}, n: [3]int{-1, -1, r.outside}, alive: true})
		if r.outside >= 0 {
			nb := &t.tris[r.outside]
			for j := 0; j < 3; j++ {
				if nb.n[j] == r.old {
					nb.n[j] = idx
					break
				}
			}
		}
		byFirst[r.a] = idx
		bySecond[r.b] = idx
		created = append(created, idx)
	}
	for _, idx := range created {
		tr := &t.tris[idx]
		if nb, ok := byFirst[tr.v[1]]; ok {
			tr.n[0] = nb
		}
		if nb, ok := bySecond[tr.v[0]]; ok {
			tr.n[1] = nb
		}
	}
	if len(created) > 0 {
		t.last = created[0]
	}

	t.mu.Lock()
	t.mesh = nil
	t.mu.Unlock()
	return VertexHandle(pi - superVertices), nil
}

// NumVertices reports how many vertices have been inserted.
func (t *Triangulation) NumVertices() int { return len(t.pts) - superVertices }

// Vertices lists every vertex handle in insertion order.
func (t *Triangulation) Vertices() []VertexHandle {
	out := make([]VertexHandle, t.NumVertices())
	for i := range out {
		out[i] = VertexHandle(i)
	}
	return out
}

// Position returns the stored coordinates of v.
func (t *Triangulation) Position(v VertexHandle) r2.Point {
	return t.pts[int(v)+superVertices]
}

// VerticesInRect lists the vertices lying inside r (edges included).
func (t *Triangulation) VerticesInRect(r r2.Rect) []VertexHandle {
	var out []VertexHandle
	for i := superVertices; i < len(t.pts); i++ {
		if r.ContainsPoint(t.pts[i]) {
			out = append(out, VertexHandle(i-superVertices))
		}
	}
	return out
}

// Triangles returns every finite triangle, counter-clockwise.
func (t *Triangulation) Triangles() [][3]VertexHandle {
	m := t.ensureMesh()
	out := make([][3]VertexHandle, len(m.tris))
	for i, tr := range m.tris {
		out[i] = [3]VertexHandle{VertexHandle(tr[0]), VertexHandle(tr[1]), VertexHandle(tr[2])}
	}
	return out
}

// Edges returns each undirected Delaunay edge once.
func (t *Triangulation) Edges() [][2]VertexHandle {
	m := t.ensureMesh()
	out := make([][2]VertexHandle, 0, len(m.twin)/2+1)
	for e, tw := range m.twin {
		from, to := m.origin(e), m.dest(e)
		if tw >= 0 && from > to {
			continue
		}
		out = append(out, [2]VertexHandle{VertexHandle(from), VertexHandle(to)})
	}
	return out
}

func (t *Triangulation) insideSuper(p r2.Point) bool {
	a, b, c := t.pts[0], t.pts[1], t.pts[2]
	return orient(a, b, p) > 0 && orient(b, c, p) > 0 && orient(c, a, p) > 0
}

// locate walks across edges towards p and falls back to a linear scan when
// the walk stalls.
func (t *Triangulation) locate(p r2.Point) int {
	cur := t.last
	if cur < 0 || cur >= len(t.tris) || !t.tris[cur].alive {
		cur = t.anyAlive()
	}
	limit := len(t.tris) + 16
	for step := 0; step < limit; step++ {
		tr := t.tris[cur]
		moved := false
		for i := 0; i < 3; i++ {
			a, b := t.pts[tr.v[(i+1)%3]], t.pts[tr.v[(i+2)%3]]
			if orient(a, b, p) < 0 && tr.n[i] >= 0 {
				cur = tr.n[i]
				moved = true
				break
			}
		}
		if !moved {
			return cur
		}
	}
	for i, tr := range t.tris {
		if tr.alive && t.triangleContains(tr, p) {
			return i
		}
	}
	return cur
}

func (t *Triangulation) anyAlive() int {
	for i := len(t.tris) - 1; i >= 0; i-- {
		if t.tris[i].alive {
			return i
		}
	}
	return 0
}

func (t *Triangulation) triangleContains(tr triangle, p r2.Point) bool {
	a, b, c := t.pts[tr.v[0]], t.pts[tr.v[1]], t.pts[tr.v[2]]
	return orient(a, b, p) >= 0 && orient(b, c, p) >= 0 && orient(c, a, p) >= 0
}

// cavity flood-fills from start over the triangles whose circumcircle holds
// p. The located triangle always belongs to the cavity.
func (t *Triangulation) cavity(start int, p r2.Point) ([]int, map[int]bool) {
	bad := []int{start}
	isBad := map[int]bool{start: true}
	seen := map[int]bool{start: true}
	for i := 0; i < len(bad); i++ {
		for _, nb := range t.tris[bad[i]].n {
			if nb < 0 || seen[nb] {
				continue
			}
			seen[nb] = true
			tr := t.tris[nb]
			if inCircumcircle(t.pts[tr.v[0]], t.pts[tr.v[1]], t.pts[tr.v[2]], p) {
				bad = append(bad, nb)
				isBad[nb] = true
			}
		}
	}
	return bad, isBad
}

// orient is positive when p lies left of a->b.
func orient(a, b, p r2.Point) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

func inCircumcircle(a, b, c, p r2.Point) bool {
	ax, ay := a.X-p.X, a.Y-p.Y
	bx, by := b.X-p.X, b.Y-p.Y
	cx, cy := c.X-p.X, c.Y-p.Y

	det := (ax*ax+ay*ay)*(bx*cy-cx*by) -
		(bx*bx+by*by)*(ax*cy-cx*ay) +
		(cx*cx+cy*cy)*(ax*by-bx*ay)

	if orient(a, b, c) < 0 {
		return det < 0
	}
	return det > 0
}

// circumcenter returns false for (nearly) collinear triangles.
func circumcenter(a, b, c r2.Point) (r2.Point, bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < 1e-12 {
		return r2.Point{}, false
	}
	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y
	return r2.Point{
		X: (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d,
		Y: (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d,
	}, true
}
