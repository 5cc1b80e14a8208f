package delaunay

import (
	"github.com/golang/geo/r2"
)

// VoronoiVertex is one end of a dual edge. Inner vertices are circumcenters
// of finite triangles; outer vertices stand for the unbounded direction of a
// convex hull edge.
type VoronoiVertex struct {
	Outer     bool
	Point     r2.Point
	Direction r2.Point
}

// Inner wraps a circumcenter.
func Inner(p r2.Point) VoronoiVertex { return VoronoiVertex{Point: p} }

// OuterRay wraps the outward direction of a hull edge.
func OuterRay(dir r2.Point) VoronoiVertex { return VoronoiVertex{Outer: true, Direction: dir} }

// DualEdge is the Voronoi edge dual to a Delaunay edge leaving a vertex.
// From is derived from the triangle left of the Delaunay edge and To from
// the triangle on its right.
type DualEdge struct {
	From VoronoiVertex
	To   VoronoiVertex
}

// mesh is the half-edge view of the finite triangles. Half-edge 3t+k runs
// from tris[t][k] to tris[t][(k+1)%3].
type mesh struct {
	tris     [][3]int
	centers  []r2.Point
	twin     []int
	outgoing []int
	pts      []r2.Point
}

func (m *mesh) origin(e int) int { return m.tris[e/3][e%3] }
func (m *mesh) dest(e int) int   { return m.tris[e/3][(e%3+1)%3] }
func prevEdge(e int) int         { return 3*(e/3) + (e%3+2)%3 }

func (t *Triangulation) ensureMesh() *mesh {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.mesh == nil {
		t.mesh = t.buildMesh()
	}
	return t.mesh
}

func (t *Triangulation) buildMesh() *mesh {
	n := t.NumVertices()
	m := &mesh{pts: t.pts[superVertices:], outgoing: make([]int, n)}
	for i := range m.outgoing {
		m.outgoing[i] = -1
	}
	for _, tr := range t.tris {
		if !tr.alive || tr.v[0] < superVertices || tr.v[1] < superVertices || tr.v[2] < superVertices {
			continue
		}
		m.addTriangle(tr.v[0]-superVertices, tr.v[1]-superVertices, tr.v[2]-superVertices)
	}
	m.fillHull()

	byEnds := make(map[[2]int]int, 3*len(m.tris))
	for e := 0; e < 3*len(m.tris); e++ {
		byEnds[[2]int{m.origin(e), m.dest(e)}] = e
	}
	m.twin = make([]int, 3*len(m.tris))
	for e := range m.twin {
		tw, ok := byEnds[[2]int{m.dest(e), m.origin(e)}]
		if !ok {
			tw = -1
		}
		m.twin[e] = tw
		v := m.origin(e)
		// Hull vertices start their walk on the boundary half-edge.
		if m.outgoing[v] < 0 || tw < 0 {
			m.outgoing[v] = e
		}
	}
	return m
}

func (m *mesh) addTriangle(a, b, c int) {
	pa, pb, pc := m.pts[a], m.pts[b], m.pts[c]
	cc, ok := circumcenter(pa, pb, pc)
	if !ok {
		cc = r2.Point{X: (pa.X + pb.X + pc.X) / 3, Y: (pa.Y + pb.Y + pc.Y) / 3}
	}
	m.tris = append(m.tris, [3]int{a, b, c})
	m.centers = append(m.centers, cc)
}

// fillHull restores the hull triangles lost with the super triangle. The
// boundary runs counter-clockwise; while a boundary vertex turns clockwise
// the triangle spanning its two neighbours is added. Boundaries that are not
// a single simple loop are left alone.
func (m *mesh) fillHull() {
	n := 3 * len(m.tris)
	if n == 0 {
		return
	}
	present := make(map[[2]int]bool, n)
	for e := 0; e < n; e++ {
		present[[2]int{m.origin(e), m.dest(e)}] = true
	}
	next := make(map[int]int)
	start := -1
	for e := 0; e < n; e++ {
		a, b := m.origin(e), m.dest(e)
		if present[[2]int{b, a}] {
			continue
		}
		if _, pinched := next[a]; pinched {
			return
		}
		next[a] = b
		if start < 0 || a < start {
			start = a
		}
	}
	hull := []int{start}
	for v := next[start]; v != start; v = next[v] {
		if len(hull) >= len(next) {
			return
		}
		hull = append(hull, v)
	}
	if len(hull) != len(next) {
		return
	}

	for changed := true; changed && len(hull) > 3; {
		changed = false
		for i := 0; i < len(hull) && len(hull) > 3; {
			k := len(hull)
			a, b, c := hull[(i+k-1)%k], hull[i], hull[(i+1)%k]
			if orient(m.pts[a], m.pts[b], m.pts[c]) < 0 {
				m.addTriangle(a, c, b)
				hull = append(hull[:i], hull[i+1:]...)
				changed = true
				continue
			}
			i++
		}
	}
}

// DualEdges walks the Voronoi face of v counter-clockwise. Consecutive
// edges share an endpoint; for interior vertices the last edge connects
// back to the first, for hull vertices the walk starts and ends on an outer
// vertex.
func (t *Triangulation) DualEdges(v VertexHandle) []DualEdge {
	m := t.ensureMesh()
	if int(v) < 0 || int(v) >= len(m.outgoing) {
		return nil
	}
	start := m.outgoing[v]
	if start < 0 {
		return nil
	}

	var out []DualEdge
	e := start
	for guard := 0; guard <= len(m.twin); guard++ {
		out = append(out, m.dual(e))
		p := prevEdge(e)
		tw := m.twin[p]
		if tw < 0 {
			// p runs c->v along the hull; the edge v->c has no left triangle.
			d := m.pts[m.origin(p)].Sub(m.pts[int(v)])
			out = append(out, DualEdge{From: OuterRay(d.Ortho()), To: Inner(m.centers[p/3])})
			break
		}
		e = tw
		if e == start {
			break
		}
	}
	return out
}

func (m *mesh) dual(e int) DualEdge {
	from := Inner(m.centers[e/3])
	tw := m.twin[e]
	if tw >= 0 {
		return DualEdge{From: from, To: Inner(m.centers[tw/3])}
	}
	d := m.pts[m.dest(e)].Sub(m.pts[m.origin(e)])
	return DualEdge{From: from, To: OuterRay(r2.Point{X: d.Y, Y: -d.X})}
}
