package graph

import "github.com/newell-romario/r2ds/rhmap"

// AddEdge creates an edge from src to dst, creating either endpoint that
// does not yet exist. No-op, returning the existing edge, if one already
// runs from src to dst. The call is all-or-nothing: if any step after
// auto-creating an endpoint fails, every auto-created vertex and every
// partially recorded position handle is rolled back before returning.
// Complexity: O(1) amortised.
func (g *Graph) AddEdge(src, dst []byte) (*Edge, bool) {
	srcV, srcExisted := g.vertices.Get(src)
	createdSrc := false
	if !srcExisted {
		srcV = g.AddVertex(src)
		createdSrc = true
	}

	dstV, dstExisted := g.vertices.Get(dst)
	createdDst := false
	if !dstExisted {
		dstV = g.AddVertex(dst)
		createdDst = true
	}

	if e, ok := srcV.byDst.Get(dstV.key); ok {
		return e, true
	}

	e := &Edge{
		Src: srcV, Dst: dstV,
		attrs: rhmap.New[any](rhmap.WithComparator[any](g.acmp)),
	}

	if !srcV.byDst.Put(dstV.key, e) {
		g.rollbackAutoCreated(createdSrc, src, createdDst, dst)
		return nil, false
	}

	e.nodeOut = srcV.outEdges.PushBack(e)
	e.nodeOutN = srcV.outNeighbors.PushBack(dstV)
	e.nodeInN = dstV.inNeighbors.PushBack(srcV)
	e.nodeGraph = g.elist.PushBack(e)

	return e, true
}

func (g *Graph) rollbackAutoCreated(createdSrc bool, src []byte, createdDst bool, dst []byte) {
	if createdDst {
		g.DelVertex(dst)
	}
	if createdSrc {
		g.DelVertex(src)
	}
}

// GetEdge returns the edge from src to dst, or ok=false if absent.
// Complexity: O(1).
func (g *Graph) GetEdge(src, dst []byte) (*Edge, bool) {
	srcV, ok := g.vertices.Get(src)
	if !ok {
		return nil, false
	}
	return srcV.byDst.Get(dst)
}

// DelEdge removes the edge from src to dst if present. The edge is
// unlinked from every adjacency sequence it appears in without disturbing
// the relative order of what's left. Complexity: O(1).
func (g *Graph) DelEdge(src, dst []byte) bool {
	srcV, ok := g.vertices.Get(src)
	if !ok {
		return false
	}
	e, ok := srcV.byDst.Get(dst)
	if !ok {
		return false
	}
	dstV := e.Dst

	srcV.byDst.Delete(dst)

	srcV.outEdges.Remove(e.nodeOut)
	srcV.outNeighbors.Remove(e.nodeOutN)
	dstV.inNeighbors.Remove(e.nodeInN)
	g.elist.Remove(e.nodeGraph)

	if !g.borrowed && g.edgeAttrDis != nil {
		e.attrs.Range(func(_ []byte, v any) bool {
			g.edgeAttrDis(v)
			return true
		})
	}
	return true
}
