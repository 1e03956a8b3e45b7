package algo

import (
	"campus-nav/model"
	"campus-nav/utils"
)

// Edge is an undirected weighted connection. Both endpoints share the same *Edge.
type Edge struct {
	A      string
	B      string
	Weight float64
}

// Other returns the endpoint of e opposite to name.
func (e *Edge) Other(name string) string {
	if e.A == name {
		return e.B
	}
	return e.A
}

// Graph is the in-memory routing graph. It is built per request and never mutated
// after BuildGraph returns.
type Graph struct {
	Nodes    map[string]*model.Location // name -> location
	AdjList  map[string][]*Edge         // name -> incident edges, in link order
	NodeList []model.Location           // nodes in input order
	edges    map[[2]string]*Edge
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		Nodes:   make(map[string]*model.Location),
		AdjList: make(map[string][]*Edge),
		edges:   make(map[[2]string]*Edge),
	}
}

// BuildGraph assembles a graph from a store snapshot.
// A link naming an unknown location, a bad weight, or a repeated location name fails the
// whole build with a *DataIntegrityError. A repeated link keeps the last weight.
func BuildGraph(locations []model.Location, links []model.Link) (*Graph, error) {
	g := NewGraph()

	for i := range locations {
		loc := locations[i]
		if loc.Name == "" {
			return nil, &DataIntegrityError{Reason: "empty location name"}
		}
		if !utils.IsFinite(loc.X) || !utils.IsFinite(loc.Y) {
			return nil, &DataIntegrityError{Name: loc.Name, Reason: "non-finite coordinates"}
		}
		if _, ok := g.Nodes[loc.Name]; ok {
			return nil, &DataIntegrityError{Name: loc.Name, Reason: "duplicate location"}
		}
		g.Nodes[loc.Name] = &loc
		g.NodeList = append(g.NodeList, loc)
	}

	for _, link := range links {
		if err := g.addEdge(link); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func (g *Graph) addEdge(link model.Link) error {
	bad := func(reason string) error {
		return &DataIntegrityError{Link: [2]string{link.From, link.To}, Reason: reason}
	}

	if g.Nodes[link.From] == nil {
		return bad("unknown location " + link.From)
	}
	if g.Nodes[link.To] == nil {
		return bad("unknown location " + link.To)
	}
	if link.From == link.To {
		return bad("self-loop")
	}
	if !(link.Distance > 0) || !utils.IsFinite(link.Distance) {
		return bad("distance must be a positive finite number")
	}

	key := edgeKey(link.From, link.To)
	if e, ok := g.edges[key]; ok {
		e.Weight = link.Distance
		return nil
	}

	e := &Edge{A: key[0], B: key[1], Weight: link.Distance}
	g.edges[key] = e
	g.AdjList[link.From] = append(g.AdjList[link.From], e)
	g.AdjList[link.To] = append(g.AdjList[link.To], e)
	return nil
}

// Weight returns the weight of the edge between a and b.
func (g *Graph) Weight(a, b string) (float64, bool) {
	e, ok := g.edges[edgeKey(a, b)]
	if !ok {
		return 0, false
	}
	return e.Weight, true
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// GetNeighbors returns the edges incident to name.
func (g *Graph) GetNeighbors(name string) []*Edge {
	return g.AdjList[name]
}

// PathWeight sums edge weights along path. It fails if two consecutive names are not adjacent.
func (g *Graph) PathWeight(path []string) (float64, bool) {
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		w, ok := g.Weight(path[i], path[i+1])
		if !ok {
			return 0, false
		}
		total += w
	}
	return total, true
}

func (g *Graph) point(name string) utils.Point {
	n := g.Nodes[name]
	return utils.Point{X: n.X, Y: n.Y}
}

func edgeKey(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}
	return [2]string{a, b}
}
