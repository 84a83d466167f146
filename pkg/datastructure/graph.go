package datastructure

import (
	"github.com/bagaspn/navmerge/pkg"
	"github.com/bagaspn/navmerge/pkg/geo"
)

type Index uint32

const InvalidIndex = Index(^uint32(0))

type Vertex struct {
	lat float64
	lon float64
	id  Index
}

func NewVertex(lat, lon float64, id Index) Vertex {
	return Vertex{
		lat: lat,
		lon: lon,
		id:  id,
	}
}

func (v Vertex) GetID() Index {
	return v.id
}

func (v Vertex) GetLat() float64 {
	return v.lat
}

func (v Vertex) GetLon() float64 {
	return v.lon
}

func (v Vertex) GetCoordinate() geo.Coordinate {
	return geo.NewCoordinate(v.lat, v.lon)
}

/*
EdgeData. road attributes of one directed edge. reversed marks the
direction of a oneway that runs against the digitized node order: the edge
exists in the adjacency for symmetric traversal but is not drivable
forward. For a divided road meeting a junction, the outgoing carriageway
departs with reversed=false and the incoming one with reversed=true, which
is exactly the pairing the merge detector requires.
*/
type EdgeData struct {
	nameID     Index
	travelMode pkg.TravelMode
	reversed   bool
	roadClass  RoadClassification
}

func NewEdgeData(nameID Index, travelMode pkg.TravelMode, reversed bool,
	roadClass RoadClassification) EdgeData {
	return EdgeData{
		nameID:     nameID,
		travelMode: travelMode,
		reversed:   reversed,
		roadClass:  roadClass,
	}
}

func (ed EdgeData) GetNameID() Index {
	return ed.nameID
}

func (ed EdgeData) GetTravelMode() pkg.TravelMode {
	return ed.travelMode
}

func (ed EdgeData) IsReversed() bool {
	return ed.reversed
}

func (ed EdgeData) GetRoadClassification() RoadClassification {
	return ed.roadClass
}

type DirectedEdge struct {
	tail Index
	head Index
	dist float64 // meter
	data EdgeData
	id   Index
}

func (e DirectedEdge) GetID() Index {
	return e.id
}

func (e DirectedEdge) GetTail() Index {
	return e.tail
}

func (e DirectedEdge) GetHead() Index {
	return e.head
}

func (e DirectedEdge) GetDist() float64 {
	return e.dist
}

func (e DirectedEdge) GetData() EdgeData {
	return e.data
}

/*
Graph. arena-style node-based road graph: flat vertex and edge arrays
indexed by Index, with per-vertex adjacency lists of outgoing edge ids.
Built once during preprocessing and read-only afterwards, so concurrent
queries need no locking.
*/
type Graph struct {
	vertices    []Vertex
	edges       []DirectedEdge
	adjacency   [][]Index
	streetNames []string
	nameIDMap   map[string]Index
}

func NewGraph() *Graph {
	g := &Graph{
		nameIDMap: make(map[string]Index),
	}
	// nameID 0 is reserved for the empty/unknown street name
	g.streetNames = append(g.streetNames, "")
	g.nameIDMap[""] = 0
	return g
}

func (g *Graph) AddVertex(lat, lon float64) Index {
	id := Index(len(g.vertices))
	g.vertices = append(g.vertices, NewVertex(lat, lon, id))
	g.adjacency = append(g.adjacency, nil)
	return id
}

// AddStreetName. intern a street name, returning its stable id.
func (g *Graph) AddStreetName(name string) Index {
	if id, ok := g.nameIDMap[name]; ok {
		return id
	}
	id := Index(len(g.streetNames))
	g.streetNames = append(g.streetNames, name)
	g.nameIDMap[name] = id
	return id
}

func (g *Graph) AddEdge(tail, head Index, data EdgeData) Index {
	id := Index(len(g.edges))
	dist := geo.HaversineDistanceM(g.vertices[tail].GetCoordinate(),
		g.vertices[head].GetCoordinate())
	g.edges = append(g.edges, DirectedEdge{
		tail: tail,
		head: head,
		dist: dist,
		data: data,
		id:   id,
	})
	g.adjacency[tail] = append(g.adjacency[tail], id)
	return id
}

/*
AddRoad. add one road segment between u and v. A oneway segment digitized
u->v yields the drivable edge (u,v) and its reversed counterpart (v,u); a
twoway segment yields two drivable edges.
*/
func (g *Graph) AddRoad(u, v Index, name string, travelMode pkg.TravelMode,
	roadClass RoadClassification, oneway bool) (Index, Index) {
	nameID := g.AddStreetName(name)
	forward := g.AddEdge(u, v, NewEdgeData(nameID, travelMode, false, roadClass))
	backward := g.AddEdge(v, u, NewEdgeData(nameID, travelMode, oneway, roadClass))
	return forward, backward
}

func (g *Graph) GetVertex(nid Index) Vertex {
	return g.vertices[nid]
}

func (g *Graph) GetVertexCoordinates(nid Index) (float64, float64) {
	v := g.vertices[nid]
	return v.lat, v.lon
}

func (g *Graph) GetEdge(eid Index) DirectedEdge {
	return g.edges[eid]
}

func (g *Graph) GetEdgeData(eid Index) EdgeData {
	return g.edges[eid].data
}

func (g *Graph) GetTarget(eid Index) Index {
	return g.edges[eid].head
}

func (g *Graph) GetTail(eid Index) Index {
	return g.edges[eid].tail
}

func (g *Graph) GetEdgeDist(eid Index) float64 {
	return g.edges[eid].dist
}

// GetOutDegree. number of adjacent edges at nid, reversed edges included.
func (g *Graph) GetOutDegree(nid Index) int {
	return len(g.adjacency[nid])
}

func (g *Graph) GetAdjacentEdges(nid Index) []Index {
	return g.adjacency[nid]
}

func (g *Graph) ForAdjacentEdgesOf(nid Index, fn func(eid Index)) {
	for _, eid := range g.adjacency[nid] {
		fn(eid)
	}
}

func (g *Graph) GetStreetName(nameID Index) string {
	return g.streetNames[nameID]
}

func (g *Graph) NumberOfVertices() int {
	return len(g.vertices)
}

func (g *Graph) NumberOfEdges() int {
	return len(g.edges)
}

func (g *Graph) NumberOfStreetNames() int {
	return len(g.streetNames)
}

// EdgeBearing. initial bearing of eid at its tail.
func (g *Graph) EdgeBearing(eid Index) float64 {
	e := g.edges[eid]
	tail, head := g.vertices[e.tail], g.vertices[e.head]
	return geo.BearingTo(tail.lat, tail.lon, head.lat, head.lon)
}
