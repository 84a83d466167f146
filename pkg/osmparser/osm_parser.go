package osmparser

import (
	"context"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/bagaspn/navmerge/pkg"
	"github.com/bagaspn/navmerge/pkg/datastructure"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"go.uber.org/zap"
)

type nodeCoord struct {
	lat float64
	lon float64
}

type osmWay struct {
	nodes        []int64
	name         string
	highwayType  pkg.OsmHighwayType
	lanes        uint8
	roundabout   bool
	link         bool
	oneway       bool
	reverseNodes bool // oneway=-1
}

/*
OsmParser. builds the node-based road graph from an openstreetmap pbf
extract. Every way node becomes a graph vertex; shape nodes end up with
degree two and are skipped by the guidance layer's junction compaction.
*/
type OsmParser struct {
	acceptedNodeMap map[int64]nodeCoord
	nodeIDMap       map[int64]datastructure.Index
	ways            []osmWay
}

func NewOsmParser() *OsmParser {
	return &OsmParser{
		acceptedNodeMap: make(map[int64]nodeCoord),
		nodeIDMap:       make(map[int64]datastructure.Index),
	}
}

func (p *OsmParser) Parse(mapFile string, log *zap.Logger) (*datastructure.Graph, error) {
	if err := p.scanWays(mapFile, log); err != nil {
		return nil, err
	}
	if err := p.scanNodes(mapFile, log); err != nil {
		return nil, err
	}
	return p.buildGraph(log), nil
}

func (p *OsmParser) scanWays(mapFile string, log *zap.Logger) error {
	f, err := os.Open(mapFile)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := osmpbf.New(context.Background(), f, runtime.NumCPU())
	defer scanner.Close()

	countWays := 0
	for scanner.Scan() {
		o := scanner.Object()
		if o.ObjectID().Type() != osm.TypeWay {
			continue
		}
		way := o.(*osm.Way)
		if len(way.Nodes) < 2 || !acceptOsmWay(way) {
			continue
		}

		countWays++
		if countWays%50000 == 0 {
			log.Sugar().Infof("scanning openstreetmap ways: %d...", countWays)
		}

		w := newOsmWay(way)
		for _, node := range way.Nodes {
			p.acceptedNodeMap[int64(node.ID)] = nodeCoord{}
		}
		p.ways = append(p.ways, w)
	}
	log.Sugar().Infof("accepted %d openstreetmap ways", countWays)
	return scanner.Err()
}

func (p *OsmParser) scanNodes(mapFile string, log *zap.Logger) error {
	f, err := os.Open(mapFile)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := osmpbf.New(context.Background(), f, runtime.NumCPU())
	defer scanner.Close()

	countNodes := 0
	for scanner.Scan() {
		o := scanner.Object()
		if o.ObjectID().Type() != osm.TypeNode {
			continue
		}
		node := o.(*osm.Node)
		if _, ok := p.acceptedNodeMap[int64(node.ID)]; !ok {
			continue
		}
		countNodes++
		p.acceptedNodeMap[int64(node.ID)] = nodeCoord{lat: node.Lat, lon: node.Lon}
	}
	log.Sugar().Infof("accepted %d openstreetmap nodes", countNodes)
	return scanner.Err()
}

func (p *OsmParser) buildGraph(log *zap.Logger) *datastructure.Graph {
	graph := datastructure.NewGraph()

	vertexOf := func(osmID int64) datastructure.Index {
		if id, ok := p.nodeIDMap[osmID]; ok {
			return id
		}
		coord := p.acceptedNodeMap[osmID]
		id := graph.AddVertex(coord.lat, coord.lon)
		p.nodeIDMap[osmID] = id
		return id
	}

	for _, way := range p.ways {
		nodes := way.nodes
		if way.reverseNodes {
			nodes = make([]int64, len(way.nodes))
			for i, n := range way.nodes {
				nodes[len(way.nodes)-1-i] = n
			}
		}

		roadClass := datastructure.NewRoadClassification(way.highwayType, way.lanes,
			way.roundabout, way.link)
		for i := 1; i < len(nodes); i++ {
			u, v := vertexOf(nodes[i-1]), vertexOf(nodes[i])
			if u == v {
				continue
			}
			graph.AddRoad(u, v, way.name, pkg.TRAVEL_MODE_DRIVING, roadClass, way.oneway)
		}
	}

	log.Sugar().Infof("built road graph: %d vertices, %d edges",
		graph.NumberOfVertices(), graph.NumberOfEdges())
	return graph
}

func acceptOsmWay(way *osm.Way) bool {
	if way.Tags.Find("area") == "yes" {
		return false
	}
	hw := way.Tags.Find("highway")
	if hw == "" {
		return false
	}
	return pkg.GetHighwayType(hw) != pkg.UNKNOWN
}

func newOsmWay(way *osm.Way) osmWay {
	hwTag := way.Tags.Find("highway")
	hw := pkg.GetHighwayType(hwTag)
	roundabout := way.Tags.Find("junction") == "roundabout"
	onewayTag := way.Tags.Find("oneway")

	w := osmWay{
		name:         way.Tags.Find("name"),
		highwayType:  hw,
		lanes:        parseLanes(way.Tags.Find("lanes"), hw),
		roundabout:   roundabout,
		link:         pkg.IsLinkHighway(hw),
		oneway:       isOneway(onewayTag, roundabout, hw),
		reverseNodes: onewayTag == "-1",
	}
	for _, node := range way.Nodes {
		w.nodes = append(w.nodes, int64(node.ID))
	}
	return w
}

func parseLanes(lanesTag string, hw pkg.OsmHighwayType) uint8 {
	if lanesTag == "" {
		return pkg.DefaultLanes(hw)
	}
	// tags like "2;3" happen, take the first value
	if idx := strings.IndexByte(lanesTag, ';'); idx >= 0 {
		lanesTag = lanesTag[:idx]
	}
	lanes, err := strconv.Atoi(strings.TrimSpace(lanesTag))
	if err != nil || lanes < 1 || lanes > 16 {
		return pkg.DefaultLanes(hw)
	}
	return uint8(lanes)
}

func isOneway(onewayTag string, roundabout bool, hw pkg.OsmHighwayType) bool {
	switch onewayTag {
	case "yes", "true", "1", "-1":
		return true
	case "no", "false", "0":
		return false
	}
	// implied oneways
	return roundabout || hw == pkg.MOTORWAY || hw == pkg.MOTORWAY_LINK
}
