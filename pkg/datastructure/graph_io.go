package datastructure

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/bagaspn/navmerge/pkg"
	"github.com/dsnet/compress/bzip2"
)

/*
graph snapshot format (bzip2-compressed text):

	<numVertices> <numEdges> <numStreetNames>
	one line per vertex:      <lat> <lon>
	one line per street name: <name> (quoted)
	one line per edge:        <tail> <head> <nameID> <reversed> <mode> <highway> <lanes> <roundabout> <link>

the snapshot lets the server start without reparsing the osm pbf.
*/

func (g *Graph) WriteGraph(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	defer bz.Close()

	w := bufio.NewWriter(bz)

	fmt.Fprintf(w, "%d %d %d\n", len(g.vertices), len(g.edges), len(g.streetNames))

	for _, v := range g.vertices {
		latF := strconv.FormatFloat(v.lat, 'f', -1, 64)
		lonF := strconv.FormatFloat(v.lon, 'f', -1, 64)
		fmt.Fprintf(w, "%s %s\n", latF, lonF)
	}

	for _, name := range g.streetNames {
		fmt.Fprintf(w, "%s\n", strconv.Quote(name))
	}

	for _, e := range g.edges {
		rc := e.data.roadClass
		fmt.Fprintf(w, "%d %d %d %s %d %d %d %s %s\n",
			e.tail, e.head, e.data.nameID,
			strconv.FormatBool(e.data.reversed),
			e.data.travelMode,
			rc.highwayType, rc.numberOfLanes,
			strconv.FormatBool(rc.roundabout),
			strconv.FormatBool(rc.link))
	}

	return w.Flush()
}

func ReadGraph(filename string) (*Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bz, err := bzip2.NewReader(f, &bzip2.ReaderConfig{})
	if err != nil {
		return nil, err
	}
	defer bz.Close()

	r := bufio.NewReader(bz)

	var numVertices, numEdges, numNames int
	if _, err := fmt.Fscanf(r, "%d %d %d\n", &numVertices, &numEdges, &numNames); err != nil {
		return nil, fmt.Errorf("reading graph header: %w", err)
	}

	g := NewGraph()
	for i := 0; i < numVertices; i++ {
		var lat, lon float64
		if _, err := fmt.Fscanf(r, "%f %f\n", &lat, &lon); err != nil {
			return nil, fmt.Errorf("reading vertex %d: %w", i, err)
		}
		g.AddVertex(lat, lon)
	}

	for i := 0; i < numNames; i++ {
		line, err := r.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("reading street name %d: %w", i, err)
		}
		name, err := strconv.Unquote(line[:len(line)-1])
		if err != nil {
			return nil, fmt.Errorf("unquoting street name %d: %w", i, err)
		}
		g.AddStreetName(name)
	}

	for i := 0; i < numEdges; i++ {
		var (
			tail, head, nameID       uint32
			reversedS, roundS, linkS string
			mode, highway, lanes     uint32
		)
		if _, err := fmt.Fscanf(r, "%d %d %d %s %d %d %d %s %s\n",
			&tail, &head, &nameID, &reversedS, &mode, &highway, &lanes,
			&roundS, &linkS); err != nil {
			return nil, fmt.Errorf("reading edge %d: %w", i, err)
		}
		reversed, _ := strconv.ParseBool(reversedS)
		roundabout, _ := strconv.ParseBool(roundS)
		link, _ := strconv.ParseBool(linkS)

		rc := NewRoadClassification(pkg.OsmHighwayType(highway), uint8(lanes), roundabout, link)
		g.AddEdge(Index(tail), Index(head),
			NewEdgeData(Index(nameID), pkg.TravelMode(mode), reversed, rc))
	}

	return g, nil
}
