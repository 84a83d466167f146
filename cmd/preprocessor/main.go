package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/bagaspn/navmerge/pkg/guidance"
	"github.com/bagaspn/navmerge/pkg/logger"
	"github.com/bagaspn/navmerge/pkg/osmparser"
	"github.com/bagaspn/navmerge/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	mapFile       = flag.String("f", "", "openstreetmap pbf file path (overrides config)")
	candidateFile = flag.String("o", "", "merge candidate output json path (overrides config)")
	configDir     = flag.String("c", "./data/", "config directory")
)

func main() {
	flag.Parse()

	log, err := logger.New()
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	if err := util.ReadConfig(*configDir); err != nil {
		log.Fatal("reading config", zap.Error(err))
	}
	if *mapFile == "" {
		*mapFile = viper.GetString("preprocessor.map_file")
	}
	if *candidateFile == "" {
		*candidateFile = viper.GetString("preprocessor.candidate_file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	parser := osmparser.NewOsmParser()
	graph, err := parser.Parse(*mapFile, log)
	if err != nil {
		log.Fatal("parsing openstreetmap file", zap.Error(err))
	}

	snapshotFile := viper.GetString("preprocessor.graph_file")
	if err := graph.WriteGraph(snapshotFile); err != nil {
		log.Fatal("writing graph snapshot", zap.Error(err))
	}
	log.Info("graph snapshot written", zap.String("file", snapshotFile))

	config := guidance.DetectorConfigFromViper()
	detector := guidance.NewMergableRoadDetector(graph,
		guidance.NewIntersectionGenerator(graph), config)
	scanner := guidance.NewMergeScanner(graph, detector, log)
	candidates := scanner.ScanJunctions(ctx)

	if err := writeCandidates(candidates, *candidateFile); err != nil {
		log.Fatal("writing merge candidates", zap.Error(err))
	}
	log.Info("merge candidates written",
		zap.String("file", *candidateFile), zap.Int("count", len(candidates)))
}

func writeCandidates(candidates []guidance.MergeCandidate, outFile string) error {
	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(candidates)
}
