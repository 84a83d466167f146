package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/bagaspn/navmerge/pkg/datastructure"
	"github.com/bagaspn/navmerge/pkg/guidance"
	navhttp "github.com/bagaspn/navmerge/pkg/http"
	"github.com/bagaspn/navmerge/pkg/http/router"
	"github.com/bagaspn/navmerge/pkg/http/usecases"
	"github.com/bagaspn/navmerge/pkg/logger"
	"github.com/bagaspn/navmerge/pkg/spatialindex"
	"github.com/bagaspn/navmerge/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var configDir = flag.String("c", "./data/", "config directory")

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

	graphFile := viper.GetString("preprocessor.graph_file")
	graph, err := datastructure.ReadGraph(graphFile)
	if err != nil {
		log.Fatal("reading graph snapshot", zap.Error(err))
	}
	log.Info("graph snapshot loaded",
		zap.String("file", graphFile),
		zap.Int("vertices", graph.NumberOfVertices()),
		zap.Int("edges", graph.NumberOfEdges()))

	index := spatialindex.NewRtree()
	index.Build(graph, log)

	detector := guidance.NewMergableRoadDetector(graph,
		guidance.NewIntersectionGenerator(graph), guidance.DetectorConfigFromViper())
	scanner := guidance.NewMergeScanner(graph, detector, log)
	service := usecases.NewMergeService(graph, scanner, detector, index, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := navhttp.New()
	server.Use(router.NewAPI(log, service))
	if err := server.Run(ctx); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
	log.Info("server stopped")
}
