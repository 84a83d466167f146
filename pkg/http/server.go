package http

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type ServerInterface interface {
	Run(ctx context.Context) error
}

// Server. runs every registered sub-server (http api, background jobs)
// under one errgroup; the first failure tears the rest down.
type Server struct {
	servers []ServerInterface
}

func New() *Server {
	return &Server{}
}

func (s *Server) Use(server ServerInterface) {
	s.servers = append(s.servers, server)
}

func (s *Server) Run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	for _, server := range s.servers {
		srv := server
		eg.Go(func() error {
			return srv.Run(ctx)
		})
	}
	return eg.Wait()
}
