package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bagaspn/navmerge/pkg/http/router/controllers"
	"github.com/bagaspn/navmerge/pkg/http/router/routerhelper"
	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/rs/cors"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type API struct {
	log      *zap.Logger
	mergeAPI *controllers.MergeHandler
}

func NewAPI(log *zap.Logger, mergeService controllers.MergeService) *API {
	return &API{
		log:      log,
		mergeAPI: controllers.NewMergeHandler(mergeService, log),
	}
}

func (api *API) routes() http.Handler {
	router := httprouter.New()

	rl := newRateLimiter(viper.GetFloat64("server.rate_limit_rps"),
		viper.GetInt("server.rate_limit_burst"))
	base := alice.New(
		api.recoverPanic,
		realIP,
		heartbeat("/healthz"),
		requestLogger(api.log),
		enforceJSONHandler,
		rl.limit,
	)

	apiGroup := routerhelper.NewRouteGroup(router, "/api", base)
	api.mergeAPI.Routes(apiGroup)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: false,
		MaxAge:           300,
	})
	return c.Handler(router)
}

func (api *API) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", viper.GetInt("server.port")),
		Handler:      api.routes(),
		ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
		WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		IdleTimeout:  viper.GetDuration("server.idle_timeout") * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		api.log.Info("http api listening", zap.String("addr", srv.Addr))
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		api.log.Info("shutting down http api...")
		return srv.Shutdown(shutdownCtx)
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
