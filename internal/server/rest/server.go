// Package rest exposes the authentication service over HTTP/JSON.
// Routes: POST /register, POST /login, and GET /api/profile behind
// bearer-token middleware.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/authgate/internal/logging"
	"github.com/dmitrijs2005/authgate/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type RESTServer struct {
	address   string
	users     *services.UserService
	logger    logging.Logger
	jwtSecret []byte
}

func NewRESTServer(a string, l logging.Logger, us *services.UserService, secretKey string) (*RESTServer, error) {
	return &RESTServer{
		address:   a,
		logger:    l.With("module", "rest_server"),
		users:     us,
		jwtSecret: []byte(secretKey),
	}, nil
}

// setupRouter wires middleware and routes. Split out so handler tests can
// drive the router without a listening socket.
func (s *RESTServer) setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.POST("/register", s.registerHandler)
	router.POST("/login", s.loginHandler)

	protected := router.Group("/api").Use(s.authMiddleware())
	{
		protected.GET("/profile", s.profileHandler)
	}

	return router
}

// Handler returns the fully wired HTTP handler. Exposed so tests can serve
// the API without binding a socket.
func (s *RESTServer) Handler() http.Handler {
	return s.setupRouter()
}

func (s *RESTServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.setupRouter(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
