package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blog-server/confs"
	"blog-server/db"
	"blog-server/handlers"
	httpHandler "blog-server/handlers/http"
	"blog-server/hashing"
	"blog-server/metrics"
	"blog-server/repositories"
	"blog-server/usecases"
	"blog-server/validation"
	"blog-server/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Server struct {
	app *gin.Engine
	db  db.Database
	cfg *confs.Config
	log *logrus.Logger

	feed *ws.Manager
}

func NewServer(cfg *confs.Config, database db.Database, log *logrus.Logger) *Server {
	gin.SetMode(cfg.GinMode)
	validation.Init()

	s := &Server{
		app:  gin.New(),
		db:   database,
		cfg:  cfg,
		log:  log,
		feed: ws.NewManager(log),
	}
	s.routes()
	return s
}

// Router exposes the engine, mainly for tests.
func (s *Server) Router() *gin.Engine { return s.app }

func (s *Server) routes() {
	s.app.Use(gin.Recovery())
	s.app.Use(RequestIDMiddleware())
	if s.cfg.HTTPLogEnabled {
		s.app.Use(LoggerMiddleware(s.log))
	}

	config := cors.DefaultConfig()
	if origins := s.cfg.CORSOrigins(); len(origins) > 0 {
		config.AllowOrigins = origins
	} else {
		config.AllowAllOrigins = true
	}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Request-ID"}
	s.app.Use(cors.New(config))

	m := metrics.New()
	s.app.Use(m.Middleware())

	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "OK",
		})
	})
	s.app.GET("/metrics", m.Handler())

	// Initialize repositories
	blogRepo := repositories.NewBlogPgRepository(s.db)
	userRepo := repositories.NewUserPgRepository(s.db)

	// Initialize use cases
	blogUseCase := usecases.NewBlogUseCase(blogRepo, s.feed)
	userUseCase := usecases.NewUserUseCase(userRepo, hashing.NewBcrypt(s.cfg.BcryptCost), s.feed)

	// Initialize handlers
	blogHandler := httpHandler.NewBlogHandler(blogUseCase, s.log)
	userHandler := httpHandler.NewUserHandler(userUseCase, s.log)
	wsHandler := handlers.NewWSHandler(s.feed, s.log)

	blogs := s.app.Group("/blog")
	{
		blogs.GET("", blogHandler.GetAllBlogs)
		blogs.POST("", blogHandler.CreateBlog)
		blogs.GET("/:id", blogHandler.GetBlog)
		blogs.PUT("/:id", blogHandler.UpdateBlog)
		blogs.DELETE("/:id", blogHandler.DeleteBlog)
	}

	users := s.app.Group("/user")
	{
		users.GET("", userHandler.GetAllUsers)
		users.POST("", userHandler.CreateUser)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
	}

	s.app.GET("/ws", wsHandler.HandleFeed)
	s.app.GET("/ws/subscribers", wsHandler.GetSubscribers)
}

// Start serves until SIGINT/SIGTERM, then drains in-flight requests.
func (s *Server) Start() error {
	srv := &http.Server{Addr: "0.0.0.0:" + s.cfg.Port, Handler: s.app}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("server starting on :%s", s.cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}
	s.log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	s.log.Info("server exited properly")
	return nil
}

func (s *Server) shutdownTimeout() time.Duration {
	if s.cfg.ShutdownTimeout <= 0 {
		return 10 * time.Second
	}
	return s.cfg.ShutdownTimeout
}
