package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/healthsure/premium-api/models"
	"github.com/healthsure/premium-api/services"
	"github.com/healthsure/premium-api/services/cache"
	"github.com/healthsure/premium-api/services/monitoring/logging"
	"github.com/healthsure/premium-api/services/monitoring/tasks"
	"github.com/healthsure/premium-api/services/premium"
	"github.com/healthsure/premium-api/utils"
)

type Server struct {
	router    *gin.Engine
	config    *utils.Config
	logger    *logging.Logger
	store     *services.RedisService
	rating    *premium.PremiumService
	scheduler *tasks.TaskScheduler
}

func NewServer(envPath string) *Server {
	c, err := utils.LoadConfig(envPath)
	if err != nil {
		panic(fmt.Sprintf("Could not load config: %v", err))
	}

	l := logging.NewLogger()

	store, err := services.NewRedisService(&services.RedisConfig{
		Host:     c.RedisHost,
		Port:     c.RedisPort,
		Password: c.RedisPassword,
		DB:       c.RedisDB,
	})
	if err != nil {
		panic(fmt.Sprintf("Could not connect to Redis: %v", err))
	}

	rating := premium.NewPremiumService(store, cache.NewQuoteCache(), l, c.PremiumTablePath)

	g := gin.Default()
	g.Use(CORSMiddleware())
	g.Use(RequestIDMiddleware())
	g.Use(l.LoggingMiddleware())

	return &Server{
		router:    g,
		config:    c,
		logger:    l,
		store:     store,
		rating:    rating,
		scheduler: tasks.NewTaskScheduler(l),
	}
}

func (s *Server) Start() {
	s.registerRoutes()
	s.bootstrapMatrix()

	s.router.Run(fmt.Sprintf(":%v", s.config.ListenPort))
}

func (s *Server) registerRoutes() {
	s.router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, models.NewStatus("premium rating api"))
	})

	/// Register Object Routers Below
	Premium{}.router(s)
}

// bootstrapMatrix loads the rating matrix at startup when the store is
// empty and, when configured, keeps re-loading it on an interval.
// Failures of the scheduled loads land on the tasks' error channels and
// in the logs.
func (s *Server) bootstrapMatrix() {
	if _, err := s.scheduler.AddTask("matrix-load", "initial matrix load", s.loadMatrixIfEmpty, 0); err != nil {
		s.logger.Error(fmt.Sprintf("registering matrix load: %v", err))
		return
	}
	if err := s.scheduler.RunTask("matrix-load"); err != nil {
		s.logger.Error(fmt.Sprintf("running matrix load: %v", err))
	}

	if s.config.TableRefreshMinutes > 0 {
		interval := time.Duration(s.config.TableRefreshMinutes) * time.Minute
		if _, err := s.scheduler.AddTask("matrix-refresh", "recurring matrix refresh", func(ctx context.Context) error {
			return s.rating.Load(ctx)
		}, interval); err != nil {
			s.logger.Error(fmt.Sprintf("registering matrix refresh: %v", err))
			return
		}
		if err := s.scheduler.ScheduleTask("matrix-refresh", interval); err != nil {
			s.logger.Error(fmt.Sprintf("scheduling matrix refresh: %v", err))
		}
	}
}

// loadMatrixIfEmpty loads the workbook unless rating rows are already
// present, so a restart never clobbers a populated store.
func (s *Server) loadMatrixIfEmpty(ctx context.Context) error {
	loaded, err := s.rating.Loaded(ctx)
	if err != nil {
		return err
	}
	if loaded {
		return nil
	}
	return s.rating.Load(ctx)
}
