// internal/app/server.go
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"hotpromo-service/internal/config"
	"hotpromo-service/internal/db"
	cfgHandler "hotpromo-service/internal/handlers/cfg"
	editorHandler "hotpromo-service/internal/handlers/editor"
	"hotpromo-service/internal/middleware"
	"hotpromo-service/internal/repository/memory"
	"hotpromo-service/internal/repository/redisstore"
	editorUsecase "hotpromo-service/internal/service/editor"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const purgeInterval = 10 * time.Minute

type Server struct {
	cfg        config.AppConfig
	engine     *gin.Engine
	httpServer *http.Server

	// Set by Start, released by Shutdown.
	mu          sync.Mutex
	logger      *zap.Logger
	redisClient *redis.Client
	memoryRepo  *memory.SessionRepository
	stopPurge   context.CancelFunc
}

func NewServer() *Server {
	cfg := config.Load()
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	return &Server{
		cfg:    cfg,
		engine: engine,
		httpServer: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Start wires the editor and serves HTTP until Shutdown is called.
func (s *Server) Start() error {
	// ----- Logger -----
	logger, err := newLogger(s.cfg)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	s.mu.Lock()
	s.logger = logger

	// ----- Session store -----
	store, err := s.sessionStore()
	if err != nil {
		s.mu.Unlock()
		return err
	}

	// ----- Services (Usecases) -----
	editorService := editorUsecase.NewEditorService(store, logger)

	purgeCtx, cancel := context.WithCancel(context.Background())
	s.stopPurge = cancel
	go s.purgeLoop(purgeCtx, editorService, s.memoryRepo)
	s.mu.Unlock()

	// ----- Handlers -----
	handlers := &Handlers{
		EditorHandler: editorHandler.NewEditorHandler(editorService),
		CfgHandler:    cfgHandler.NewCfgHandler(),
	}

	// ----- Middlewares -----
	s.engine.Use(
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(logger),
		middleware.RecoveryMiddleware(logger),
		middleware.CORSMiddleware(s.cfg.CORSOrigins),
	)

	// ----- Router -----
	SetupRouter(s.engine, logger, handlers)

	// ----- Start HTTP -----
	logger.Info("server running",
		zap.String("addr", s.cfg.HTTPAddr),
		zap.String("session_store", s.cfg.SessionStore),
		zap.Duration("session_ttl", s.cfg.SessionTTL),
	)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and releases the session store.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopPurge != nil {
		s.stopPurge()
	}
	if s.redisClient != nil {
		if cerr := s.redisClient.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if s.logger != nil {
		_ = s.logger.Sync()
	}
	return err
}

// sessionStore must be called with s.mu held.
func (s *Server) sessionStore() (editorUsecase.SessionRepository, error) {
	switch s.cfg.SessionStore {
	case config.SessionStoreRedis:
		client, err := db.NewRedisClient(db.RedisConfig{
			Addresses: []string{s.cfg.RedisAddr},
			Password:  s.cfg.RedisPass,
			DB:        s.cfg.RedisDB,
			PoolSize:  10,
		})
		if err != nil {
			return nil, err
		}
		s.redisClient = client
		s.logger.Info("redis connected", zap.String("addr", s.cfg.RedisAddr))
		return redisstore.NewSessionRepository(client, s.cfg.SessionTTL), nil

	case config.SessionStoreMemory:
		s.memoryRepo = memory.NewSessionRepository(s.cfg.SessionTTL)
		return s.memoryRepo, nil

	default:
		return nil, fmt.Errorf("unknown SESSION_STORE %q", s.cfg.SessionStore)
	}
}

// purgeLoop evicts idle in-memory sessions (Redis expires them on its own)
// and drops editor locks of sessions that are gone. repo is nil for Redis.
func (s *Server) purgeLoop(ctx context.Context, editorService *editorUsecase.EditorService, repo *memory.SessionRepository) {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if repo != nil {
				if n := repo.PurgeExpired(ctx); n > 0 {
					s.logger.Info("expired sessions purged", zap.Int("count", n))
				}
			}
			if n := editorService.PruneLocks(ctx); n > 0 {
				s.logger.Debug("session locks pruned", zap.Int("count", n))
			}
		}
	}
}

func newLogger(cfg config.AppConfig) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
