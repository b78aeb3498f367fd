package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"taskboard/internal/config"
	"taskboard/internal/handler"
	"taskboard/internal/middleware"
	"taskboard/internal/session"
	"taskboard/internal/suggest"
	"taskboard/internal/task"
	"taskboard/internal/user"
)

// Sessions idle out after a fraction of the configured TTL; the TTL
// itself is the absolute ceiling.
const idleDivisor = 4

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	var users user.Store = user.NewMemoryStore()
	var tasks task.Store = task.NewMemoryStore()
	if infra.DB != nil {
		users = user.NewPostgresStore(infra.DB)
		tasks = task.NewPostgresStore(infra.DB)
	}

	var sessionStore session.Store = session.NewMemoryStore()
	if infra.Redis != nil {
		sessionStore = session.NewRedisStore(infra.Redis.Client)
	}

	idleTTL := cfg.SessionTTL / idleDivisor
	if idleTTL < time.Minute {
		idleTTL = cfg.SessionTTL
	}
	sessions := session.NewManager(sessionStore, idleTTL, cfg.SessionTTL)

	engine := suggest.New(cfg.OpenAIAPIKey, cfg.OpenAIModel)

	authMiddleware := middleware.NewAuthMiddleware(sessions)

	apiHandler := handler.NewHandler(
		users,
		tasks,
		sessions,
		engine,
		cfg.CookieSecure,
	)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLog())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	apiHandler.RegisterRoutes(router, authMiddleware)

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		if infra.DB != nil {
			return infra.DB.Close()
		}
		return nil
	}, nil
}
