package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/middleware"
	"taskboard/internal/session"
	"taskboard/internal/suggest"
	"taskboard/internal/task"
	"taskboard/internal/user"
)

type Handler struct {
	users        user.Store
	tasks        task.Store
	sessions     *session.Manager
	suggestions  *suggest.Engine
	cookieSecure bool
}

func NewHandler(
	users user.Store,
	tasks task.Store,
	sessions *session.Manager,
	suggestions *suggest.Engine,
	cookieSecure bool,
) *Handler {
	return &Handler{
		users:        users,
		tasks:        tasks,
		sessions:     sessions,
		suggestions:  suggestions,
		cookieSecure: cookieSecure,
	}
}

// RegisterRoutes mounts the public auth routes and the protected API
// group. Everything under /api except register/login requires a
// valid session.
func (h *Handler) RegisterRoutes(r *gin.Engine, auth *middleware.AuthMiddleware) {
	r.POST("/api/register", h.Register)
	r.POST("/api/login", h.Login)

	api := r.Group("/api")
	api.Use(middleware.GinRequireAuth(auth))

	api.POST("/logout", h.Logout)
	api.GET("/user", h.CurrentUser)

	api.GET("/tasks", h.ListTasks)
	api.POST("/tasks", h.CreateTask)
	api.PATCH("/tasks/:id", h.UpdateTask)
	api.DELETE("/tasks/:id", h.DeleteTask)

	api.POST("/suggestions", h.Suggestions)
}

func (h *Handler) cookieOptions() session.CookieOptions {
	return session.CookieOptions{
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *Handler) Logout(c *gin.Context) {

	// 1. Read session cookie (same pattern as auth middleware)
	cookie, err := c.Request.Cookie(session.CookieName)
	if err == nil && cookie.Value != "" {
		// 2. Revoke session (best-effort, idempotent)
		_ = h.sessions.Revoke(c.Request.Context(), cookie.Value)
	}

	// 3. Clear cookie
	session.ClearCookie(c.Writer, h.cookieOptions())

	// 4. Idempotent response
	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}

func (h *Handler) CurrentUser(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	u, err := h.users.FindByID(c.Request.Context(), userID)
	if err != nil {
		// Session points at a user the directory no longer knows.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	c.JSON(http.StatusOK, u)
}
