package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/auth/credentials"
	"taskboard/internal/logger"
	"taskboard/internal/session"
	"taskboard/internal/user"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
)

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r registerRequest) validate() string {
	if len(r.Username) < minUsernameLen {
		return "username must be at least 3 characters"
	}
	if len(r.Password) < minPasswordLen {
		return "password must be at least 6 characters"
	}
	return ""
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	hash, err := credentials.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	u, err := h.users.Create(c.Request.Context(), req.Username, hash)
	if err != nil {
		if errors.Is(err, user.ErrDuplicateUsername) {
			c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
			return
		}
		logger.Error("user create failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	// Registration doubles as login: issue a session right away.
	sess, err := h.sessions.Issue(c.Request.Context(), u.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session error"})
		return
	}

	session.SetCookie(c.Writer, sess.SessionID, sess.AbsoluteExpiresAt, h.cookieOptions())

	c.JSON(http.StatusOK, u)
}
