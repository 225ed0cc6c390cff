package httpserver

import (
	"errors"
	"net/http"

	authsvc "qkart/internal/service/auth"
	"github.com/gin-gonic/gin"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *handlers) register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.deps.AuthSvc.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if failValidation(c, err) {
			return
		}
		if errors.Is(err, authsvc.ErrUsernameTaken) {
			fail(c, http.StatusBadRequest, "Username already exists")
			return
		}
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}

func (h *handlers) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	u, token, err := h.deps.AuthSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authsvc.ErrUnknownUser):
			fail(c, http.StatusBadRequest, "Username does not exist")
		case errors.Is(err, authsvc.ErrWrongPassword):
			fail(c, http.StatusBadRequest, "Password is incorrect")
		default:
			h.serverError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"token":    token,
		"username": u.Username,
		"balance":  u.Balance,
	})
}
