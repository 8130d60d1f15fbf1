package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.authSvc.Register(c.Request.Context(), req.Email, req.Password, req.Color1, req.Color2, req.Color3)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Location", "/api/users/"+itoa(user.ID))
	c.JSON(http.StatusCreated, authResponse{
		Token:     token,
		ExpiresAt: h.tokens.ExpirationTime().Format(time.RFC3339),
		User:      userToResponse(*user),
	})
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, authResponse{
		Token:     token,
		ExpiresAt: h.tokens.ExpirationTime().Format(time.RFC3339),
		User:      userToResponse(*user),
	})
}

func (h *Handler) changePassword(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authSvc.ChangePassword(c.Request.Context(), callerID, req.CurrentPassword, req.NewPassword); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
