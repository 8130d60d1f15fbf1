package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wayfinder/internal/service"
)

func (h *Handler) getCurrentUser(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.users.Me(c.Request.Context(), callerID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, userToResponse(*user))
}

func (h *Handler) getUser(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	user, err := h.users.Get(c.Request.Context(), callerID, id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, userToResponse(*user))
}

func (h *Handler) updateUser(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Update(c.Request.Context(), callerID, id, service.UserUpdate{
		Email:    req.Email,
		Password: req.Password,
		Color1:   req.Color1,
		Color2:   req.Color2,
		Color3:   req.Color3,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, userToResponse(*user))
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
