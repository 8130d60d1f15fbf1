package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfinder/internal/service"
)

func (h *Handler) createTask(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	task, err := h.tasks.Create(c.Request.Context(), callerID, service.NewTask{
		Title:                    req.Title,
		RefreshInterval:          req.RefreshInterval,
		AlertThresholdPercentage: req.AlertThresholdPercentage,
		IsActive:                 isActive,
		InitialRefreshInterval:   req.InitialRefreshInterval,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Location", "/api/tasks/"+itoa(task.ID))
	c.JSON(http.StatusCreated, taskToResponse(*task))
}

func (h *Handler) listTasks(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}

	tasks, err := h.tasks.List(c.Request.Context(), callerID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := make([]TaskResponse, len(tasks))
	for i := range tasks {
		resp[i] = taskToResponse(tasks[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getTask(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	task, err := h.tasks.Get(c.Request.Context(), callerID, id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, taskToResponse(*task))
}

func (h *Handler) updateTask(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), callerID, id, service.TaskUpdate{
		Title:                    req.Title,
		RefreshInterval:          req.RefreshInterval,
		AlertThresholdPercentage: req.AlertThresholdPercentage,
		IsActive:                 req.IsActive,
		InitialRefreshInterval:   req.InitialRefreshInterval,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, taskToResponse(*task))
}

func (h *Handler) deleteTask(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), callerID, id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
