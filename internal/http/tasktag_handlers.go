package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfinder/internal/domain"
)

func (h *Handler) createTaskTag(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req createTaskTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	taskTag, err := h.taskTags.Create(c.Request.Context(), callerID, req.TaskID, req.TagID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Location", "/api/tasktags/"+itoa(taskTag.ID))
	c.JSON(http.StatusCreated, taskTagToResponse(*taskTag))
}

func (h *Handler) listTaskTags(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}

	taskTags, err := h.taskTags.List(c.Request.Context(), callerID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, taskTagsToResponse(taskTags))
}

func (h *Handler) listTaskTagsByTask(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}
	taskID, ok := idParam(c, "taskId")
	if !ok {
		return
	}

	taskTags, err := h.taskTags.ListByTask(c.Request.Context(), callerID, taskID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, taskTagsToResponse(taskTags))
}

func (h *Handler) listTaskTagsByTag(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}
	tagID, ok := idParam(c, "tagId")
	if !ok {
		return
	}

	taskTags, err := h.taskTags.ListByTag(c.Request.Context(), callerID, tagID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, taskTagsToResponse(taskTags))
}

func (h *Handler) getTaskTag(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	taskTag, err := h.taskTags.Get(c.Request.Context(), callerID, id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, taskTagToResponse(*taskTag))
}

func (h *Handler) deleteTaskTag(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.taskTags.Delete(c.Request.Context(), callerID, id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func taskTagsToResponse(taskTags []domain.TaskTag) []TaskTagResponse {
	resp := make([]TaskTagResponse, len(taskTags))
	for i := range taskTags {
		resp[i] = taskTagToResponse(taskTags[i])
	}
	return resp
}
