package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfinder/internal/service"
)

func (h *Handler) createTag(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req createTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := h.tags.Create(c.Request.Context(), callerID, service.NewTag{
		Name:   req.Name,
		TaskID: req.TaskID,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Location", "/api/tags/"+itoa(tag.ID))
	c.JSON(http.StatusCreated, tagToResponse(*tag))
}

func (h *Handler) listTags(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}

	tags, err := h.tags.List(c.Request.Context(), callerID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := make([]TagResponse, len(tags))
	for i := range tags {
		resp[i] = tagToResponse(tags[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) listTagsByTask(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}
	taskID, ok := idParam(c, "taskId")
	if !ok {
		return
	}

	tags, err := h.tags.ListByTask(c.Request.Context(), callerID, taskID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := make([]TagResponse, len(tags))
	for i := range tags {
		resp[i] = tagToResponse(tags[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getTag(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	tag, err := h.tags.Get(c.Request.Context(), callerID, id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tagToResponse(*tag))
}

func (h *Handler) updateTag(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req updateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := h.tags.Update(c.Request.Context(), callerID, id, service.TagUpdate{
		Name:   req.Name,
		TaskID: req.TaskID,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tagToResponse(*tag))
}

func (h *Handler) deleteTag(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.tags.Delete(c.Request.Context(), callerID, id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
