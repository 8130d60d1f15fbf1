package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfinder/internal/service"
)

func (h *Handler) createRecord(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req createRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.records.Create(c.Request.Context(), callerID, service.NewRecord{
		TaskID:       req.TaskID,
		FinishedDate: req.FinishedDate,
		Status:       req.Status,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Location", "/api/records/"+itoa(record.ID))
	c.JSON(http.StatusCreated, recordToResponse(*record))
}

func (h *Handler) listRecords(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}

	records, err := h.records.List(c.Request.Context(), callerID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := make([]RecordResponse, len(records))
	for i := range records {
		resp[i] = recordToResponse(records[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) listRecordsByTask(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}
	taskID, ok := idParam(c, "taskId")
	if !ok {
		return
	}

	records, err := h.records.ListByTask(c.Request.Context(), callerID, taskID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := make([]RecordResponse, len(records))
	for i := range records {
		resp[i] = recordToResponse(records[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getRecord(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	record, err := h.records.Get(c.Request.Context(), callerID, id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, recordToResponse(*record))
}

func (h *Handler) updateRecord(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req updateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.records.Update(c.Request.Context(), callerID, id, service.RecordUpdate{
		FinishedDate: req.FinishedDate,
		Status:       req.Status,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, recordToResponse(*record))
}

func (h *Handler) deleteRecord(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.records.Delete(c.Request.Context(), callerID, id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
