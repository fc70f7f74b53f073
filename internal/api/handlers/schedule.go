package handlers

import (
	"errors"
	"net/http"

	apperrors "team-schedule-backend/internal/errors"
	"team-schedule-backend/internal/logger"
	"team-schedule-backend/internal/schedule"
	"team-schedule-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ScheduleHandler handles HTTP requests for the schedule document
type ScheduleHandler struct {
	scheduleService service.ScheduleServiceInterface
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(scheduleService service.ScheduleServiceInterface) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
	}
}

// GetSchedule handles GET /schedule
// @Summary Read the schedule document
// @Description Get the full schedule document, creating an empty one on first read
// @Tags schedule
// @Produce json
// @Success 200 {object} schedule.Document "Current document"
// @Failure 500 {object} map[string]interface{} "Read failed"
// @Security BearerAuth
// @Router /schedule [get]
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	doc, err := h.scheduleService.GetDocument()
	if err != nil {
		logger.WithContext(c.Request.Context()).WithError(err).Error("schedule read failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "read_failed"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// SaveSchedule handles POST /schedule
// @Summary Replace the schedule document
// @Description Validate a partial document and replace the stored one wholesale
// @Tags schedule
// @Accept json
// @Produce json
// @Param force query bool false "Overwrite even when the updatedAt token is stale"
// @Param request body schedule.DocumentPatch true "Partial document"
// @Success 200 {object} map[string]interface{} "Write accepted"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 409 {object} map[string]interface{} "Document changed since the client read it"
// @Failure 500 {object} map[string]interface{} "Write failed"
// @Security BearerAuth
// @Router /schedule [post]
func (h *ScheduleHandler) SaveSchedule(c *gin.Context) {
	var patch schedule.DocumentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": schedule.CodeInvalidBody})
		return
	}
	force := c.Query("force") == "1" || c.Query("force") == "true"

	updatedAt, err := h.scheduleService.SaveDocument(patch, force)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "updatedAt": updatedAt})
}

// UpdateAgents handles POST /schedule/agents
// @Summary Upsert agents
// @Description Merge agents by id into the roster without touching schedule data
// @Tags schedule
// @Accept json
// @Produce json
// @Param request body service.AgentsUpdateRequest true "Agents to upsert"
// @Success 200 {object} map[string]interface{} "Write accepted"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 500 {object} map[string]interface{} "Write failed"
// @Security BearerAuth
// @Router /schedule/agents [post]
func (h *ScheduleHandler) UpdateAgents(c *gin.Context) {
	var req service.AgentsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": schedule.CodeInvalidBody})
		return
	}

	updatedAt, err := h.scheduleService.UpsertAgents(&req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "updatedAt": updatedAt})
}

// BatchShifts handles POST /schedule/shifts
// @Summary Apply a shift batch
// @Description Delete and upsert shifts by id without revalidating other record kinds
// @Tags schedule
// @Accept json
// @Produce json
// @Param request body service.ShiftBatchRequest true "Shift deletes and upserts"
// @Success 200 {object} map[string]interface{} "Write accepted"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 500 {object} map[string]interface{} "Write failed"
// @Security BearerAuth
// @Router /schedule/shifts [post]
func (h *ScheduleHandler) BatchShifts(c *gin.Context) {
	var req service.ShiftBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": schedule.CodeInvalidBody})
		return
	}

	updatedAt, err := h.scheduleService.ApplyShiftBatch(&req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "updatedAt": updatedAt})
}

// writeError maps the service error taxonomy onto the wire contract.
func (h *ScheduleHandler) writeError(c *gin.Context, err error) {
	var shapeErrs *schedule.ValidationErrors
	if errors.As(err, &shapeErrs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": schedule.CodeInvalidBody, "details": shapeErrs.Details})
		return
	}

	var mappingErr *schedule.MappingConflictError
	if errors.As(err, &mappingErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": schedule.CodeMappingConflict, "details": mappingErr.Conflict})
		return
	}

	var dupErr *schedule.DuplicateIDError
	if errors.As(err, &dupErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": dupErr.Code, "id": dupErr.ID})
		return
	}

	var conflictErr *apperrors.ConflictError
	if errors.As(err, &conflictErr) {
		c.JSON(http.StatusConflict, gin.H{"error": "conflict", "prevUpdatedAt": conflictErr.PrevUpdatedAt})
		return
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": schedule.CodeInvalidBody})
		return
	}

	logger.WithContext(c.Request.Context()).WithError(err).Error("schedule write failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "write_failed"})
}
