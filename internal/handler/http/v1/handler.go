package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/vatsav/emergency_dispatch_system/internal/apperrors"
	"github.com/vatsav/emergency_dispatch_system/internal/broadcast"
	"github.com/vatsav/emergency_dispatch_system/internal/config"
	"github.com/vatsav/emergency_dispatch_system/internal/service"
)

// generativeLanguageModelsURL - эндпоинт для диагностической проверки
// связности с generative-language API.
const generativeLanguageModelsURL = "https://generativelanguage.googleapis.com/v1beta/models"

type Handler struct {
	emergencyService service.EmergencyService
	callLogService   service.CallLogService
	hub              *broadcast.Hub
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(emergencyService service.EmergencyService, callLogService service.CallLogService, hub *broadcast.Hub, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		emergencyService: emergencyService,
		callLogService:   callLogService,
		hub:              hub,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// @Summary Get all emergencies
// @Description Get all emergencies ordered by reported time, newest first.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Success 200 {array} EmergencyResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies [get]
func (h *Handler) listEmergencies(c *gin.Context) {
	log := h.logger.WithField("method", "listEmergencies")

	emergencies, err := h.emergencyService.ListEmergencies(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list emergencies from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToEmergencyResponses(emergencies))
}

// @Summary Create a new emergency
// @Description Create a new emergency. Triggers a CREATE broadcast to live clients.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Param emergency body CreateEmergencyRequest true "Emergency creation request"
// @Success 201 {object} EmergencyResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies [post]
func (h *Handler) createEmergency(c *gin.Context) {
	var input CreateEmergencyRequest
	log := h.logger.WithField("method", "createEmergency")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToEmergencyModel(input)
	if err := h.emergencyService.CreateEmergency(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create emergency in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToEmergencyResponse(model))
}

// @Summary Update an existing emergency
// @Description Full replace of an emergency by ID. Triggers an UPDATE broadcast to live clients.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Param id path string true "Emergency ID"
// @Param emergency body UpdateEmergencyRequest true "Emergency update request"
// @Success 200 {object} EmergencyResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Emergency not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies/{id} [put]
func (h *Handler) updateEmergency(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateEmergency").WithField("id", id)

	var input UpdateEmergencyRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToEmergencyModel(input)
	model.ID = id

	updated, err := h.emergencyService.UpdateEmergency(c.Request.Context(), model)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			log.WithError(err).Warn("Emergency not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "emergency not found"})
			return
		}
		log.WithError(err).Error("Failed to update emergency in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToEmergencyResponse(updated))
}

// @Summary Delete an emergency
// @Description Delete an emergency by its ID. Deletion is destructive. Triggers a DELETE broadcast to live clients.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Param id path string true "Emergency ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Emergency not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies/{id} [delete]
func (h *Handler) deleteEmergency(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "deleteEmergency").WithField("id", id)

	if err := h.emergencyService.DeleteEmergency(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			log.WithError(err).Warn("Emergency not found for delete")
			c.JSON(http.StatusNotFound, gin.H{"error": "emergency not found"})
			return
		}
		log.WithError(err).Error("Failed to delete emergency in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get all call logs
// @Description Get all analyzed call logs ordered by creation time, newest first.
// @Tags Calls
// @Accept json
// @Produce json
// @Success 200 {array} CallLogResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /calls [get]
func (h *Handler) listCallLogs(c *gin.Context) {
	log := h.logger.WithField("method", "listCallLogs")

	logs, err := h.callLogService.ListCallLogs(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list call logs from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToCallLogResponses(logs))
}

// @Summary Analyze a call transcript
// @Description Classify a call transcript into a triage verdict via the external model and persist the result.
// @Tags Calls
// @Accept json
// @Produce json
// @Param call body AnalyzeCallRequest true "Call transcript and emotion signals"
// @Success 201 {object} CallLogResponse
// @Failure 400 {object} map[string]string "Transcript empty or request malformed"
// @Failure 500 {object} AnalyzeErrorResponse "Classifier or persistence failure"
// @Router /calls/analyze [post]
func (h *Handler) analyzeCall(c *gin.Context) {
	var input AnalyzeCallRequest
	log := h.logger.WithField("method", "analyzeCall")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	callLog, err := h.callLogService.AnalyzeCall(c.Request.Context(), input.Transcript, input.Emotions)
	if err != nil {
		h.writeAnalyzeError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, ModelToCallLogResponse(callLog))
}

// writeAnalyzeError отображает ошибку конвейера анализа в HTTP-ответ.
// Полная цепочка причин логируется на сервере; клиенту уходят только
// безопасные сообщения, ошибки хранилища не раскрываются вовсе.
func (h *Handler) writeAnalyzeError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		log.WithError(err).Warn("Analyze request rejected")
		c.JSON(http.StatusBadRequest, gin.H{"error": "transcript is required"})
	case errors.Is(err, apperrors.ErrUpstreamUnavailable):
		log.WithError(err).Error("Classifier upstream unavailable")
		c.JSON(http.StatusInternalServerError, AnalyzeErrorResponse{
			Error:   "server error during analysis",
			Details: apperrors.ErrUpstreamUnavailable.Error(),
			Cause:   err.Error(),
		})
	case errors.Is(err, apperrors.ErrClassification):
		log.WithError(err).Error("Classifier returned unusable output")
		c.JSON(http.StatusInternalServerError, AnalyzeErrorResponse{
			Error:   "server error during analysis",
			Details: apperrors.ErrClassification.Error(),
			Cause:   "no specific cause available",
		})
	default:
		log.WithError(err).Error("Failed to persist analysis result")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Check upstream classifier connectivity
// @Description Probe the generative language API endpoint for reachability diagnostics.
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Upstream reachable"
// @Failure 500 {object} map[string]string "Upstream unreachable"
// @Router /system/upstream [get]
func (h *Handler) upstreamCheck(c *gin.Context) {
	log := h.logger.WithField("method", "upstreamCheck")

	client := &http.Client{Timeout: 5 * time.Second}
	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, generativeLanguageModelsURL, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to build upstream request"})
		return
	}

	resp, err := client.Do(req)
	if err != nil {
		log.WithError(err).Warn("Upstream connectivity probe failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "failed to reach generative language API",
			"error":   err.Error(),
		})
		return
	}
	defer resp.Body.Close()

	c.JSON(http.StatusOK, gin.H{
		"message": "generative language API reachable",
		"status":  resp.Status,
	})
}
