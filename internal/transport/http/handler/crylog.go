package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"weepify/internal/app"
	"weepify/internal/transport/http/middleware"
	"weepify/internal/transport/http/response"
)

type CryLogHandler struct {
	logService *app.CryLogService
}

type CreateCryLogRequest struct {
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Intensity       string `json:"intensity"`
	MoodAfter       string `json:"mood_after"`
	Reason          string `json:"reason"`
}

type UpdateCryLogRequest struct {
	DurationMinutes *int    `json:"duration_minutes"`
	Intensity       *string `json:"intensity"`
	MoodAfter       *string `json:"mood_after"`
	Reason          *string `json:"reason"`
}

func NewCryLogHandler(logService *app.CryLogService) *CryLogHandler {
	return &CryLogHandler{logService: logService}
}

func (h *CryLogHandler) Create(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	var req CreateCryLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	cryLog, err := h.logService.Create(app.CryLogInput{
		UserID:          userID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		Intensity:       req.Intensity,
		MoodAfter:       req.MoodAfter,
		Reason:          req.Reason,
	})
	if err != nil {
		switch {
		case isValidationError(err):
			response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, err.Error())
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "create cry log failed")
		}
		return
	}

	c.JSON(http.StatusCreated, response.APIResponse{
		Code:    response.CodeOK,
		Message: "ok",
		Data:    cryLog,
	})
}

func (h *CryLogHandler) List(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	logs, err := h.logService.List(userID)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list cry logs failed")
		}
		return
	}

	response.OK(c, gin.H{
		"logs":  logs,
		"count": len(logs),
	})
}

func (h *CryLogHandler) Get(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	logID, ok := parseIDParam(c)
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid cry log id")
		return
	}

	cryLog, err := h.logService.Get(userID, logID)
	if err != nil {
		h.respondCryLogError(c, err, "get cry log failed")
		return
	}

	response.OK(c, cryLog)
}

func (h *CryLogHandler) ListByDate(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	date := c.Param("date")
	logs, err := h.logService.ListByDate(userID, date)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidDate):
			response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, err.Error())
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list cry logs by date failed")
		}
		return
	}

	response.OK(c, gin.H{
		"date":  date,
		"logs":  logs,
		"count": len(logs),
	})
}

func (h *CryLogHandler) Update(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	logID, ok := parseIDParam(c)
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid cry log id")
		return
	}

	var req UpdateCryLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	cryLog, err := h.logService.Update(userID, logID, app.UpdateCryLogInput{
		DurationMinutes: req.DurationMinutes,
		Intensity:       req.Intensity,
		MoodAfter:       req.MoodAfter,
		Reason:          req.Reason,
	})
	if err != nil {
		h.respondCryLogError(c, err, "update cry log failed")
		return
	}

	response.OK(c, cryLog)
}

func (h *CryLogHandler) Delete(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	logID, ok := parseIDParam(c)
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid cry log id")
		return
	}

	if err := h.logService.Delete(userID, logID); err != nil {
		h.respondCryLogError(c, err, "delete cry log failed")
		return
	}

	response.OK(c, gin.H{"deleted_log_id": logID})
}

func (h *CryLogHandler) respondCryLogError(c *gin.Context, err error, fallback string) {
	switch {
	case isValidationError(err):
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, err.Error())
	case errors.Is(err, app.ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
	case errors.Is(err, app.ErrCryLogNotFound):
		response.Error(c, http.StatusNotFound, response.CodeCryLogNotFound, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, fallback)
	}
}

// isValidationError reports whether err is one of the user-correctable
// rejection reasons, as opposed to a store failure.
func isValidationError(err error) bool {
	return errors.Is(err, app.ErrMissingField) ||
		errors.Is(err, app.ErrInvalidIntensity) ||
		errors.Is(err, app.ErrInvalidDuration) ||
		errors.Is(err, app.ErrInvalidDate) ||
		errors.Is(err, app.ErrFutureDate) ||
		errors.Is(err, app.ErrInvalidTime)
}

func getUserIDFromContext(c *gin.Context) (uint, bool) {
	userIDAny, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := userIDAny.(uint)
	if !ok || userID == 0 {
		return 0, false
	}
	return userID, true
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id64 == 0 {
		return 0, false
	}
	return uint(id64), true
}
