package bonus

import (
	"net/http"
	"strconv"

	"sahl/internal/shared/apperror"
	"sahl/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(s Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("bonus.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("bonus.handler")
	}
	return &Handler{service: s, logger: l}
}

func callerFromContext(c *gin.Context) Caller {
	caller := Caller{}
	if v, ok := c.Get("user_id"); ok {
		if id, err := uuid.Parse(v.(string)); err == nil {
			caller.UserID = id
		}
	}
	if v, ok := c.Get("branch_id"); ok {
		if id, err := uuid.Parse(v.(string)); err == nil {
			caller.BranchID = id
		}
	}
	if v, ok := c.Get("role"); ok {
		caller.Role, _ = v.(string)
	}
	return caller
}

func (h *Handler) CreateRule(c *gin.Context) {
	var req CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.CreateRule(c.Request.Context(), callerFromContext(c), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetRules(c *gin.Context) {
	resp, err := h.service.GetRules(c.Request.Context(), callerFromContext(c), c.Query("branch_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateRule(c *gin.Context) {
	var req UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.UpdateRule(c.Request.Context(), callerFromContext(c), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeleteRule(c *gin.Context) {
	if err := h.service.DeleteRule(c.Request.Context(), callerFromContext(c), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) MonthlySummary(c *gin.Context) {
	employeeID := c.Query("employee_id")
	year, errYear := strconv.Atoi(c.Query("year"))
	month, errMonth := strconv.Atoi(c.Query("month"))
	if employeeID == "" || errYear != nil || errMonth != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "employee_id, year and month are required", nil)
		return
	}

	resp, err := h.service.MonthlySummary(c.Request.Context(), callerFromContext(c), employeeID, year, month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("bonus request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}
