package request

import (
	"context"
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
	l := zap.L().Named("request.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("request.handler")
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

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), callerFromContext(c), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), callerFromContext(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	list, err := h.service.GetAll(c.Request.Context(), callerFromContext(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	total := len(list)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	meta := response.NewPaginationMeta(int64(total), page, pageSize)
	response.Success(c, http.StatusOK, list[start:end], &meta)
}

func (h *Handler) Review(c *gin.Context) {
	h.runTransition(c, h.service.Review)
}

func (h *Handler) Approve(c *gin.Context) {
	h.runTransition(c, h.service.Approve)
}

func (h *Handler) Reject(c *gin.Context) {
	h.runTransition(c, h.service.Reject)
}

func (h *Handler) runTransition(
	c *gin.Context,
	fn func(ctx context.Context, caller Caller, id string, input ReviewRequestRequest) (*RequestResponse, error),
) {
	var input ReviewRequestRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", apperror.MapValidationError(err))
			return
		}
	}

	resp, err := fn(c.Request.Context(), callerFromContext(c), c.Param("id"), input)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("hr request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}
