package leave

import (
	"errors"
	"io"
	"net/http"

	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/contextutil"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := response.FromError(c, err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
		zap.Error(err),
	)
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	h.logger.Warn("http leave form validation failed", zap.Error(err))
	response.FromError(c, apperror.MapValidationError(err))
}

// formID reads :id and tags the request context with it for logging.
func formID(c *gin.Context) string {
	id := c.Param("id")
	c.Request = c.Request.WithContext(contextutil.WithFormID(c.Request.Context(), id))
	return id
}

func (h *Handler) Open(c *gin.Context) {
	resp, err := h.service.Open(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Get(c *gin.Context) {
	id := formID(c)

	resp, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateField(c *gin.Context) {
	id := formID(c)

	var req UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.UpdateField(c.Request.Context(), id, req.Name, req.Value)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Submit(c *gin.Context) {
	id := formID(c)
	h.logger.Debug("http submit leave", zap.String("form_id", id))

	// body opsional; chunked body juga dibaca
	var req *SubmitLeaveRequest
	if c.Request.Body != nil && c.Request.Body != http.NoBody {
		req = &SubmitLeaveRequest{}
		if err := c.ShouldBindJSON(req); err != nil {
			if !errors.Is(err, io.EOF) {
				h.writeBindError(c, err)
				return
			}
			req = nil
		}
	}

	resp, err := h.service.Submit(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ToggleDetails(c *gin.Context) {
	id := formID(c)

	resp, err := h.service.ToggleDetails(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Close(c *gin.Context) {
	id := formID(c)

	if err := h.service.Close(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"closed": true}, nil)
}
