package leave

import (
	"embed"
	"errors"
	"html/template"
	"net/http"

	"go-leave/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const formCookie = "leave_form_id"

//go:embed templates/*.html
var templateFS embed.FS

// PageTemplate parses the embedded page templates.
func PageTemplate() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

type pageData struct {
	Form  FormResponse
	Alert string
}

// PageHandler serves the HTML rendition of the form. The form session id is
// kept in a cookie; a missing or expired session opens a new one.
type PageHandler struct {
	service Service
	logger  *zap.Logger
}

func NewPageHandler(service Service, logger ...*zap.Logger) *PageHandler {
	l := zap.L().Named("leave.page")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.page")
	}
	return &PageHandler{service: service, logger: l}
}

func (p *PageHandler) Show(c *gin.Context) {
	form, err := p.currentForm(c)
	if err != nil {
		p.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "leave_form.html", pageData{Form: form})
}

func (p *PageHandler) Submit(c *gin.Context) {
	form, err := p.currentForm(c)
	if err != nil {
		p.fail(c, err)
		return
	}

	var req SubmitLeaveRequest
	if err := c.ShouldBind(&req); err != nil {
		p.fail(c, apperror.MapValidationError(err))
		return
	}

	resp, err := p.service.Submit(c.Request.Context(), form.ID, &req)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.HTTPStatus < http.StatusInternalServerError {
			// keep what the user typed so they can correct it
			form, _ = p.service.Get(c.Request.Context(), form.ID)
			c.HTML(appErr.HTTPStatus, "leave_form.html", pageData{Form: form, Alert: appErr.Message})
			return
		}
		p.fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "leave_form.html", pageData{Form: resp.Form, Alert: resp.Message})
}

func (p *PageHandler) Toggle(c *gin.Context) {
	form, err := p.currentForm(c)
	if err != nil {
		p.fail(c, err)
		return
	}
	if _, err := p.service.ToggleDetails(c.Request.Context(), form.ID); err != nil {
		p.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/leave")
}

func (p *PageHandler) currentForm(c *gin.Context) (FormResponse, error) {
	ctx := c.Request.Context()
	if id, err := c.Cookie(formCookie); err == nil && id != "" {
		if form, err := p.service.Get(ctx, id); err == nil {
			return form, nil
		}
	}

	form, err := p.service.Open(ctx)
	if err != nil {
		return FormResponse{}, err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(formCookie, form.ID, 0, "/leave", "", false, true)
	return form, nil
}

func (p *PageHandler) fail(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	p.logger.Warn("leave page request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("message", httpErr.Message),
		zap.Error(err),
	)
	c.String(httpErr.Status, httpErr.Message)
}
