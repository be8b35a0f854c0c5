package leave

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the JSON API. Extra submit middleware (idempotency)
// runs only on the submit route.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	submitMiddleware ...gin.HandlerFunc,
) {
	forms := r.Group("/leave-forms")
	{
		forms.POST("", handler.Open)
		forms.GET("/:id", handler.Get)
		forms.PATCH("/:id/fields", handler.UpdateField)
		forms.POST("/:id/submit", append(submitMiddleware, handler.Submit)...)
		forms.POST("/:id/details/toggle", handler.ToggleDetails)
		forms.DELETE("/:id", handler.Close)
	}
}

// RegisterPageRoutes mounts the server-rendered form page.
func RegisterPageRoutes(r *gin.Engine, page *PageHandler) {
	r.SetHTMLTemplate(PageTemplate())
	r.GET("/leave", page.Show)
	r.POST("/leave/submit", page.Submit)
	r.POST("/leave/toggle", page.Toggle)
}
