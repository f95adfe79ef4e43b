// README: HTTP router registration.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"ankago/internal/http/handlers"
	"ankago/internal/http/middleware"
)

func NewRouter(dialogueSvc handlers.DialogueService, webhookToken string, log *slog.Logger) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Recovery(log), middleware.Logging(log))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	webhookHandler := handlers.NewWebhookHandler(dialogueSvc)
	api := r.Group("/api", middleware.Auth(webhookToken))
	api.POST("/webhook/whatsapp", webhookHandler.Receive)

	return r
}
