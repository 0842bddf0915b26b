package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pushp314/newsletter-api/internal/handlers"
)

// RegisterNewsletterRoutes configures the index and newsletter resource
// routes on the given router.
func RegisterNewsletterRoutes(r gin.IRouter, h *handlers.NewsletterHandler) {
	r.GET("/", handlers.Index)

	r.GET("/newsletters", h.ListNewsletters)
	r.POST("/newsletters", h.CreateNewsletter)
	r.GET("/newsletters/:id", h.GetNewsletter)
	r.PATCH("/newsletters/:id", h.UpdateNewsletter)
	r.DELETE("/newsletters/:id", h.DeleteNewsletter)
}
