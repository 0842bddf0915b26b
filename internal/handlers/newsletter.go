package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pushp314/newsletter-api/internal/models"
	"github.com/pushp314/newsletter-api/pkg/logger"
	"gorm.io/gorm"
)

// NewsletterHandler serves the /newsletters resource. The DB handle is
// injected at startup rather than pulled from a package global.
type NewsletterHandler struct {
	db *gorm.DB
}

func NewNewsletterHandler(db *gorm.DB) *NewsletterHandler {
	return &NewsletterHandler{db: db}
}

// ListNewsletters returns every newsletter. No filtering or pagination.
func (h *NewsletterHandler) ListNewsletters(c *gin.Context) {
	var newsletters []models.Newsletter
	if err := h.db.Order("id ASC").Find(&newsletters).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to list newsletters")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch newsletters"})
		return
	}

	response := make([]models.NewsletterResponse, 0, len(newsletters))
	for i := range newsletters {
		response = append(response, newsletters[i].ToResponse())
	}
	c.JSON(http.StatusOK, response)
}

// CreateNewsletter persists a new newsletter from the submitted title and
// body (form or JSON). The id and published_at are server-assigned.
func (h *NewsletterHandler) CreateNewsletter(c *gin.Context) {
	var input models.CreateNewsletterInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and body are required"})
		return
	}

	newsletter := models.Newsletter{
		Title: input.Title,
		Body:  input.Body,
	}
	if err := h.db.Create(&newsletter).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to create newsletter")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create newsletter"})
		return
	}

	c.JSON(http.StatusCreated, newsletter.ToResponse())
}

// GetNewsletter returns a single newsletter by id, or 404.
func (h *NewsletterHandler) GetNewsletter(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var newsletter models.Newsletter
	if err := h.db.First(&newsletter, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Newsletter not found"})
			return
		}
		logger.Error().Err(err).Uint64("id", id).Msg("Failed to fetch newsletter")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch newsletter"})
		return
	}

	c.JSON(http.StatusOK, newsletter.ToResponse())
}

// UpdateNewsletter applies a partial update. Only title, body and
// published_at are assignable; the id is never overwritten regardless of
// what the caller submits. Last write wins between concurrent patches.
func (h *NewsletterHandler) UpdateNewsletter(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input models.UpdateNewsletterInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var newsletter models.Newsletter
	if err := h.db.First(&newsletter, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Newsletter not found"})
			return
		}
		logger.Error().Err(err).Uint64("id", id).Msg("Failed to fetch newsletter")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch newsletter"})
		return
	}

	if input.Title != nil {
		newsletter.Title = *input.Title
	}
	if input.Body != nil {
		newsletter.Body = *input.Body
	}
	if input.PublishedAt != nil {
		newsletter.PublishedAt = *input.PublishedAt
	}

	if err := h.db.Save(&newsletter).Error; err != nil {
		logger.Error().Err(err).Uint64("id", id).Msg("Failed to update newsletter")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update newsletter"})
		return
	}

	c.JSON(http.StatusOK, newsletter.ToResponse())
}

// DeleteNewsletter removes a newsletter if it exists. The confirmation
// message is the same whether or not a row was deleted.
func (h *NewsletterHandler) DeleteNewsletter(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.db.Delete(&models.Newsletter{}, id).Error; err != nil {
		logger.Error().Err(err).Uint64("id", id).Msg("Failed to delete newsletter")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete newsletter"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "record successfully deleted"})
}

func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid newsletter id"})
		return 0, false
	}
	return id, true
}
