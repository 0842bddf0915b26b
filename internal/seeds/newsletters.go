package seeds

import (
	"log"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/pushp314/newsletter-api/internal/models"
	"gorm.io/gorm"
)

const (
	// NewsletterCount is the fixed number of rows a seed run leaves behind.
	NewsletterCount = 50

	maxTitleLen = 20
)

// SeedNewsletters replaces the newsletters table contents with
// NewsletterCount synthetic rows. Delete and insert run in one
// transaction so a failed run never leaves the table half-seeded.
func SeedNewsletters(db *gorm.DB) error {
	log.Println("📰 Seeding Newsletters...")

	newsletters := make([]models.Newsletter, 0, NewsletterCount)
	for i := 0; i < NewsletterCount; i++ {
		newsletters = append(newsletters, models.Newsletter{
			Title: fakeTitle(),
			Body:  gofakeit.Paragraph(1, 5, 10, " "),
		})
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&models.Newsletter{}).Error; err != nil {
			return err
		}
		return tx.Create(&newsletters).Error
	})
	if err != nil {
		log.Printf("   ❌ Failed to seed newsletters: %v", err)
		return err
	}

	log.Printf("   📰 Seeded %d newsletters", NewsletterCount)
	return nil
}

// fakeTitle returns short sentence-like text capped at maxTitleLen.
func fakeTitle() string {
	title := gofakeit.Sentence(3)
	if len(title) > maxTitleLen {
		title = strings.TrimSpace(title[:maxTitleLen])
	}
	return title
}
