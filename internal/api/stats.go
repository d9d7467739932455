package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"contactdesk/internal/models"
)

type StatsHandler struct {
	db *gorm.DB
}

func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{db: db}
}

// GetStats reports the contact count and the time of the latest entry.
func (h *StatsHandler) GetStats(c *gin.Context) {
	var total int64
	if err := h.db.Model(&models.Contact{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch stats"})
		return
	}

	resp := gin.H{"total": total}
	if total > 0 {
		var latest models.Contact
		if err := h.db.Order("created_at desc").First(&latest).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch stats"})
			return
		}
		resp["latestCreatedAt"] = latest.CreatedAt.Format(time.RFC3339)
	}

	c.JSON(http.StatusOK, resp)
}
