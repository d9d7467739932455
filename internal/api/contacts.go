package api

import (
	"net/http"
	"strings"

	"contactdesk/internal/models"
	"contactdesk/internal/validate"
	wire "contactdesk/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventSink receives change notifications for connected subscribers.
// A nil sink disables notifications.
type EventSink interface {
	ContactCreated(contact models.Contact)
	ContactDeleted(id string)
}

type ContactHandler struct {
	db     *gorm.DB
	events EventSink
}

func NewContactHandler(db *gorm.DB, events EventSink) *ContactHandler {
	return &ContactHandler{db: db, events: events}
}

func (h *ContactHandler) GetContacts(c *gin.Context) {
	var contacts []models.Contact
	if err := h.db.Order("created_at desc").Find(&contacts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch contacts"})
		return
	}

	// Return empty array instead of null
	if contacts == nil {
		contacts = []models.Contact{}
	}

	c.JSON(http.StatusOK, contacts)
}

func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req wire.Draft
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Message = strings.TrimSpace(req.Message)

	if errs := validate.Draft(req); !validate.Valid(errs) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": errs})
		return
	}

	contact := models.Contact{
		ID:      uuid.NewString(),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}
	if err := h.db.Create(&contact).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add contact"})
		return
	}

	if h.events != nil {
		h.events.ContactCreated(contact)
	}
	c.JSON(http.StatusCreated, contact)
}

func (h *ContactHandler) DeleteContact(c *gin.Context) {
	id := c.Param("id")

	result := h.db.Delete(&models.Contact{}, "id = ?", id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete contact"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Contact not found"})
		return
	}

	if h.events != nil {
		h.events.ContactDeleted(id)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted"})
}
