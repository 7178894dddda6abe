package models

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is a billable contact owned by a dashboard user. The avatar URL
// points at an uploaded blob or any other public image.
type Customer struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	Email     string         `gorm:"type:varchar(255);not null;index" json:"email"`
	ImageURL  string         `gorm:"type:varchar(2048);not null" json:"image_url"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Invoices []Invoice `gorm:"foreignKey:CustomerID" json:"-"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

func (c *Customer) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}

	if c.Email == "" {
		return errors.New("email is required")
	}

	if !emailRegex.MatchString(c.Email) {
		return errors.New("invalid email format")
	}

	if c.ImageURL == "" {
		return errors.New("image URL is required")
	}

	if !strings.HasPrefix(c.ImageURL, "/uploads/") {
		if parsed, err := url.Parse(c.ImageURL); err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return errors.New("invalid image URL")
		}
	}

	if c.UserID == uuid.Nil {
		return errors.New("owner ID is required")
	}

	return nil
}

func (c *Customer) TableName() string {
	return "customers"
}
