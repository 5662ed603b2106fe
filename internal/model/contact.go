package model

import "time"

// ContactMessage represents a message submitted via the contact form.
// ID and CreatedAt are assigned by the store on insert.
type ContactMessage struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Phone     string    `json:"phone" gorm:"not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;not null"`
}

// TableName keeps the table name used by every deployment of the form.
func (ContactMessage) TableName() string {
	return "messages"
}

// ContactInput is the expected JSON body for POST /submit_form.
// Missing keys decode to empty strings and fail validation.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// NewContactMessage builds an unsaved ContactMessage from already validated input.
func NewContactMessage(in ContactInput) *ContactMessage {
	return &ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Message: in.Message,
	}
}
