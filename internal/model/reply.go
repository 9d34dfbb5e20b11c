package model

import (
	"time"

	"gorm.io/gorm"
)

// Reply is a follow-up on a message thread.
type Reply struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Body      string    `json:"body" gorm:"type:text"`
	AuthorID  uint      `json:"author_id" gorm:"index"`
	MessageID uint      `json:"message_id" gorm:"index"`
	Timestamp time.Time `json:"timestamp" gorm:"index"`

	Author  *User    `json:"-" gorm:"foreignKey:AuthorID"`
	Message *Message `json:"-" gorm:"foreignKey:MessageID"`
}

// BeforeCreate sets the creation timestamp.
func (r *Reply) BeforeCreate(tx *gorm.DB) error {
	if r.Timestamp.IsZero() {
		r.Timestamp = time.Now().UTC()
	}
	return nil
}
