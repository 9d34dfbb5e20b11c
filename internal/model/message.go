package model

import (
	"time"

	"gorm.io/gorm"
)

// Message is a private message between two users. Read starts false, is set
// true when the message is fetched by id, and flips back to false whenever a
// new reply lands on the thread.
type Message struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Title      string    `json:"title" gorm:"size:256;index"`
	Body       string    `json:"body" gorm:"type:text"`
	Read       bool      `json:"read" gorm:"default:false"`
	SenderID   uint      `json:"sender_id" gorm:"index"`
	ReceiverID uint      `json:"receiver_id" gorm:"index"`
	CreatedOn  time.Time `json:"created_on"`

	Sender   *User   `json:"-" gorm:"foreignKey:SenderID"`
	Receiver *User   `json:"-" gorm:"foreignKey:ReceiverID"`
	Replies  []Reply `json:"-" gorm:"foreignKey:MessageID"`
}

// BeforeCreate sets the creation timestamp.
func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.CreatedOn.IsZero() {
		m.CreatedOn = time.Now().UTC()
	}
	return nil
}

// Involves reports whether the user is the sender or the receiver.
func (m *Message) Involves(userID uint) bool {
	return m.SenderID == userID || m.ReceiverID == userID
}
