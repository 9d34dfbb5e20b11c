package model

import (
	"time"

	"gorm.io/gorm"
)

// Comment is a user remark attached to a feed.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Body      string    `json:"body" gorm:"type:text"`
	AuthorID  uint      `json:"author_id" gorm:"index"`
	FeedID    uint      `json:"feed_id" gorm:"index"`
	Timestamp time.Time `json:"created_on" gorm:"index"`

	Author *User `json:"-" gorm:"foreignKey:AuthorID"`
	Feed   *Feed `json:"-" gorm:"foreignKey:FeedID"`
}

// BeforeCreate sets the creation timestamp.
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.Timestamp.IsZero() {
		c.Timestamp = time.Now().UTC()
	}
	return nil
}
