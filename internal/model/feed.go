package model

import (
	"time"

	"gorm.io/gorm"
)

// Feed is a user-authored post with an optional image.
type Feed struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:1024;index"`
	Body      string    `json:"body" gorm:"type:text"`
	Image     string    `json:"image" gorm:"size:1024;index"`
	AuthorID  uint      `json:"author_id" gorm:"index"`
	Timestamp time.Time `json:"created_on" gorm:"index"`

	Author   *User     `json:"-" gorm:"foreignKey:AuthorID"`
	Comments []Comment `json:"-" gorm:"foreignKey:FeedID"`
	Likes    []Like    `json:"-" gorm:"foreignKey:FeedID"`
}

// BeforeCreate sets the creation timestamp.
func (f *Feed) BeforeCreate(tx *gorm.DB) error {
	if f.Timestamp.IsZero() {
		f.Timestamp = time.Now().UTC()
	}
	return nil
}
