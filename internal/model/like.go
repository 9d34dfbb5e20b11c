package model

import (
	"time"

	"gorm.io/gorm"
)

// Like marks a user's approval of a feed. The composite unique index backs
// up the handler-level duplicate check so concurrent likes cannot slip
// through as two rows.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_likes_user_feed"`
	FeedID    uint      `json:"feed_id" gorm:"index;uniqueIndex:idx_likes_user_feed"`
	CreatedOn time.Time `json:"created_on"`

	Liker *User `json:"-" gorm:"foreignKey:UserID"`
	Feed  *Feed `json:"-" gorm:"foreignKey:FeedID"`
}

// BeforeCreate sets the creation timestamp.
func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.CreatedOn.IsZero() {
		l.CreatedOn = time.Now().UTC()
	}
	return nil
}
