package model

import (
	apperrors "lexfeed/internal/errors"
)

// Import payloads decode loosely-typed JSON bodies into pointer fields so a
// missing key is distinguishable from a zero value. Apply validates required
// fields in declared order and reports the first missing one, then assigns
// onto the entity.

// FeedImport carries writable feed fields.
type FeedImport struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

// Apply validates title then body and assigns them to the feed.
func (in *FeedImport) Apply(f *Feed) error {
	if in.Title == nil {
		return apperrors.NewValidation("title")
	}
	if in.Body == nil {
		return apperrors.NewValidation("body")
	}
	f.Title = *in.Title
	f.Body = *in.Body
	return nil
}

// CommentImport carries the writable comment field.
type CommentImport struct {
	Body *string `json:"body"`
}

// Apply validates body and assigns it to the comment.
func (in *CommentImport) Apply(c *Comment) error {
	if in.Body == nil {
		return apperrors.NewValidation("body")
	}
	c.Body = *in.Body
	return nil
}

// ReplyImport carries the writable reply field.
type ReplyImport struct {
	Body *string `json:"body"`
}

// Apply validates body and assigns it to the reply.
func (in *ReplyImport) Apply(r *Reply) error {
	if in.Body == nil {
		return apperrors.NewValidation("body")
	}
	r.Body = *in.Body
	return nil
}

// MessageImport carries writable message fields.
type MessageImport struct {
	Title      *string `json:"title"`
	Body       *string `json:"body"`
	ReceiverID *uint   `json:"receiver_id"`
}

// Apply validates title, body, receiver_id in order and assigns them.
func (in *MessageImport) Apply(m *Message) error {
	if in.Title == nil {
		return apperrors.NewValidation("title")
	}
	if in.Body == nil {
		return apperrors.NewValidation("body")
	}
	if in.ReceiverID == nil {
		return apperrors.NewValidation("receiver_id")
	}
	m.Title = *in.Title
	m.Body = *in.Body
	m.ReceiverID = *in.ReceiverID
	return nil
}

// UserImport carries writable user profile fields. Email is required; the
// rest are assigned only when present. A password, when given, is hashed
// before storage.
type UserImport struct {
	Email    *string `json:"email"`
	Company  *string `json:"company"`
	Position *string `json:"position"`
	Name     *string `json:"name"`
	Location *string `json:"location"`
	About    *string `json:"about"`
	Password *string `json:"password"`
}

// Apply validates email and assigns the provided fields to the user.
func (in *UserImport) Apply(u *User) error {
	if in.Email == nil {
		return apperrors.NewValidation("email")
	}
	u.Email = *in.Email
	if in.Company != nil {
		u.Company = *in.Company
	}
	if in.Position != nil {
		u.Position = *in.Position
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Location != nil {
		u.Location = *in.Location
	}
	if in.About != nil {
		u.About = *in.About
	}
	if in.Password != nil {
		if err := u.SetPassword(*in.Password); err != nil {
			return err
		}
	}
	return nil
}
