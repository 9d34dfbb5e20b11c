package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "lexfeed/internal/errors"
)

// ImageSentinel is the literal exported in place of an image URL when the
// record has no image. Clients key off this exact string.
const ImageSentinel = "false"

// urls builds the absolute links embedded in exports.
type urls struct {
	base string
}

func newURLs(base string) urls {
	return urls{base: strings.TrimRight(base, "/")}
}

func (u urls) user(id uint) string {
	return fmt.Sprintf("%s/api/user/%d", u.base, id)
}

func (u urls) feed(id uint) string {
	return fmt.Sprintf("%s/api/feed/%d", u.base, id)
}

func (u urls) feedComments(id uint) string {
	return fmt.Sprintf("%s/api/comments/%d", u.base, id)
}

func (u urls) message(id uint) string {
	return fmt.Sprintf("%s/api/message/%d", u.base, id)
}

func (u urls) feeds() string {
	return u.base + "/api/feeds"
}

func (u urls) inbox() string {
	return u.base + "/api/inbox"
}

func (u urls) outbox() string {
	return u.base + "/api/outbox"
}

// path turns a route path into an absolute URL, for pagination links.
func (u urls) path(p string) string {
	return u.base + p
}

func (u urls) userImage(name string) string {
	if name == "" {
		return ImageSentinel
	}
	return u.base + "/static/images/users/" + name
}

func (u urls) feedImage(name string) string {
	if name == "" {
		return ImageSentinel
	}
	return u.base + "/static/images/feeds/" + name
}

// notFound translates a missing record into the domain error; other store
// failures pass through untouched and surface as 500s.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}
	return err
}
