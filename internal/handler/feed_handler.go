package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"lexfeed/internal/auth"
	"lexfeed/internal/model"
	"lexfeed/internal/pagination"
	"lexfeed/internal/service"
	"lexfeed/internal/upload"
)

// FeedHandler handles feed, like and comment endpoints.
type FeedHandler struct {
	feedService service.FeedService
	images      *upload.Saver
}

// NewFeedHandler creates a new feed handler.
func NewFeedHandler(feedService service.FeedService, images *upload.Saver) *FeedHandler {
	return &FeedHandler{feedService: feedService, images: images}
}

// List godoc
// @Summary Paginated feed list, newest first
// @Tags feeds
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /feeds [get]
func (h *FeedHandler) List(c echo.Context) error {
	body, err := h.feedService.List(c.Request().Context(), pagination.PageParam(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, body)
}

// Get godoc
// @Summary Feed with its comments
// @Tags feeds
// @Produce json
// @Security BearerAuth
// @Param id path int true "Feed ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /feed/{id} [get]
func (h *FeedHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, err)
	}
	body, err := h.feedService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, body)
}

// Create godoc
// @Summary Create a feed
// @Description Accepts JSON {title, body} or multipart form with image+title+body.
// @Tags feeds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /feed [post]
func (h *FeedHandler) Create(c echo.Context) error {
	user := auth.CurrentUser(c)

	var in model.FeedImport
	image := ""
	if isMultipart(c) {
		file, _ := c.FormFile("image")
		name, err := h.images.Save(file)
		if err != nil {
			return respondError(c, err)
		}
		image = name
		// an absent form key must fail validation, same as a missing JSON key
		if title, ok := formValue(c, "title"); ok {
			in.Title = &title
		}
		if body, ok := formValue(c, "body"); ok {
			in.Body = &body
		}
	} else {
		if err := c.Bind(&in); err != nil {
			return respondError(c, err)
		}
	}

	if _, err := h.feedService.Create(c.Request().Context(), user, &in, image); err != nil {
		return respondError(c, err)
	}

	c.Response().Header().Set("Message", "Feed Created Successfully")
	return c.JSON(http.StatusCreated, echo.Map{})
}

// Edit godoc
// @Summary Edit a feed
// @Tags feeds
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Feed ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /feed/{id} [put]
func (h *FeedHandler) Edit(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, err)
	}

	file, _ := c.FormFile("image")
	image, err := h.images.Save(file)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.feedService.Edit(c.Request().Context(), id, c.FormValue("title"), c.FormValue("body"), image); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{})
}

// Like godoc
// @Summary Like a feed
// @Description A repeated like is a benign no-op, not an error.
// @Tags feeds
// @Produce plain
// @Security BearerAuth
// @Param id path int true "Feed ID"
// @Success 200 {string} string
// @Failure 404 {object} errors.ErrorResponse
// @Router /like/{id} [get]
func (h *FeedHandler) Like(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, err)
	}

	liked, err := h.feedService.Like(c.Request().Context(), auth.CurrentUser(c), id)
	if err != nil {
		return respondError(c, err)
	}
	if !liked {
		return c.String(http.StatusOK, "You are not allowed to like again")
	}
	return c.String(http.StatusOK, "Liked")
}

// Comments godoc
// @Summary Comments of a feed
// @Tags feeds
// @Produce json
// @Security BearerAuth
// @Param id path int true "Feed ID"
// @Success 200 {array} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /comments/{id} [get]
func (h *FeedHandler) Comments(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, err)
	}
	comments, err := h.feedService.CommentsOf(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, comments)
}

// CreateComment godoc
// @Summary Add a comment to a feed
// @Tags feeds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Feed ID"
// @Param request body model.CommentImport true "Comment"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /comment/{id} [post]
func (h *FeedHandler) CreateComment(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, err)
	}

	var in model.CommentImport
	if err := c.Bind(&in); err != nil {
		return respondError(c, err)
	}

	comment, err := h.feedService.AddComment(c.Request().Context(), auth.CurrentUser(c), id, &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"comment": comment})
}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

// formValue reads a form field, reporting whether the key was present at all.
func formValue(c echo.Context, key string) (string, bool) {
	params, err := c.FormParams()
	if err != nil {
		return "", false
	}
	values, ok := params[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}
