package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lexfeed/internal/auth"
	"lexfeed/internal/model"
	"lexfeed/internal/pagination"
	"lexfeed/internal/service"
)

// MessageHandler handles inbox, outbox and reply endpoints.
type MessageHandler struct {
	messageService service.MessageService
}

// NewMessageHandler creates a new message handler.
func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// Inbox godoc
// @Summary Paginated received messages
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /inbox [get]
func (h *MessageHandler) Inbox(c echo.Context) error {
	body, err := h.messageService.Inbox(c.Request().Context(), auth.CurrentUser(c), pagination.PageParam(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, body)
}

// Outbox godoc
// @Summary Paginated sent messages
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /outbox [get]
func (h *MessageHandler) Outbox(c echo.Context) error {
	body, err := h.messageService.Outbox(c.Request().Context(), auth.CurrentUser(c), pagination.PageParam(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, body)
}

// Total godoc
// @Summary Count of inbox plus outbox messages
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /total [get]
func (h *MessageHandler) Total(c echo.Context) error {
	total, err := h.messageService.Total(c.Request().Context(), auth.CurrentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"total": total})
}

// Get godoc
// @Summary Fetch a message with replies; marks it read
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /message/{id} [get]
func (h *MessageHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, err)
	}
	body, err := h.messageService.Get(c.Request().Context(), auth.CurrentUser(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, body)
}

// Replies godoc
// @Summary Replies of a message
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {array} map[string]interface{}
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /get_replies/{id} [get]
func (h *MessageHandler) Replies(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, err)
	}
	replies, err := h.messageService.Replies(c.Request().Context(), auth.CurrentUser(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, replies)
}

// Send godoc
// @Summary Send a message
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.MessageImport true "Message"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /message [post]
func (h *MessageHandler) Send(c echo.Context) error {
	var in model.MessageImport
	if err := c.Bind(&in); err != nil {
		return respondError(c, err)
	}

	_, location, err := h.messageService.Send(c.Request().Context(), auth.CurrentUser(c), &in)
	if err != nil {
		return respondError(c, err)
	}

	c.Response().Header().Set(echo.HeaderLocation, location)
	return c.JSON(http.StatusCreated, echo.Map{})
}

// Delete godoc
// @Summary Delete a message (sender or receiver only)
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /message/{id} [delete]
func (h *MessageHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.messageService.Delete(c.Request().Context(), auth.CurrentUser(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{})
}

// Reply godoc
// @Summary Reply to a message; resets it to unread
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Param request body model.ReplyImport true "Reply"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /reply/{id} [post]
func (h *MessageHandler) Reply(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, err)
	}

	var in model.ReplyImport
	if err := c.Bind(&in); err != nil {
		return respondError(c, err)
	}

	reply, err := h.messageService.Reply(c.Request().Context(), auth.CurrentUser(c), id, &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"reply": reply})
}
