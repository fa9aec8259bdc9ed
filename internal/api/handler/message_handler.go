package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

// MessageHandler handles HTTP requests for the staff inbox.
type MessageHandler struct {
	service ports.MessageService
}

func NewMessageHandler(service ports.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

type sendMessageRequest struct {
	To       string `json:"to"       validate:"required"`
	Subject  string `json:"subject"  validate:"required"`
	Priority string `json:"priority" validate:"omitempty,oneof=Low Normal High Urgent"`
}

type listMessagesResponse struct {
	Data  []*domain.Message   `json:"data"`
	Stats *ports.MessageStats `json:"stats"`
}

// List returns messages matching the optional search query, newest first.
//
// @Summary      List messages
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        q  query     string  false  "Search by sender, recipient or subject"
// @Success      200  {object}  listMessagesResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/messages [get]
func (h *MessageHandler) List(c echo.Context) error {
	messages, err := h.service.ListMessages(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listMessagesResponse{Data: messages, Stats: stats})
}

// Send posts a message to another staff member. The sender is always the
// logged-in user.
//
// @Summary      Send a message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sendMessageRequest  true  "Message"
// @Success      201   {object}  domain.Message
// @Failure      400   {object}  errorResponse
// @Router       /v1/messages [post]
func (h *MessageHandler) Send(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	priority := domain.MessagePriority(req.Priority)
	if priority == "" {
		priority = domain.PriorityNormal
	}

	m, err := h.service.Send(c.Request().Context(), ports.SendMessageInput{
		From:     session.Username,
		To:       req.To,
		Subject:  req.Subject,
		Priority: priority,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, m)
}

// MarkRead flags a message as read.
//
// @Summary      Mark a message read
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Message ID (e.g. MSG-4001)"
// @Success      200  {object}  domain.Message
// @Failure      404  {object}  errorResponse
// @Router       /v1/messages/{id}/read [post]
func (h *MessageHandler) MarkRead(c echo.Context) error {
	m, err := h.service.MarkRead(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

// Delete removes a message.
//
// @Summary      Delete a message
// @Tags         messages
// @Security     BearerAuth
// @Param        id  path  string  true  "Message ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/messages/{id} [delete]
func (h *MessageHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteMessage(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
