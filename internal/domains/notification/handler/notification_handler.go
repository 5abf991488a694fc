package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"journal-backend/internal/domains/notification"
	"journal-backend/internal/shared/response"
)

// NotificationHandler exposes the send-mail endpoint.
type NotificationHandler struct {
	service notification.Service
}

func NewNotificationHandler(service notification.Service) *NotificationHandler {
	return &NotificationHandler{
		service: service,
	}
}

// SendMail dispatches a single email synchronously.
// POST /api/v1/notifications/mail
func (h *NotificationHandler) SendMail(c *gin.Context) {
	var req notification.SendMailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	result, err := h.service.SendMail(c.Request.Context(), req)
	if err != nil {
		status, message, code := notification.GetErrorResponse(err)
		response.Error(c, status, message, gin.H{"code": code})
		return
	}

	response.Success(c, http.StatusOK, "Mail sent successfully", result)
}
