package serviceclients

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"foodorder/internal/core/ports"
)

// NotificationTimeout bounds the wait for the notification service.
const NotificationTimeout = 10 * time.Second

type notificationRequest struct {
	CustomerID       int64  `json:"customerId"`
	OrderNumber      string `json:"orderNumber"`
	Message          string `json:"message"`
	NotificationType string `json:"notificationType"`
}

// HTTPNotificationClient calls the notification service over HTTP.
type HTTPNotificationClient struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewHTTPNotificationClient creates a notification client for the given base URL.
func NewHTTPNotificationClient(baseURL string, logger *slog.Logger) *HTTPNotificationClient {
	return &HTTPNotificationClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: NotificationTimeout},
		logger:  logger.With("component", "notification_client"),
	}
}

// SendNotification delivers a customer notification via
// POST /api/notifications/send. Fire-and-forget: failures are logged only.
func (c *HTTPNotificationClient) SendNotification(
	ctx context.Context,
	notification ports.Notification,
) {
	c.logger.Info("sending notification",
		"customer_id", notification.CustomerID,
		"order_number", notification.OrderNumber)

	body := notificationRequest{
		CustomerID:       notification.CustomerID,
		OrderNumber:      notification.OrderNumber,
		Message:          notification.Message,
		NotificationType: notification.NotificationType,
	}

	if err := postJSON(ctx, c.client, c.baseURL+"/api/notifications/send", body, nil); err != nil {
		c.logger.Warn("notification failed",
			"customer_id", notification.CustomerID, "error", err)
	}
}
