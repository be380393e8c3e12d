// Package serviceclients implements the outbound HTTP gateway to the payment,
// inventory, and notification services. Every client is best-effort: a timeout,
// transport error, non-2xx status, or undecodable body is logged and converted
// into the documented fallback value, so collaborator outages never fail the
// order operation that triggered the call.
package serviceclients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"

	"github.com/shopspring/decimal"
)

// PaymentTimeout bounds the wait for the payment service.
const PaymentTimeout = 30 * time.Second

type paymentProcessRequest struct {
	OrderNumber   string          `json:"orderNumber"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	CustomerID    int64           `json:"customerId"`
}

type paymentProcessResponse struct {
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
	Message       string `json:"message"`
}

// HTTPPaymentClient calls the payment service over HTTP.
type HTTPPaymentClient struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewHTTPPaymentClient creates a payment client for the given base URL.
func NewHTTPPaymentClient(baseURL string, logger *slog.Logger) *HTTPPaymentClient {
	return &HTTPPaymentClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: PaymentTimeout},
		logger:  logger.With("component", "payment_client"),
	}
}

// ProcessPayment charges the customer via POST /api/payments/process.
// Any failure yields a synthesized FAILED result instead of an error.
func (c *HTTPPaymentClient) ProcessPayment(
	ctx context.Context,
	request ports.PaymentRequest,
) ports.PaymentResult {
	c.logger.Info("processing payment", "order_number", request.OrderNumber)

	body := paymentProcessRequest{
		OrderNumber:   request.OrderNumber,
		Amount:        request.Amount,
		PaymentMethod: request.PaymentMethod.String(),
		CustomerID:    request.CustomerID,
	}

	var response paymentProcessResponse
	err := c.postJSON(ctx, c.baseURL+"/api/payments/process", body, &response)
	if err != nil {
		c.logger.Error("payment processing failed",
			"order_number", request.OrderNumber, "error", err)
		return ports.PaymentResult{
			TransactionID: "",
			Status:        order.PaymentFailed,
			Message:       "Payment service unavailable",
		}
	}

	status, err := order.PaymentStatusFromName(response.Status)
	if err != nil {
		c.logger.Error("payment service returned unknown status",
			"order_number", request.OrderNumber, "status", response.Status)
		return ports.PaymentResult{
			TransactionID: "",
			Status:        order.PaymentFailed,
			Message:       "Payment service unavailable",
		}
	}

	return ports.PaymentResult{
		TransactionID: response.TransactionID,
		Status:        status,
		Message:       response.Message,
	}
}

func (c *HTTPPaymentClient) postJSON(ctx context.Context, url string, body any, out any) error {
	return postJSON(ctx, c.client, url, body, out)
}

// postJSON sends a JSON POST request and decodes a JSON response into out.
// A nil out discards the response body. Non-2xx statuses are errors.
func postJSON(ctx context.Context, client *http.Client, url string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
