package serviceclients

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"foodorder/internal/core/ports"
)

// InventoryTimeout bounds the wait for the inventory service.
const InventoryTimeout = 15 * time.Second

type inventoryReservationRequest struct {
	MerchantID int64                  `json:"merchantId"`
	Items      []inventoryItemRequest `json:"items"`
}

type inventoryItemRequest struct {
	MenuItemID int64 `json:"menuItemId"`
	Quantity   int   `json:"quantity"`
}

type inventoryReservationResponse struct {
	Success          bool    `json:"success"`
	ReservationID    *string `json:"reservationId"`
	UnavailableItems []int64 `json:"unavailableItems"`
}

// HTTPInventoryClient calls the inventory service over HTTP.
type HTTPInventoryClient struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewHTTPInventoryClient creates an inventory client for the given base URL.
func NewHTTPInventoryClient(baseURL string, logger *slog.Logger) *HTTPInventoryClient {
	return &HTTPInventoryClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: InventoryTimeout},
		logger:  logger.With("component", "inventory_client"),
	}
}

// ReserveInventory asks the merchant's inventory service to hold stock via
// POST /api/inventory/reserve. Any failure yields a synthesized result
// marking every requested item unavailable.
func (c *HTTPInventoryClient) ReserveInventory(
	ctx context.Context,
	request ports.InventoryRequest,
) ports.InventoryResult {
	c.logger.Info("reserving inventory", "merchant_id", request.MerchantID)

	items := make([]inventoryItemRequest, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, inventoryItemRequest{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		})
	}
	body := inventoryReservationRequest{
		MerchantID: request.MerchantID,
		Items:      items,
	}

	var response inventoryReservationResponse
	err := postJSON(ctx, c.client, c.baseURL+"/api/inventory/reserve", body, &response)
	if err != nil {
		c.logger.Error("inventory reservation failed",
			"merchant_id", request.MerchantID, "error", err)
		return c.allUnavailable(request)
	}

	var reservationID string
	if response.ReservationID != nil {
		reservationID = *response.ReservationID
	}

	return ports.InventoryResult{
		Success:          response.Success,
		ReservationID:    reservationID,
		UnavailableItems: response.UnavailableItems,
	}
}

func (c *HTTPInventoryClient) allUnavailable(request ports.InventoryRequest) ports.InventoryResult {
	unavailable := make([]int64, 0, len(request.Items))
	for _, item := range request.Items {
		unavailable = append(unavailable, item.MenuItemID)
	}
	return ports.InventoryResult{
		Success:          false,
		ReservationID:    "",
		UnavailableItems: unavailable,
	}
}
