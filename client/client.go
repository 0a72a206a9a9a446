package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
)

// ValidationError is raised before any request leaves the client, for
// example when the requested quantity exceeds the stock on hand.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Details, "; ")
}

// ConflictError means the server rejected a quantity update because the
// record changed since the caller read it. The caller should refresh
// and retry with the new version.
type ConflictError struct {
	RecordID uint
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("stock record %d was modified by someone else", e.RecordID)
}

// APIError covers every other non-2xx response.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Detail)
}

// ReconciliationError means a compensating restore failed after a
// partially applied transfer. The affected record needs manual review.
type ReconciliationError struct {
	RecordID uint
	Cause    error
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("record %d needs manual reconciliation: %v", e.RecordID, e.Cause)
}

func (e *ReconciliationError) Unwrap() error { return e.Cause }

// StockRecord is one (location, item) stock row as the server returns
// it. WarehouseID is set for warehouse rows, StoreID for store rows.
type StockRecord struct {
	ID             uint    `json:"id"`
	WarehouseID    uint    `json:"warehouse_id,omitempty"`
	StoreID        uint    `json:"store_id,omitempty"`
	ItemID         uint    `json:"item_id"`
	ItemName       string  `json:"item_name"`
	WarehousePrice float64 `json:"warehouse_price"`
	RetailPrice    float64 `json:"retail_price"`
	Quantity       int     `json:"quantity"`
	Version        int     `json:"version"`
}

// Purchase mirrors the server's purchase record.
type Purchase struct {
	ID             uint    `json:"id"`
	StoreID        uint    `json:"store_id"`
	ItemID         uint    `json:"item_id"`
	ItemName       string  `json:"item_name"`
	Quantity       int     `json:"quantity"`
	WarehousePrice float64 `json:"warehouse_price"`
	RetailPrice    float64 `json:"retail_price"`
	Date           string  `json:"date"`
	Reference      string  `json:"reference"`
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Count   int64           `json:"count"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Detail  []string        `json:"detail"`
}

// Client talks to the inventory API and remembers committed transfer
// outcomes by request id, so a retried workflow is answered from the
// record instead of reissuing its calls.
type Client struct {
	http *resty.Client

	mu        sync.Mutex
	committed map[string]*TransferOutcome
}

func New(baseURL string) *Client {
	return &Client{
		http:      resty.New().SetBaseURL(baseURL),
		committed: make(map[string]*TransferOutcome),
	}
}

// SetToken attaches a bearer token to every subsequent request.
func (c *Client) SetToken(token string) *Client {
	c.http.SetAuthToken(token)
	return c
}

func decode(resp *resty.Response, out interface{}) error {
	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		if resp.IsError() {
			return &APIError{StatusCode: resp.StatusCode(), Detail: resp.Status()}
		}
		return err
	}

	if resp.IsError() {
		detail := env.Error
		if detail == "" && len(env.Detail) > 0 {
			detail = strings.Join(env.Detail, "; ")
		}
		if detail == "" {
			detail = env.Message
		}
		return &APIError{StatusCode: resp.StatusCode(), Detail: detail}
	}

	if out != nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

// GetWarehouseItems lists one warehouse's stock records.
func (c *Client) GetWarehouseItems(ctx context.Context, warehouseID uint) ([]StockRecord, error) {
	resp, err := c.http.R().SetContext(ctx).
		Get(fmt.Sprintf("/warehouseitems/%d", warehouseID))
	if err != nil {
		return nil, err
	}

	var records []StockRecord
	if err := decode(resp, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// GetStoreItems lists one store's stock records.
func (c *Client) GetStoreItems(ctx context.Context, storeID uint) ([]StockRecord, error) {
	resp, err := c.http.R().SetContext(ctx).
		Get(fmt.Sprintf("/storeitems/%d", storeID))
	if err != nil {
		return nil, err
	}

	var records []StockRecord
	if err := decode(resp, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// UpdateWarehouseItem sets a warehouse stock record's quantity. The
// version must be the one read with the record; a 409 comes back as
// ConflictError.
func (c *Client) UpdateWarehouseItem(ctx context.Context, id uint, quantity, version int) (*StockRecord, error) {
	return c.updateStock(ctx, fmt.Sprintf("/warehouseitems/%d", id), id, quantity, version)
}

// UpdateStoreItem sets a store stock record's quantity, guarded the
// same way as the warehouse side.
func (c *Client) UpdateStoreItem(ctx context.Context, id uint, quantity, version int) (*StockRecord, error) {
	return c.updateStock(ctx, fmt.Sprintf("/storeitems/%d", id), id, quantity, version)
}

func (c *Client) updateStock(ctx context.Context, path string, id uint, quantity, version int) (*StockRecord, error) {
	resp, err := c.http.R().SetContext(ctx).
		SetBody(map[string]interface{}{"quantity": quantity, "version": version}).
		Put(path)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() == 409 {
		return nil, &ConflictError{RecordID: id}
	}

	var record StockRecord
	if err := decode(resp, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// CreateStoreItem puts quantity into a store. An existing record for
// the same (store, item) pair absorbs it instead of duplicating.
func (c *Client) CreateStoreItem(ctx context.Context, record StockRecord) (*StockRecord, error) {
	resp, err := c.http.R().SetContext(ctx).
		SetBody(map[string]interface{}{
			"store_id":        record.StoreID,
			"item_id":         record.ItemID,
			"item_name":       record.ItemName,
			"warehouse_price": record.WarehousePrice,
			"retail_price":    record.RetailPrice,
			"quantity":        record.Quantity,
		}).
		Post("/storeitems")
	if err != nil {
		return nil, err
	}

	var created StockRecord
	if err := decode(resp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// CreatePurchase appends a purchase record.
func (c *Client) CreatePurchase(ctx context.Context, purchase Purchase) (*Purchase, error) {
	resp, err := c.http.R().SetContext(ctx).
		SetBody(map[string]interface{}{
			"store_id":        purchase.StoreID,
			"item_id":         purchase.ItemID,
			"item_name":       purchase.ItemName,
			"quantity":        purchase.Quantity,
			"warehouse_price": purchase.WarehousePrice,
			"retail_price":    purchase.RetailPrice,
			"date":            purchase.Date,
		}).
		Post("/purchases")
	if err != nil {
		return nil, err
	}

	var created Purchase
	if err := decode(resp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
