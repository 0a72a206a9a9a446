package client

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// TransferState tracks where a transfer workflow is, so a failure can
// be attributed to the exact step that broke.
type TransferState string

const (
	StateIdle                   TransferState = "idle"
	StateDecrementing           TransferState = "decrementing"
	StateCreating               TransferState = "creating"
	StateCommitted              TransferState = "committed"
	StateFailed                 TransferState = "failed"
	StateRollingBack            TransferState = "rolling_back"
	StateRolledBack             TransferState = "rolled_back"
	StateReconciliationRequired TransferState = "reconciliation_required"
)

// TransferOutcome is the result of a Ship or Sell workflow.
// Invalidated names the cached views a caller should refetch.
type TransferOutcome struct {
	RequestID   string
	State       TransferState
	Source      *StockRecord
	Destination *StockRecord
	Purchase    *Purchase
	Invalidated []string
	Replayed    bool
}

// ShipInput moves quantity units from a warehouse stock record into a
// store. PreviousQuantity and Version are the values read with the
// source record; a stale pair is rejected by the server with a
// conflict. RequestID is generated when left empty.
type ShipInput struct {
	RequestID          string
	SourceRecordID     uint
	PreviousQuantity   int
	Version            int
	DestinationStoreID uint
	ItemID             uint
	ItemName           string
	WarehousePrice     float64
	RetailPrice        float64
	Quantity           int
}

// SellInput decrements a store stock record and appends a purchase.
// Date defaults to today, formatted YYYY-MM-DD.
type SellInput struct {
	RequestID        string
	SourceRecordID   uint
	PreviousQuantity int
	Version          int
	StoreID          uint
	ItemID           uint
	ItemName         string
	WarehousePrice   float64
	RetailPrice      float64
	Quantity         int
	Date             string
}

// Ship transfers stock from a warehouse record to a store. The
// decrement runs first; only after it succeeds is the store record
// created, and a failed create restores the source quantity.
func (c *Client) Ship(ctx context.Context, in ShipInput) (*TransferOutcome, error) {
	var details []string
	if in.Quantity <= 0 {
		details = append(details, "quantity must be a positive integer")
	} else if in.Quantity > in.PreviousQuantity {
		details = append(details, "quantity exceeds available stock")
	}
	if in.SourceRecordID == 0 {
		details = append(details, "source record id is required")
	}
	if in.DestinationStoreID == 0 {
		details = append(details, "destination store id is required")
	}
	if len(details) > 0 {
		return nil, &ValidationError{Details: details}
	}

	if in.RequestID == "" {
		in.RequestID = uuid.New().String()
	}
	if replayed := c.replay(in.RequestID); replayed != nil {
		return replayed, nil
	}

	outcome := &TransferOutcome{
		RequestID:   in.RequestID,
		State:       StateIdle,
		Invalidated: []string{"warehouseItemsById", "storeItemsById"},
	}

	err := c.transferStock(ctx, outcome, transferSteps{
		decrement: func(ctx context.Context) (*StockRecord, error) {
			return c.UpdateWarehouseItem(ctx, in.SourceRecordID, in.PreviousQuantity-in.Quantity, in.Version)
		},
		create: func(ctx context.Context) error {
			created, err := c.CreateStoreItem(ctx, StockRecord{
				StoreID:        in.DestinationStoreID,
				ItemID:         in.ItemID,
				ItemName:       in.ItemName,
				WarehousePrice: in.WarehousePrice,
				RetailPrice:    in.RetailPrice,
				Quantity:       in.Quantity,
			})
			if err != nil {
				return err
			}
			outcome.Destination = created
			return nil
		},
		restore: func(ctx context.Context, decremented *StockRecord) error {
			_, err := c.UpdateWarehouseItem(ctx, in.SourceRecordID, in.PreviousQuantity, decremented.Version)
			return err
		},
		sourceID: in.SourceRecordID,
	})
	if err != nil {
		return outcome, err
	}

	c.remember(outcome)
	return outcome, nil
}

// Sell decrements a store stock record and records the sale as a
// purchase, with the same sequencing and rollback as Ship.
func (c *Client) Sell(ctx context.Context, in SellInput) (*TransferOutcome, error) {
	var details []string
	if in.Quantity <= 0 {
		details = append(details, "quantity must be a positive integer")
	} else if in.Quantity > in.PreviousQuantity {
		details = append(details, "quantity exceeds available stock")
	}
	if in.SourceRecordID == 0 {
		details = append(details, "source record id is required")
	}
	if in.Date == "" {
		in.Date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		details = append(details, "date must be formatted YYYY-MM-DD")
	}
	if len(details) > 0 {
		return nil, &ValidationError{Details: details}
	}

	if in.RequestID == "" {
		in.RequestID = uuid.New().String()
	}
	if replayed := c.replay(in.RequestID); replayed != nil {
		return replayed, nil
	}

	outcome := &TransferOutcome{
		RequestID:   in.RequestID,
		State:       StateIdle,
		Invalidated: []string{"storeItemsById", "purchases"},
	}

	err := c.transferStock(ctx, outcome, transferSteps{
		decrement: func(ctx context.Context) (*StockRecord, error) {
			return c.UpdateStoreItem(ctx, in.SourceRecordID, in.PreviousQuantity-in.Quantity, in.Version)
		},
		create: func(ctx context.Context) error {
			created, err := c.CreatePurchase(ctx, Purchase{
				StoreID:        in.StoreID,
				ItemID:         in.ItemID,
				ItemName:       in.ItemName,
				Quantity:       in.Quantity,
				WarehousePrice: in.WarehousePrice,
				RetailPrice:    in.RetailPrice,
				Date:           in.Date,
			})
			if err != nil {
				return err
			}
			outcome.Purchase = created
			return nil
		},
		restore: func(ctx context.Context, decremented *StockRecord) error {
			_, err := c.UpdateStoreItem(ctx, in.SourceRecordID, in.PreviousQuantity, decremented.Version)
			return err
		},
		sourceID: in.SourceRecordID,
	})
	if err != nil {
		return outcome, err
	}

	c.remember(outcome)
	return outcome, nil
}

type transferSteps struct {
	decrement func(ctx context.Context) (*StockRecord, error)
	create    func(ctx context.Context) error
	restore   func(ctx context.Context, decremented *StockRecord) error
	sourceID  uint
}

// transferStock runs the shared decrement-then-create sequence. The
// create step never fires before the decrement has succeeded, and a
// failed create triggers a compensating restore of the source.
func (c *Client) transferStock(ctx context.Context, outcome *TransferOutcome, steps transferSteps) error {
	outcome.State = StateDecrementing
	decremented, err := steps.decrement(ctx)
	if err != nil {
		outcome.State = StateFailed
		return err
	}
	outcome.Source = decremented

	outcome.State = StateCreating
	if createErr := steps.create(ctx); createErr != nil {
		outcome.State = StateRollingBack
		if restoreErr := steps.restore(ctx, decremented); restoreErr != nil {
			outcome.State = StateReconciliationRequired
			log.Printf("❌ Rollback failed for stock record %d: %v", steps.sourceID, restoreErr)
			return &ReconciliationError{RecordID: steps.sourceID, Cause: restoreErr}
		}
		outcome.State = StateRolledBack
		outcome.Source = nil
		return fmt.Errorf("create failed, source quantity restored: %w", createErr)
	}

	outcome.State = StateCommitted
	return nil
}

func (c *Client) replay(requestID string) *TransferOutcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	if done, ok := c.committed[requestID]; ok {
		copied := *done
		copied.Replayed = true
		return &copied
	}
	return nil
}

func (c *Client) remember(outcome *TransferOutcome) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.committed[outcome.RequestID] = outcome
}
