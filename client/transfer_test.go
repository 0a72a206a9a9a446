package client_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"inventory-app/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stockServer struct {
	*httptest.Server

	updateCalls  int64
	createCalls  int64
	updateBodies []map[string]interface{}

	updateStatus func(call int64) int
	createStatus int
}

// newStockServer fakes the inventory API for one warehouse record
// {id=7, quantity=50, version=1}. updateStatus decides per-call how
// the PUT responds, so tests can fail the decrement or the restore.
func newStockServer(t *testing.T) *stockServer {
	t.Helper()

	s := &stockServer{
		updateStatus: func(int64) int { return http.StatusOK },
		createStatus: http.StatusCreated,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("PUT /warehouseitems/7", func(w http.ResponseWriter, r *http.Request) {
		call := atomic.AddInt64(&s.updateCalls, 1)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		s.updateBodies = append(s.updateBodies, body)

		status := s.updateStatus(call)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			fmt.Fprintf(w, `{"error": "boom"}`)
			return
		}
		fmt.Fprintf(w, `{"success": true, "data": {"id": 7, "warehouse_id": 1, "item_id": 9, "item_name": "Notebook", "quantity": %v, "version": %d}}`,
			body["quantity"], int(body["version"].(float64))+1)
	})
	mux.HandleFunc("PUT /storeitems/12", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&s.updateCalls, 1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"success": true, "data": {"id": 12, "store_id": 3, "item_id": 9, "quantity": 0, "version": 2}}`)
	})
	mux.HandleFunc("POST /storeitems", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&s.createCalls, 1)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(s.createStatus)
		if s.createStatus != http.StatusCreated {
			fmt.Fprintf(w, `{"error": "boom"}`)
			return
		}
		fmt.Fprintf(w, `{"success": true, "data": {"id": 31, "store_id": %v, "item_id": %v, "item_name": "Notebook", "quantity": %v, "version": 1}}`,
			body["store_id"], body["item_id"], body["quantity"])
	})
	mux.HandleFunc("POST /purchases", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&s.createCalls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(s.createStatus)
		if s.createStatus != http.StatusCreated {
			fmt.Fprintf(w, `{"error": "boom"}`)
			return
		}
		fmt.Fprintf(w, `{"success": true, "data": {"id": 91, "store_id": 3, "item_id": 9, "quantity": 4, "date": "2026-08-31"}}`)
	})

	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

func shipInput() client.ShipInput {
	return client.ShipInput{
		SourceRecordID:     7,
		PreviousQuantity:   50,
		Version:            1,
		DestinationStoreID: 3,
		ItemID:             9,
		ItemName:           "Notebook",
		WarehousePrice:     10,
		RetailPrice:        15,
		Quantity:           20,
	}
}

func TestShip_DecrementsSourceThenCreatesDestination(t *testing.T) {
	srv := newStockServer(t)
	c := client.New(srv.URL)

	outcome, err := c.Ship(context.Background(), shipInput())
	require.NoError(t, err)

	assert.Equal(t, client.StateCommitted, outcome.State)
	assert.Equal(t, 30, outcome.Source.Quantity)
	assert.Equal(t, uint(3), outcome.Destination.StoreID)
	assert.Equal(t, uint(9), outcome.Destination.ItemID)
	assert.Equal(t, 20, outcome.Destination.Quantity)
	assert.Equal(t, []string{"warehouseItemsById", "storeItemsById"}, outcome.Invalidated)

	require.Len(t, srv.updateBodies, 1)
	assert.EqualValues(t, 30, srv.updateBodies[0]["quantity"])
	assert.EqualValues(t, 1, srv.updateBodies[0]["version"])
	assert.EqualValues(t, 1, srv.createCalls)
}

func TestShip_RejectsQuantityOverStock(t *testing.T) {
	srv := newStockServer(t)
	c := client.New(srv.URL)

	in := shipInput()
	in.Quantity = 51

	_, err := c.Ship(context.Background(), in)

	var verr *client.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, srv.updateCalls, "no request should leave the client")
	assert.Zero(t, srv.createCalls)
}

func TestShip_RejectsNonPositiveQuantity(t *testing.T) {
	srv := newStockServer(t)
	c := client.New(srv.URL)

	in := shipInput()
	in.Quantity = 0

	_, err := c.Ship(context.Background(), in)

	var verr *client.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, srv.updateCalls)
	assert.Zero(t, srv.createCalls)
}

func TestShip_ConflictAbortsBeforeCreate(t *testing.T) {
	srv := newStockServer(t)
	srv.updateStatus = func(int64) int { return http.StatusConflict }
	c := client.New(srv.URL)

	outcome, err := c.Ship(context.Background(), shipInput())

	var cerr *client.ConflictError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, uint(7), cerr.RecordID)
	assert.Equal(t, client.StateFailed, outcome.State)
	assert.Zero(t, srv.createCalls, "conflict must not create an orphan destination record")
}

func TestShip_DecrementFailureCreatesNothing(t *testing.T) {
	srv := newStockServer(t)
	srv.updateStatus = func(int64) int { return http.StatusInternalServerError }
	c := client.New(srv.URL)

	outcome, err := c.Ship(context.Background(), shipInput())

	var aerr *client.APIError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, client.StateFailed, outcome.State)
	assert.Zero(t, srv.createCalls)
}

func TestShip_CreateFailureRestoresSource(t *testing.T) {
	srv := newStockServer(t)
	srv.createStatus = http.StatusInternalServerError
	c := client.New(srv.URL)

	outcome, err := c.Ship(context.Background(), shipInput())
	require.Error(t, err)

	assert.Equal(t, client.StateRolledBack, outcome.State)
	require.Len(t, srv.updateBodies, 2)
	assert.EqualValues(t, 30, srv.updateBodies[0]["quantity"])
	assert.EqualValues(t, 50, srv.updateBodies[1]["quantity"], "restore must put the previous quantity back")
	assert.EqualValues(t, 2, srv.updateBodies[1]["version"], "restore must use the version the decrement produced")
}

func TestShip_RollbackFailureNeedsReconciliation(t *testing.T) {
	srv := newStockServer(t)
	srv.createStatus = http.StatusInternalServerError
	srv.updateStatus = func(call int64) int {
		if call == 1 {
			return http.StatusOK
		}
		return http.StatusInternalServerError
	}
	c := client.New(srv.URL)

	outcome, err := c.Ship(context.Background(), shipInput())

	var rerr *client.ReconciliationError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, uint(7), rerr.RecordID)
	assert.Equal(t, client.StateReconciliationRequired, outcome.State)
}

func TestShip_RetryWithSameRequestIDReplaysOutcome(t *testing.T) {
	srv := newStockServer(t)
	c := client.New(srv.URL)

	in := shipInput()
	in.RequestID = "req-42"

	first, err := c.Ship(context.Background(), in)
	require.NoError(t, err)
	assert.False(t, first.Replayed)

	second, err := c.Ship(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, second.Replayed)
	assert.Equal(t, client.StateCommitted, second.State)
	assert.Equal(t, first.Destination.ID, second.Destination.ID)

	assert.EqualValues(t, 1, srv.updateCalls, "retry must not double-decrement")
	assert.EqualValues(t, 1, srv.createCalls, "retry must not double-create")
}

func TestSell_RejectsQuantityOverStock(t *testing.T) {
	srv := newStockServer(t)
	c := client.New(srv.URL)

	_, err := c.Sell(context.Background(), client.SellInput{
		SourceRecordID:   12,
		PreviousQuantity: 5,
		Version:          1,
		StoreID:          3,
		ItemID:           9,
		ItemName:         "Notebook",
		Quantity:         8,
	})

	var verr *client.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, srv.updateCalls, "store record must stay untouched")
	assert.Zero(t, srv.createCalls)
}

func TestSell_DecrementsStoreAndRecordsPurchase(t *testing.T) {
	srv := newStockServer(t)
	c := client.New(srv.URL)

	outcome, err := c.Sell(context.Background(), client.SellInput{
		SourceRecordID:   12,
		PreviousQuantity: 5,
		Version:          1,
		StoreID:          3,
		ItemID:           9,
		ItemName:         "Notebook",
		WarehousePrice:   10,
		RetailPrice:      15,
		Quantity:         4,
		Date:             "2026-08-31",
	})
	require.NoError(t, err)

	assert.Equal(t, client.StateCommitted, outcome.State)
	require.NotNil(t, outcome.Purchase)
	assert.Equal(t, 4, outcome.Purchase.Quantity)
	assert.Equal(t, "2026-08-31", outcome.Purchase.Date)
	assert.Equal(t, []string{"storeItemsById", "purchases"}, outcome.Invalidated)
}

func TestSell_RejectsMalformedDate(t *testing.T) {
	srv := newStockServer(t)
	c := client.New(srv.URL)

	_, err := c.Sell(context.Background(), client.SellInput{
		SourceRecordID:   12,
		PreviousQuantity: 5,
		Version:          1,
		StoreID:          3,
		ItemID:           9,
		Quantity:         2,
		Date:             "31/08/2026",
	})

	var verr *client.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, srv.updateCalls)
}
