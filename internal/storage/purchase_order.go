package storage

import "time"

// PurchaseOrder is an external goods record tied to a job. Read-only input
// to cost and delay computations.
type PurchaseOrder struct {
	ID               int64      `json:"id,omitempty"`
	JobNumber        string     `json:"job_number"`
	PONumber         string     `json:"po_number"`
	Description      string     `json:"description"`
	NetPrice         float64    `json:"net_price"`
	OrderQuantity    float64    `json:"order_quantity"`
	PendingQuantity  float64    `json:"pending_quantity"`
	PendingValue     float64    `json:"pending_value"`
	ExpectedDelivery *time.Time `json:"expected_delivery"`
}

// DelayedPO is a purchase order past its expected delivery with goods
// still pending.
type DelayedPO struct {
	PONumber         string     `json:"po_number"`
	Description      string     `json:"description"`
	ExpectedDelivery *time.Time `json:"expected_delivery"`
	DaysLate         int        `json:"days_late"`
	PendingValue     float64    `json:"pending_value"`
}
