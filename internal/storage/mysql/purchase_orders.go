package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"workhistory/internal/storage"
)

// GetPurchaseOrdersByJob returns the purchase orders tied to a job. The
// engine only reads them; nothing here mutates the PO table.
func (s *Storage) GetPurchaseOrdersByJob(ctx context.Context, jobNumber string) ([]storage.PurchaseOrder, error) {
	const op = "storage.mysql.GetPurchaseOrdersByJob"

	stmt := `
		SELECT id, job_number, po_number, description, net_price,
		       order_quantity, pending_quantity, pending_value, expected_delivery
		FROM purchase_orders
		WHERE job_number = ?
		ORDER BY po_number`

	rows, err := s.db.QueryContext(ctx, stmt, jobNumber)
	if err != nil {
		return nil, fmt.Errorf("%s: po query for job=%s failed: %w", op, jobNumber, err)
	}
	defer rows.Close()

	var items []storage.PurchaseOrder
	for rows.Next() {
		var item storage.PurchaseOrder
		var (
			desc     sql.NullString
			netPrice sql.NullFloat64
			orderQty sql.NullFloat64
			pendQty  sql.NullFloat64
			pendVal  sql.NullFloat64
			expected sql.NullTime
		)
		err := rows.Scan(
			&item.ID,
			&item.JobNumber,
			&item.PONumber,
			&desc,
			&netPrice,
			&orderQty,
			&pendQty,
			&pendVal,
			&expected,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: po scan failed: %w", op, err)
		}
		item.Description = desc.String
		item.NetPrice = netPrice.Float64
		item.OrderQuantity = orderQty.Float64
		item.PendingQuantity = pendQty.Float64
		item.PendingValue = pendVal.Float64
		if expected.Valid {
			t := expected.Time
			item.ExpectedDelivery = &t
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: po iteration failed: %w", op, err)
	}

	return items, nil
}
