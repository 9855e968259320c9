package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"workhistory/internal/storage"
)

// ExistingIdentities loads the store identity of every persisted
// operation, so ingest can skip rows already present.
func (s *Storage) ExistingIdentities(ctx context.Context) (map[storage.StoreIdentity]bool, error) {
	const op = "storage.mysql.ExistingIdentities"

	stmt := "SELECT job_number, work_order_number, operation_number FROM job_history"

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: identity query failed: %w", op, err)
	}
	defer rows.Close()

	existing := make(map[storage.StoreIdentity]bool)
	for rows.Next() {
		var id storage.StoreIdentity
		var operNum sql.NullFloat64
		if err := rows.Scan(&id.JobNumber, &id.WorkOrderNumber, &operNum); err != nil {
			return nil, fmt.Errorf("%s: identity scan failed: %w", op, err)
		}
		id.OperationNumber = operNum.Float64
		existing[id] = true
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: identity iteration failed: %w", op, err)
	}

	return existing, nil
}

// InsertOperations appends normalized rows in a single transaction.
func (s *Storage) InsertOperations(ctx context.Context, ops []storage.Operation) error {
	const op = "storage.mysql.InsertOperations"

	if len(ops) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin tx: %w", op, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO job_history
			(job_number, work_order_number, operation_number, work_center,
			 part_name, task_description, planned_hours, actual_hours,
			 finish_date, customer_name, status, remaining_work, recorded_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("%s: prepare insert: %w", op, err)
	}
	defer stmt.Close()

	for _, o := range ops {
		_, err = stmt.ExecContext(ctx,
			o.JobNumber,
			o.WorkOrderNumber,
			o.OperationNumber,
			o.WorkCenter,
			o.PartName,
			o.TaskDescription,
			o.PlannedHours,
			o.ActualHours,
			o.FinishDate,
			o.CustomerName,
			o.Status,
			o.RemainingWork,
			o.RecordedDate,
		)
		if err != nil {
			return fmt.Errorf("%s: insert row job=%s wo=%s: %w", op, o.JobNumber, o.WorkOrderNumber, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}

	return nil
}

// GetOperations returns a snapshot of operation rows matching the filter.
// Every aggregation query in the engine runs over the slice this returns,
// so its sub-totals stay internally consistent even while ingest appends.
func (s *Storage) GetOperations(ctx context.Context, filter storage.OperationFilter) ([]storage.Operation, error) {
	const op = "storage.mysql.GetOperations"

	var sb strings.Builder
	sb.WriteString(`
		SELECT id, job_number, work_order_number, operation_number,
		       work_center, part_name, task_description, planned_hours,
		       actual_hours, finish_date, customer_name, status,
		       remaining_work, recorded_date
		FROM job_history
		WHERE (? = 0 OR YEAR(finish_date) = ?)
		  AND (? = '' OR customer_name LIKE CONCAT('%', ?, '%'))
		  AND (? = '' OR part_name LIKE CONCAT('%', ?, '%'))
		  AND (? = '' OR work_center LIKE CONCAT('%', ?, '%'))
		  AND (? = '' OR job_number = ?)
		ORDER BY finish_date DESC, id`)

	args := []any{
		filter.Year, filter.Year,
		filter.Customer, filter.Customer,
		filter.Part, filter.Part,
		filter.WorkCenter, filter.WorkCenter,
		filter.JobNumber, filter.JobNumber,
	}
	if filter.Limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%s: snapshot query failed: %w", op, err)
	}
	defer rows.Close()

	var items []storage.Operation
	for rows.Next() {
		item, err := scanOperation(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: iteration failed: %w", op, err)
	}

	return items, nil
}

func scanOperation(rows *sql.Rows) (storage.Operation, error) {
	var item storage.Operation
	var (
		operNum    sql.NullFloat64
		workCenter sql.NullString
		partName   sql.NullString
		task       sql.NullString
		planned    sql.NullFloat64
		actual     sql.NullFloat64
		finish     sql.NullTime
		customer   sql.NullString
		status     sql.NullString
		remaining  sql.NullFloat64
		recorded   sql.NullTime
	)

	err := rows.Scan(
		&item.ID,
		&item.JobNumber,
		&item.WorkOrderNumber,
		&operNum,
		&workCenter,
		&partName,
		&task,
		&planned,
		&actual,
		&finish,
		&customer,
		&status,
		&remaining,
		&recorded,
	)
	if err != nil {
		return item, fmt.Errorf("operation scan failed: %w", err)
	}

	// NULL numerics read as zero so downstream arithmetic never sees a
	// missing value.
	item.OperationNumber = operNum.Float64
	item.WorkCenter = workCenter.String
	item.PartName = partName.String
	item.TaskDescription = task.String
	item.PlannedHours = planned.Float64
	item.ActualHours = actual.Float64
	item.CustomerName = customer.String
	if finish.Valid {
		t := finish.Time
		item.FinishDate = &t
	}
	if status.Valid {
		v := status.String
		item.Status = &v
	}
	if remaining.Valid {
		v := remaining.Float64
		item.RemainingWork = &v
	}
	if recorded.Valid {
		item.RecordedDate = recorded.Time
	}

	return item, nil
}
