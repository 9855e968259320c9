// Package normalize turns raw work-history spreadsheets into typed
// operation rows and appends them to the store, skipping rows the store
// already holds.
package normalize

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"workhistory/internal/storage"
)

type IngestStorage interface {
	ExistingIdentities(ctx context.Context) (map[storage.StoreIdentity]bool, error)
	InsertOperations(ctx context.Context, ops []storage.Operation) error
}

type Service struct {
	log     *slog.Logger
	storage IngestStorage
}

func New(log *slog.Logger, st IngestStorage) *Service {
	return &Service{log: log, storage: st}
}

// IngestWorkbook reads the first sheet of an xlsx stream and appends its
// rows. The batch is deduplicated in two passes: in-batch by work order,
// operation number and task, then against the store by job, work order
// and operation number. Duplicates are counted, never silently lost.
func (s *Service) IngestWorkbook(ctx context.Context, r io.Reader) (storage.IngestResult, error) {
	const op = "normalize.IngestWorkbook"

	var result storage.IngestResult

	wb, err := excelize.OpenReader(r)
	if err != nil {
		return result, fmt.Errorf("%s: open workbook: %w", op, err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return result, fmt.Errorf("%s: workbook has no sheets", op)
	}

	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return result, fmt.Errorf("%s: read sheet %s: %w", op, sheets[0], err)
	}
	if len(rows) < 2 {
		return result, fmt.Errorf("%s: sheet %s has no data rows", op, sheets[0])
	}

	ops := NormalizeRows(rows[0], rows[1:])

	// Blank trailing rows are noise, not data: they count neither as
	// rows nor as duplicates.
	for _, raw := range rows[1:] {
		if !emptyRow(raw) {
			result.TotalRows++
		}
	}

	existing, err := s.storage.ExistingIdentities(ctx)
	if err != nil {
		return result, fmt.Errorf("%s: %w", op, err)
	}

	var fresh []storage.Operation
	for _, o := range ops {
		id := storage.StoreIdentity{
			JobNumber:       o.JobNumber,
			WorkOrderNumber: o.WorkOrderNumber,
			OperationNumber: o.OperationNumber,
		}
		if existing[id] {
			continue
		}
		existing[id] = true
		fresh = append(fresh, o)
	}

	if err := s.storage.InsertOperations(ctx, fresh); err != nil {
		return result, fmt.Errorf("%s: %w", op, err)
	}

	result.Inserted = len(fresh)
	result.SkippedDuplicates = result.TotalRows - result.Inserted

	s.log.Info("workbook ingested",
		slog.Int("total_rows", result.TotalRows),
		slog.Int("inserted", result.Inserted),
		slog.Int("skipped_duplicates", result.SkippedDuplicates),
	)

	return result, nil
}

// NormalizeRows maps a header row plus data rows into typed operations,
// dropping in-batch duplicates. The first occurrence of a duplicate
// identity wins. Rows whose job number resolves to "N/A" are kept; the
// only rows dropped besides duplicates are fully empty ones.
func NormalizeRows(header []string, rows [][]string) []storage.Operation {
	columns := MapHeader(header)
	today := time.Now().UTC().Truncate(24 * time.Hour)

	seen := make(map[storage.BatchIdentity]bool)
	out := make([]storage.Operation, 0, len(rows))

	for _, raw := range rows {
		if emptyRow(raw) {
			continue
		}

		o := normalizeRow(columns, raw)
		o.RecordedDate = today

		id := storage.BatchIdentity{
			WorkOrderNumber: o.WorkOrderNumber,
			OperationNumber: o.OperationNumber,
			TaskDescription: o.TaskDescription,
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, o)
	}

	return out
}

func normalizeRow(columns map[int]string, raw []string) storage.Operation {
	o := storage.Operation{
		JobNumber:       "N/A",
		WorkOrderNumber: "N/A",
		WorkCenter:      "N/A",
		PartName:        "N/A",
		TaskDescription: "N/A",
		CustomerName:    "N/A",
	}

	for i, canonical := range columns {
		var cell string
		if i < len(raw) {
			cell = raw[i]
		}
		switch canonical {
		case ColJobNumber:
			o.JobNumber = ParseText(cell)
		case ColWorkOrderNumber:
			o.WorkOrderNumber = ParseText(cell)
		case ColOperationNumber:
			o.OperationNumber = ParseNumber(cell)
		case ColWorkCenter:
			o.WorkCenter = ParseText(cell)
		case ColPartName:
			o.PartName = ParseText(cell)
		case ColTaskDescription:
			o.TaskDescription = ParseText(cell)
		case ColPlannedHours:
			o.PlannedHours = ParseHours(cell)
		case ColActualHours:
			o.ActualHours = ParseHours(cell)
		case ColCustomerName:
			o.CustomerName = ParseText(cell)
		case ColFinishDate:
			o.FinishDate = ParseDate(cell)
		}
	}

	return o
}

func emptyRow(raw []string) bool {
	for _, cell := range raw {
		if len(cell) > 0 {
			return false
		}
	}
	return true
}
