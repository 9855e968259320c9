package storage

import "time"

// Operation is one planned/actual labor record for a task on a part within
// a job. Normalized once on ingest, never mutated afterwards.
type Operation struct {
	ID              int64      `json:"id,omitempty"`
	JobNumber       string     `json:"job_number"`
	WorkOrderNumber string     `json:"work_order_number"`
	OperationNumber float64    `json:"operation_number"`
	WorkCenter      string     `json:"work_center"`
	PartName        string     `json:"part_name"`
	TaskDescription string     `json:"task_description"`
	PlannedHours    float64    `json:"planned_hours"`
	ActualHours     float64    `json:"actual_hours"`
	FinishDate      *time.Time `json:"finish_date"`
	CustomerName    string     `json:"customer_name"`

	// Populated by the live feed only; file ingest leaves them NULL.
	Status        *string  `json:"status,omitempty"`
	RemainingWork *float64 `json:"remaining_work,omitempty"`

	RecordedDate time.Time `json:"recorded_date,omitempty"`
}

// StoreIdentity is the identity used to skip rows already persisted.
type StoreIdentity struct {
	JobNumber       string
	WorkOrderNumber string
	OperationNumber float64
}

// BatchIdentity deduplicates rows within a single raw batch.
type BatchIdentity struct {
	WorkOrderNumber string
	OperationNumber float64
	TaskDescription string
}

// IngestResult reports what an ingestion call did with a raw batch.
type IngestResult struct {
	TotalRows         int `json:"total_rows"`
	Inserted          int `json:"inserted"`
	SkippedDuplicates int `json:"skipped_duplicates"`
}

// OperationFilter narrows snapshot queries. Zero values mean "no filter".
type OperationFilter struct {
	Year       int
	Customer   string
	Part       string
	WorkCenter string
	JobNumber  string
	Limit      int
}
