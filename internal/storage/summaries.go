package storage

// Aggregates derived from operations. All of them are recomputed from the
// operation snapshot on each query; none is persisted as source of truth.

type YearlySummary struct {
	Year           int     `json:"year"`
	PlannedHours   float64 `json:"planned_hours"`
	ActualHours    float64 `json:"actual_hours"`
	OverrunHours   float64 `json:"overrun_hours"`
	GhostHours     float64 `json:"ghost_hours"`
	NCRHours       float64 `json:"ncr_hours"`
	PlannedCost    float64 `json:"planned_cost"`
	ActualCost     float64 `json:"actual_cost"`
	JobCount       int     `json:"job_count"`
	OperationCount int     `json:"operation_count"`
	CustomerCount  int     `json:"customer_count"`
	PartCount      int     `json:"part_count"`
}

type QuarterlySummary struct {
	Quarter      string  `json:"quarter"` // "Q1 2023"
	PlannedHours float64 `json:"planned_hours"`
	ActualHours  float64 `json:"actual_hours"`
	OverrunHours float64 `json:"overrun_hours"`
	OverrunCost  float64 `json:"overrun_cost"`
	TotalJobs    int     `json:"total_jobs"`
}

type WorkCenterSummary struct {
	WorkCenter   string  `json:"work_center"`
	JobCount     int     `json:"job_count"`
	Operations   int     `json:"operations"`
	PlannedHours float64 `json:"planned_hours"`
	ActualHours  float64 `json:"actual_hours"`
	OverrunHours float64 `json:"overrun_hours"`
	OverrunCost  float64 `json:"overrun_cost"`
}

type CustomerSummary struct {
	CustomerName string  `json:"customer_name"`
	ListName     string  `json:"list_name"`
	JobCount     int     `json:"job_count"`
	PlannedHours float64 `json:"planned_hours"`
	ActualHours  float64 `json:"actual_hours"`
	OverrunHours float64 `json:"overrun_hours"`
	// Profitability proxy from hour efficiency; advisory, no external
	// margin signal backs it.
	Profitability float64 `json:"profitability"`
}

type PartSummary struct {
	PartName     string  `json:"part_name"`
	JobCount     int     `json:"job_count"`
	PlannedHours float64 `json:"planned_hours"`
	ActualHours  float64 `json:"actual_hours"`
	OverrunHours float64 `json:"overrun_hours"`
	ROI          float64 `json:"roi"`
}

// OverrunRecord is one overrun operation in a top-N listing.
type OverrunRecord struct {
	JobNumber       string  `json:"job_number"`
	PartName        string  `json:"part_name"`
	WorkCenter      string  `json:"work_center"`
	TaskDescription string  `json:"task_description"`
	PlannedHours    float64 `json:"planned_hours"`
	ActualHours     float64 `json:"actual_hours"`
	OverrunHours    float64 `json:"overrun_hours"`
	OverrunCost     float64 `json:"overrun_cost"`
}

type NCRPartSummary struct {
	PartName       string  `json:"part_name"`
	TotalNCRHours  float64 `json:"total_ncr_hours"`
	TotalNCRCost   float64 `json:"total_ncr_cost"`
	NCROccurrences int     `json:"ncr_occurrences"`
}

// RepeatNCR is a part whose NCR operations span more than one job.
type RepeatNCR struct {
	PartName       string  `json:"part_name"`
	RepeatNCRHours float64 `json:"repeat_ncr_hours"`
	TotalNCRJobs   int     `json:"total_ncr_jobs"`
}

type NCRAverages struct {
	AvgNCRCostPerYear      float64 `json:"avg_ncr_cost_per_year"`
	AvgPartsWithNCRPerYear float64 `json:"avg_parts_with_ncr_per_year"`
}

type NCRJobDetail struct {
	JobNumber       string  `json:"job_number"`
	WorkOrderNumber string  `json:"work_order_number"`
	NCRHours        float64 `json:"ncr_hours"`
}

type JobAdjustment struct {
	JobNumber         string  `json:"job_number"`
	PlannedHours      float64 `json:"planned_hours"`
	ActualHours       float64 `json:"actual_hours"`
	SuggestedHours    float64 `json:"suggested_hours"`
	AdjustmentPercent float64 `json:"adjustment_percent"`
}

type PartAdjustment struct {
	PartName          string  `json:"part_name"`
	JobCount          int     `json:"job_count"`
	PlannedHours      float64 `json:"planned_hours"`
	ActualHours       float64 `json:"actual_hours"`
	OverrunHours      float64 `json:"overrun_hours"`
	SuggestedHours    float64 `json:"suggested_hours"`
	AdjustmentPercent float64 `json:"adjustment_percent"`
}

type PartTaskDetail struct {
	PartName          string  `json:"part_name"`
	TaskDescription   string  `json:"task_description"`
	PlannedHours      float64 `json:"planned_hours"`
	ActualHours       float64 `json:"actual_hours"`
	OverrunHours      float64 `json:"overrun_hours"`
	AdjustmentPercent float64 `json:"suggested_percent_increase"`
}

// YearSummaryTotals heads the year detail bundle.
type YearSummaryTotals struct {
	Year                     int     `json:"year"`
	TotalPlannedHours        float64 `json:"total_planned_hours"`
	TotalActualHours         float64 `json:"total_actual_hours"`
	TotalOverrunHours        float64 `json:"total_overrun_hours"`
	GhostHours               float64 `json:"ghost_hours"`
	OpportunityHours         float64 `json:"opportunity_cost_hours"`
	OpportunityCostDollars   float64 `json:"opportunity_cost_dollars"`
	RecommendedBufferPercent float64 `json:"recommended_buffer_percent"`
	TotalNCRHours            float64 `json:"total_ncr_hours"`
	TotalPlannedCost         float64 `json:"total_planned_cost"`
	TotalActualCost          float64 `json:"total_actual_cost"`
	TotalJobs                int     `json:"total_jobs"`
	TotalOperations          int     `json:"total_operations"`
	TotalCustomers           int     `json:"total_customers"`
	TotalUniqueParts         int     `json:"total_unique_parts"`
}

// YearDetail is the full year-scoped bundle the detail page renders.
type YearDetail struct {
	Summary           YearSummaryTotals   `json:"summary"`
	QuarterlySummary  []QuarterlySummary  `json:"quarterly_summary"`
	TopOverruns       []OverrunRecord     `json:"top_overruns"`
	NCRSummary        []NCRPartSummary    `json:"ncr_summary"`
	WorkCenterSummary []WorkCenterSummary `json:"workcenter_summary"`
	RepeatNCRFailures []RepeatNCR         `json:"repeat_ncr_failures"`
	JobAdjustments    []JobAdjustment     `json:"job_adjustments"`
	PartOverruns      []PartAdjustment    `json:"part_overruns"`
	PartTaskDetails   []PartTaskDetail    `json:"part_task_details"`
	NCRAverages       NCRAverages         `json:"ncr_averages"`
}

// FullSummary covers the whole history with yearly and work-center
// breakdowns.
type FullSummary struct {
	TotalPlannedHours   float64             `json:"total_planned_hours"`
	TotalActualHours    float64             `json:"total_actual_hours"`
	TotalOverrunHours   float64             `json:"total_overrun_hours"`
	TotalPlannedCost    float64             `json:"total_planned_cost"`
	TotalActualCost     float64             `json:"total_actual_cost"`
	TotalNCRHours       float64             `json:"total_ncr_hours"`
	TotalJobs           int                 `json:"total_jobs"`
	TotalOperations     int                 `json:"total_operations"`
	TotalCustomers      int                 `json:"total_customers"`
	TotalUniqueParts    int                 `json:"total_unique_parts"`
	YearlyBreakdown     []YearlySummary     `json:"yearly_breakdown"`
	WorkCenterBreakdown []WorkCenterSummary `json:"workcenter_breakdown"`
}
