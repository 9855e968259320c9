package storage

// TopCostDriver is an overrun aggregate keyed by part, task and work
// center, ranked by cost overrun.
type TopCostDriver struct {
	Part                 string  `json:"part"`
	Task                 string  `json:"task"`
	WorkCenter           string  `json:"work_center"`
	PlannedHours         float64 `json:"planned_hours"`
	ActualHours          float64 `json:"actual_hours"`
	ExtraHours           float64 `json:"extra_hours"`
	CostOverrun          float64 `json:"cost_overrun"`
	TotalPartPlannedCost float64 `json:"total_part_planned_cost"`
	TotalPartActualCost  float64 `json:"total_part_actual_cost"`
}

type OverrunDetail struct {
	Part            string  `json:"part"`
	WorkCenter      string  `json:"work_center"`
	TaskDescription string  `json:"task_description"`
	ExtraHours      float64 `json:"extra_hours"`
	ExtraCost       float64 `json:"extra_cost"`
}

type TaskCost struct {
	Task        string  `json:"task"`
	Part        string  `json:"part"`
	WorkCenter  string  `json:"work_center"`
	PlannedCost float64 `json:"planned_cost"`
	ActualCost  float64 `json:"actual_cost"`
}

type WorkCenterHours struct {
	WorkCenter   string  `json:"work_center"`
	PlannedHours float64 `json:"planned"`
	ActualHours  float64 `json:"actual"`
}

// JobKPI is the per-job bundle behind the job detail page.
type JobKPI struct {
	JobNumber    string `json:"job_number"`
	CustomerName string `json:"customer_name"`
	DueDate      string `json:"due_date"`

	TotalPlannedHours float64 `json:"total_planned_hours"`
	TotalActualHours  float64 `json:"total_actual_hours"`
	ProjectedHours    float64 `json:"projected_hours"`

	TotalPlannedLaborCost float64 `json:"total_planned_labor_cost"`
	TotalActualLaborCost  float64 `json:"total_actual_labor_cost"`
	TotalGoodsCost        float64 `json:"total_goods_cost"`
	CostGoodsReceived     float64 `json:"cost_goods_received"`
	CostGoodsPending      float64 `json:"cost_goods_to_be_received"`
	QuantityGoodsPending  float64 `json:"quantity_goods_to_be_received"`
	QuantityGoodsReceived float64 `json:"quantity_goods_received"`
	WarrantyCost          float64 `json:"warranty_cost"`
	TotalPlannedCost      float64 `json:"total_planned_cost"`
	TotalActualCost       float64 `json:"total_actual_cost"`
	ProjectedCost         float64 `json:"projected_cost"`

	OrderValue   NullNumber `json:"order_value"`
	ProfitValue  NullNumber `json:"profit_value"`
	ProfitMargin NullNumber `json:"profit_margin"`

	OverHours      []Operation `json:"over_hours"`
	UnderHours     []Operation `json:"under_hours"`
	OverHoursCount int         `json:"over_hours_count"`
	OnTargetCount  int         `json:"under_or_on_target_hours_count"`

	WorkCenterSummary []WorkCenterHours `json:"work_center_summary"`
	OverrunDetails    []OverrunDetail   `json:"overrun_details"`
	DelayedPOs        []DelayedPO       `json:"delayed_pos"`
	IdleOperations    []Operation       `json:"idle_operations"`
	TaskCosts         []TaskCost        `json:"task_costs"`
	PurchaseOrders    []PurchaseOrder   `json:"purchase_orders"`

	UniqueParts       int             `json:"unique_parts"`
	TotalOverrunHours float64         `json:"total_overrun_hours"`
	TotalOverrunCost  float64         `json:"total_overrun_cost"`
	TopCostDrivers    []TopCostDriver `json:"top_cost_drivers"`
	DriverTotalCost   float64         `json:"driver_total_cost"`
	DriverCostPct     float64         `json:"driver_cost_pct"`
	LaborCostPctOver  float64         `json:"labor_cost_pct_over"`

	Flags []string `json:"flags"`
}

// ActiveJobRow is one row of the manager dashboard, active or D&I.
type ActiveJobRow struct {
	JobNumber         string     `json:"job_number"`
	Customer          string     `json:"customer"`
	TotalPlannedHours float64    `json:"total_planned_hours"`
	TotalActualHours  float64    `json:"total_actual_hours"`
	ProjectedHours    float64    `json:"projected_hours"`
	TotalPlannedCost  float64    `json:"total_planned_cost"`
	TotalActualCost   float64    `json:"total_actual_cost"`
	ProjectedCost     float64    `json:"projected_cost"`
	OrderValue        NullNumber `json:"order_value"`
	ProfitValue       NullNumber `json:"profit_value"`
	ProfitMargin      NullNumber `json:"profit_margin"`
	ReferenceName     string     `json:"reference_name"`
	DueDate           string     `json:"due_date"`
	DueDateFormatted  string     `json:"due_date_formatted"`
}

// ActiveJobTotals aggregates the dashboard rows.
type ActiveJobTotals struct {
	TotalJobs           int        `json:"total_jobs"`
	TotalPlannedHours   float64    `json:"total_planned_hours"`
	TotalActualHours    float64    `json:"total_actual_hours"`
	TotalProjectedHours float64    `json:"total_projected_hours"`
	TotalPlannedCost    float64    `json:"total_planned_cost"`
	TotalActualCost     float64    `json:"total_actual_cost"`
	TotalProjectedCost  float64    `json:"total_projected_cost"`
	TotalOrderValue     float64    `json:"total_order_value"`
	TotalProfitValue    float64    `json:"total_profit_value"`
	AverageProfitMargin NullNumber `json:"average_profit_margin"`
}

// CustomerProfitability heads the customer analysis page.
type CustomerProfitability struct {
	TopCustomer             string            `json:"top_customer"`
	TopCustomerListName     string            `json:"top_customer_list_name"`
	OverrunCustomer         string            `json:"overrun_customer"`
	OverrunCustomerListName string            `json:"overrun_customer_list_name"`
	RepeatRate              float64           `json:"repeat_rate"`
	AvgMargin               float64           `json:"avg_margin"`
	ProfitData              []CustomerSummary `json:"profit_data"`
}
