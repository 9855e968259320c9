package constants

// Metric names accepted by the metric detail and trend endpoints.
const (
	MetricPlannedHours    = "planned_hours"
	MetricActualHours     = "actual_hours"
	MetricOverrunHours    = "overrun_hours"
	MetricOverrunPercent  = "overrun_percent"
	MetricNCRHours        = "ncr_hours"
	MetricPlannedCost     = "planned_cost"
	MetricActualCost      = "actual_cost"
	MetricOverrunCost     = "overrun_cost"
	MetricAvgCostPerHour  = "avg_cost_per_hour"
	MetricTotalJobs       = "total_jobs"
	MetricTotalOperations = "total_operations"
	MetricTotalCustomers  = "total_customers"
)

// MetricCatalog lists every metric the trend estimator understands, with
// the display name used in correlation rows.
var MetricCatalog = []struct {
	Name    string
	Display string
}{
	{MetricPlannedHours, "Planned Hours"},
	{MetricActualHours, "Actual Hours"},
	{MetricOverrunHours, "Overrun Hours"},
	{MetricOverrunPercent, "Overrun Percentage"},
	{MetricNCRHours, "NCR Hours"},
	{MetricPlannedCost, "Planned Cost"},
	{MetricActualCost, "Actual Cost"},
	{MetricOverrunCost, "Overrun Cost"},
	{MetricAvgCostPerHour, "Avg Cost Per Hour"},
	{MetricTotalJobs, "Total Jobs"},
	{MetricTotalOperations, "Total Operations"},
	{MetricTotalCustomers, "Total Customers"},
}

// ValidMetric reports whether name is a known metric.
func ValidMetric(name string) bool {
	for _, m := range MetricCatalog {
		if m.Name == name {
			return true
		}
	}
	return false
}
