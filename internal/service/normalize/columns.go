package normalize

import "strings"

// Canonical column names of a normalized operation row.
const (
	ColJobNumber       = "job_number"
	ColWorkOrderNumber = "work_order_number"
	ColOperationNumber = "operation_number"
	ColWorkCenter      = "work_center"
	ColPartName        = "part_name"
	ColTaskDescription = "task_description"
	ColPlannedHours    = "planned_hours"
	ColActualHours     = "actual_hours"
	ColCustomerName    = "customer_name"
	ColFinishDate      = "finish_date"
)

// headerVariants maps folded header cells to canonical columns. The keys
// are the ERP export names and the aliases seen in hand-edited sheets;
// folding strips case, spaces and punctuation so "Oper./Act." and
// "oper act" land on the same key.
var headerVariants = map[string]string{
	"salesdocument": ColJobNumber,
	"jobnumber":     ColJobNumber,
	"jobid":         ColJobNumber,
	"job":           ColJobNumber,
	"salesorder":    ColJobNumber,
	"sonumber":      ColJobNumber,

	"order":           ColWorkOrderNumber,
	"workorder":       ColWorkOrderNumber,
	"workordernumber": ColWorkOrderNumber,
	"ordernumber":     ColWorkOrderNumber,

	"operact":         ColOperationNumber,
	"operationnumber": ColOperationNumber,
	"opernumber":      ColOperationNumber,
	"opnumber":        ColOperationNumber,

	"operworkcenter": ColWorkCenter,
	"workcenter":     ColWorkCenter,
	"workctr":        ColWorkCenter,
	"wrkctr":         ColWorkCenter,
	"resource":       ColWorkCenter,

	"description":     ColPartName,
	"partname":        ColPartName,
	"part":            ColPartName,
	"partnumber":      ColPartName,
	"material":        ColPartName,
	"materialnumber":  ColPartName,
	"item":            ColPartName,
	"itemdescription": ColPartName,

	"oprshorttext":    ColTaskDescription,
	"opshorttext":     ColTaskDescription,
	"taskdescription": ColTaskDescription,
	"task":            ColTaskDescription,

	"work":           ColPlannedHours,
	"plannedhours":   ColPlannedHours,
	"planhours":      ColPlannedHours,
	"planned":        ColPlannedHours,
	"standardhours":  ColPlannedHours,
	"estimatedhours": ColPlannedHours,

	"actualwork":     ColActualHours,
	"actualhours":    ColActualHours,
	"acthours":       ColActualHours,
	"actual":         ColActualHours,
	"confirmedhours": ColActualHours,

	"listname":     ColCustomerName,
	"customername": ColCustomerName,
	"customer":     ColCustomerName,
	"clientname":   ColCustomerName,
	"client":       ColCustomerName,
	"companyname":  ColCustomerName,
	"company":      ColCustomerName,

	"basicfindate":    ColFinishDate,
	"basicfinishdate": ColFinishDate,
	"finishdate":      ColFinishDate,
	"findate":         ColFinishDate,
	"completiondate":  ColFinishDate,
	"date":            ColFinishDate,
}

// foldHeader lowercases a header cell and strips everything that is not a
// letter or digit.
func foldHeader(h string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(h) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MapHeader resolves a raw header row to column index -> canonical name.
// Unrecognized headers are ignored; the first match wins when a sheet
// repeats a column.
func MapHeader(header []string) map[int]string {
	seen := make(map[string]bool)
	mapped := make(map[int]string)
	for i, cell := range header {
		canonical, ok := headerVariants[foldHeader(cell)]
		if !ok || seen[canonical] {
			continue
		}
		seen[canonical] = true
		mapped[i] = canonical
	}
	return mapped
}
