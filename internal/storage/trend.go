package storage

// MetricPoint is one yearly value of a selected metric.
type MetricPoint struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// Correlation is an advisory estimate from a fixed heuristic table, not a
// statistical computation; do not treat it as load-bearing.
type Correlation struct {
	Metric      string  `json:"metric"`
	Correlation float64 `json:"correlation"`
	Strength    string  `json:"strength"`
}

type TrendSummary struct {
	Total          float64 `json:"total"`
	YearlyAvg      float64 `json:"yearly_avg"`
	YoYChange      float64 `json:"yoy_change"`
	TrendDirection string  `json:"trend_direction"`
	TrendStrength  string  `json:"trend_strength"`
}

// MetricDetail is the bundle behind the metric drill-down page.
type MetricDetail struct {
	Metric       string        `json:"metric"`
	Summary      TrendSummary  `json:"summary"`
	YearlyData   []MetricPoint `json:"yearly_data"`
	Correlations []Correlation `json:"correlations"`
	RowCount     int           `json:"count"`
	Rows         []Operation   `json:"rows"`
}
