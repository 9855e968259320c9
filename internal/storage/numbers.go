package storage

import (
	"encoding/json"
	"math"
)

// Round2 rounds to two decimal places. Every monetary and hour field is
// rounded with it at the response boundary.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds to one decimal place, used for hour and percent columns
// that render at coarser precision.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// NullNumber is a ratio or money value whose denominator may be undefined.
// It marshals as a number rounded to two decimals, or as the literal
// string "N/A" when invalid - never as 0 or null.
type NullNumber struct {
	Value float64
	Valid bool
}

func Number(v float64) NullNumber {
	return NullNumber{Value: v, Valid: true}
}

func NA() NullNumber {
	return NullNumber{}
}

func (n NullNumber) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return json.Marshal("N/A")
	}
	return json.Marshal(Round2(n.Value))
}

func (n *NullNumber) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		// "N/A" or null both decode to the invalid state.
		n.Value, n.Valid = 0, false
		return nil
	}
	n.Value, n.Valid = v, true
	return nil
}
