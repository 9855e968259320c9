package storage

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.2345))
	assert.Equal(t, 1.24, Round2(1.236))
	assert.Equal(t, -1.23, Round2(-1.2349))
	assert.Equal(t, 0.0, Round2(0))
}

func TestNullNumber_MarshalValid(t *testing.T) {
	data, err := json.Marshal(Number(18.4567))
	require.NoError(t, err)
	assert.Equal(t, "18.46", string(data))
}

func TestNullNumber_MarshalInvalid(t *testing.T) {
	data, err := json.Marshal(NA())
	require.NoError(t, err)
	// Undefined ratios render as the literal string, never 0 or null.
	assert.Equal(t, `"N/A"`, string(data))
}

func TestNullNumber_Unmarshal(t *testing.T) {
	var n NullNumber
	require.NoError(t, json.Unmarshal([]byte("12.5"), &n))
	assert.True(t, n.Valid)
	assert.Equal(t, 12.5, n.Value)

	require.NoError(t, json.Unmarshal([]byte(`"N/A"`), &n))
	assert.False(t, n.Valid)
}
