package json_types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockTime_UnmarshalJSON(t *testing.T) {
	var ct ClockTime
	require.NoError(t, json.Unmarshal([]byte(`"09:30"`), &ct))
	assert.Equal(t, ClockTime{Hour: 9, Minute: 30}, ct)

	assert.Error(t, json.Unmarshal([]byte(`"9am"`), &ct))
}

func TestClockTime_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(ClockTime{Hour: 9, Minute: 5})
	require.NoError(t, err)
	assert.Equal(t, `"09:05"`, string(data))
}
