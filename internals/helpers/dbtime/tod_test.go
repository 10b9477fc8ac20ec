package dbtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	short, err := Parse("08:17")
	require.NoError(t, err)
	assert.Equal(t, "08:17:00", short.Format("15:04:05"))

	long, err := Parse("23:59:58")
	require.NoError(t, err)
	assert.Equal(t, "23:59:58", long.Format("15:04:05"))

	_, err = Parse("25:00")
	assert.Error(t, err)
	_, err = Parse("not a time")
	assert.Error(t, err)
}

func TestFrom_DropsDateAndZone(t *testing.T) {
	loc := time.FixedZone("X", 3600)
	a := From(time.Date(2026, 3, 2, 9, 30, 0, 0, loc))
	b := From(time.Date(1999, 12, 31, 9, 30, 0, 0, time.UTC))
	assert.True(t, a.Equal(b.Time))
}

func TestValue(t *testing.T) {
	tod, err := Parse("08:17")
	require.NoError(t, err)
	v, err := tod.Value()
	require.NoError(t, err)
	assert.Equal(t, "08:17:00", v)

	var zero Tod
	v, err = zero.Value()
	require.NoError(t, err)
	assert.Equal(t, "00:00:00", v)
}

func TestScan(t *testing.T) {
	var tod Tod
	require.NoError(t, tod.Scan("14:05:09"))
	assert.Equal(t, "14:05:09", tod.Format("15:04:05"))

	require.NoError(t, tod.Scan([]byte("06:00")))
	assert.Equal(t, "06:00:00", tod.Format("15:04:05"))

	require.NoError(t, tod.Scan(time.Date(2026, 3, 2, 18, 45, 0, 0, time.UTC)))
	assert.Equal(t, "18:45:00", tod.Format("15:04:05"))

	assert.Error(t, tod.Scan(42))
}

func TestJSONRoundTrip(t *testing.T) {
	tod, err := Parse("08:17")
	require.NoError(t, err)

	raw, err := json.Marshal(tod)
	require.NoError(t, err)
	assert.Equal(t, `"08:17:00"`, string(raw))

	var back Tod
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, tod.Equal(back.Time))
}
