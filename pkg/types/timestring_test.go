package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("9:30:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("")
	assert.Error(t, err)
}

func TestNewTimeString(t *testing.T) {
	now := time.Date(2026, 3, 10, 7, 5, 59, 0, time.Local)
	assert.Equal(t, TimeString("07:05"), NewTimeString(now))
}

func TestAddMinutes(t *testing.T) {
	ts := TimeString("09:30")

	end, err := ts.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), end)

	end, err = ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:00"), end)

	// Слоты не пересекают полночь
	_, err = TimeString("23:30").AddMinutes(60)
	assert.Error(t, err)
}

func TestAddMinutes_DayEnd(t *testing.T) {
	// Конец суток не заворачивается в "00:00": окно 23:30-24:00
	// должно оставаться хронологически позже любого начала слота
	end, err := TimeString("23:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), end)
	assert.True(t, end.IsAfter(TimeString("23:30")))
	assert.True(t, TimeString("23:45").IsBefore(end))
}

func TestMinutesSinceMidnight(t *testing.T) {
	minutes, err := TimeString("08:15").MinutesSinceMidnight()
	require.NoError(t, err)
	assert.Equal(t, 8*60+15, minutes)

	_, err = TimeString("bad").MinutesSinceMidnight()
	assert.Error(t, err)
}

func TestComparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.True(t, TimeString("10:00").IsAfter("09:30"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))
}

func TestScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:00"))
	assert.Equal(t, TimeString("14:00"), ts)

	require.NoError(t, ts.Scan([]byte("15:30")))
	assert.Equal(t, TimeString("15:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 1, 1, 16, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("16:45"), ts)

	assert.Error(t, ts.Scan(42))
}
