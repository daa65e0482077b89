package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, 3, 3, 14, 30, 59, 0, time.UTC)
	assert.Equal(t, TimeString("14:30"), NewTimeString(moment))
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("08:00")
	require.NoError(t, err)
	assert.Equal(t, TimeString("08:00"), ts)

	for _, bad := range []string{"8:00am", "24:30", "12", "", "12:60"} {
		_, err := NewTimeStringFromString(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestTimeString_IsValid(t *testing.T) {
	assert.True(t, TimeString("00:00").IsValid())
	assert.True(t, TimeString("23:59").IsValid())
	assert.False(t, TimeString("24:00").IsValid())
	assert.False(t, TimeString("abc").IsValid())
	assert.False(t, TimeString("").IsValid())
}

func TestTimeString_TotalMinutes(t *testing.T) {
	minutes, err := TimeString("14:30").TotalMinutes()
	require.NoError(t, err)
	assert.Equal(t, 870, minutes)

	_, err = TimeString("99:99").TotalMinutes()
	assert.Error(t, err)
}

func TestTimeString_AddMinutes(t *testing.T) {
	next, err := TimeString("08:00").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:00"), next)

	// 24:00 допустимо как верхняя граница интервала
	boundary, err := TimeString("23:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), boundary)

	// Переход через полночь запрещен
	_, err = TimeString("23:30").AddMinutes(60)
	assert.Error(t, err)

	back, err := TimeString("10:00").AddMinutes(-30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), back)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("18:00"))
	assert.False(t, TimeString("18:00").IsBefore("08:00"))
	assert.False(t, TimeString("12:00").IsBefore("12:00"))

	assert.True(t, TimeString("18:00").IsAfter("08:00"))
	assert.False(t, TimeString("12:00").IsAfter("12:00"))
}
