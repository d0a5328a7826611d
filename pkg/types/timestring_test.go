package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid", input: "19:30", want: "19:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "normalizes single digit hour", input: "9:30", want: "09:30"},
		{name: "hour out of range", input: "25:00", wantErr: true},
		{name: "minutes out of range", input: "12:61", wantErr: true},
		{name: "with seconds", input: "12:00:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 3, 9, 18, 45, 59, 0, time.UTC)
	assert.Equal(t, TimeString("18:45"), NewTimeString(moment))
}

func TestTimeString_TotalMinutes(t *testing.T) {
	tests := []struct {
		ts   TimeString
		want int
	}{
		{ts: "00:00", want: 0},
		{ts: "01:00", want: 60},
		{ts: "19:30", want: 1170},
		{ts: "23:59", want: 1439},
	}

	for _, tt := range tests {
		t.Run(tt.ts.String(), func(t *testing.T) {
			got, err := tt.ts.TotalMinutes()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("invalid value", func(t *testing.T) {
		_, err := TimeString("nope").TotalMinutes()
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		ts      TimeString
		minutes int
		want    TimeString
	}{
		{name: "within hour", ts: "19:00", minutes: 30, want: "19:30"},
		{name: "crosses hour", ts: "19:45", minutes: 30, want: "20:15"},
		{name: "zero", ts: "19:00", minutes: 0, want: "19:00"},
		{name: "wraps past midnight", ts: "23:50", minutes: 30, want: "00:20"},
		{name: "negative shift", ts: "10:00", minutes: -15, want: "09:45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.ts.AddMinutes(tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("invalid value", func(t *testing.T) {
		_, err := TimeString("").AddMinutes(10)
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:01"))
	assert.False(t, TimeString("09:01").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))

	assert.True(t, TimeString("22:00").IsAfter("21:59"))
	assert.False(t, TimeString("21:59").IsAfter("22:00"))
	assert.False(t, TimeString("22:00").IsAfter("22:00"))

	// некорректные значения не упорядочены
	assert.False(t, TimeString("bad").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("bad"))
}

func TestTimeString_MinutesBetween(t *testing.T) {
	got, err := TimeString("19:00").MinutesBetween("20:30")
	require.NoError(t, err)
	assert.Equal(t, 90, got)

	got, err = TimeString("20:30").MinutesBetween("19:00")
	require.NoError(t, err)
	assert.Equal(t, -90, got)

	_, err = TimeString("19:00").MinutesBetween("bad")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  interface{}
		want TimeString
	}{
		{name: "postgres time with seconds", src: "19:30:00", want: "19:30"},
		{name: "plain HH:MM", src: "19:30", want: "19:30"},
		{name: "bytes", src: []byte("08:15:00"), want: "08:15"},
		{name: "time.Time", src: time.Date(2026, 3, 9, 12, 5, 0, 0, time.UTC), want: "12:05"},
		{name: "nil", src: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts TimeString
			require.NoError(t, ts.Scan(tt.src))
			assert.Equal(t, tt.want, ts)
		})
	}

	t.Run("unsupported type", func(t *testing.T) {
		var ts TimeString
		assert.ErrorIs(t, ts.Scan(42), ErrInvalidTimeString)
	})

	t.Run("unparseable string", func(t *testing.T) {
		var ts TimeString
		assert.ErrorIs(t, ts.Scan("25:99"), ErrInvalidTimeString)
	})
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("19:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "19:30", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestTimeString_OnDate(t *testing.T) {
	date := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	got, err := TimeString("19:30").OnDate(date, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 9, 19, 30, 0, 0, time.UTC), got)

	_, err = TimeString("bad").OnDate(date, time.UTC)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
