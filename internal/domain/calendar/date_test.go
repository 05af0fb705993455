//go:build unit

package calendar_test

import (
	"encoding/json"
	"testing"
	"time"

	"bluehaven/internal/domain/calendar"
	"bluehaven/internal/pkg/clock"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		valid bool
	}{
		{"iso day OK", "2026-07-10", true},
		{"leap day OK", "2028-02-29", true},
		{"non leap day NG", "2026-02-29", false},
		{"slashes NG", "2026/07/10", false},
		{"timestamp NG", "2026-07-10T00:00:00Z", false},
		{"empty NG", "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d, err := calendar.Parse(c.in)
			if c.valid {
				require.NoError(t, err)
				assert.Equal(t, c.in, d.String())
			} else {
				require.ErrorIs(t, err, calendar.ErrInvalidDate)
			}
		})
	}
}

func TestToday(t *testing.T) {
	sast := time.FixedZone("SAST", 2*60*60)
	clk := clock.NewMockClock(time.Date(2026, 7, 9, 23, 30, 0, 0, time.UTC))

	assert.Equal(t, "2026-07-10", calendar.Today(clk, sast).String())
	assert.Equal(t, "2026-07-09", calendar.Today(clk, time.UTC).String())
}

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want int
	}{
		{"same day", "2026-07-10", "2026-07-10", 0},
		{"one night", "2026-07-10", "2026-07-11", 1},
		{"across the year boundary", "2026-12-30", "2027-01-02", 3},
		{"through a leap day", "2028-02-28", "2028-03-01", 2},
		{"non leap february", "2026-02-28", "2026-03-01", 1},
		{"leap year span", "2028-01-01", "2029-01-01", 366},
		{"common year span", "2026-01-01", "2027-01-01", 365},
		{"beyond duration range", "2026-10-20", "9999-12-31", 2912150},
		{"twentieth century to year 9999", "1900-01-01", "9999-12-31", 2958463},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, b := calendar.MustParse(c.a), calendar.MustParse(c.b)

			assert.Equal(t, c.want, calendar.DaysBetween(a, b))
			assert.Equal(t, -c.want, calendar.DaysBetween(b, a), "antisymmetric")
		})
	}

	t.Run("agrees with walking the range", func(t *testing.T) {
		r, err := calendar.NewRange(calendar.MustParse("2027-12-20"), calendar.MustParse("2028-03-05"))
		require.NoError(t, err)
		assert.Len(t, r.Days(), r.Nights())
		assert.Equal(t, 76, r.Nights())
	})
}

func TestRange(t *testing.T) {
	t.Run("nights exclude the check-out day", func(t *testing.T) {
		r, err := calendar.NewRange(calendar.MustParse("2026-07-10"), calendar.MustParse("2026-07-13"))
		require.NoError(t, err)

		got := make([]string, 0)
		for _, d := range r.Days() {
			got = append(got, d.String())
		}
		want := []string{"2026-07-10", "2026-07-11", "2026-07-12"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Days mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 3, r.Nights())
		assert.True(t, r.Contains(calendar.MustParse("2026-07-12")))
		assert.False(t, r.Contains(calendar.MustParse("2026-07-13")))
	})

	t.Run("month boundary", func(t *testing.T) {
		r, err := calendar.NewRange(calendar.MustParse("2026-01-30"), calendar.MustParse("2026-02-02"))
		require.NoError(t, err)
		assert.Equal(t, 3, r.Nights())
	})

	t.Run("check-out on or before check-in NG", func(t *testing.T) {
		_, err := calendar.NewRange(calendar.MustParse("2026-07-10"), calendar.MustParse("2026-07-10"))
		require.ErrorIs(t, err, calendar.ErrInvalidRange)

		_, err = calendar.NewRange(calendar.MustParse("2026-07-10"), calendar.MustParse("2026-07-09"))
		require.ErrorIs(t, err, calendar.ErrInvalidRange)
	})

	t.Run("back-to-back stays do not overlap", func(t *testing.T) {
		first, _ := calendar.NewRange(calendar.MustParse("2026-07-10"), calendar.MustParse("2026-07-13"))
		next, _ := calendar.NewRange(calendar.MustParse("2026-07-13"), calendar.MustParse("2026-07-15"))
		inside, _ := calendar.NewRange(calendar.MustParse("2026-07-12"), calendar.MustParse("2026-07-14"))

		assert.False(t, first.Overlaps(next))
		assert.True(t, first.Overlaps(inside))
		assert.True(t, inside.Overlaps(next))
	})
}

func TestSet(t *testing.T) {
	blocked := calendar.SetFromStrings([]string{"2026-07-12", "2026-07-11", "garbage"})
	assert.Equal(t, 2, blocked.Len())
	assert.Equal(t, []string{"2026-07-11", "2026-07-12"}, blocked.Strings())

	overlapping, _ := calendar.NewRange(calendar.MustParse("2026-07-12"), calendar.MustParse("2026-07-14"))
	arrivingAfter, _ := calendar.NewRange(calendar.MustParse("2026-07-13"), calendar.MustParse("2026-07-14"))
	leavingOnBlocked, _ := calendar.NewRange(calendar.MustParse("2026-07-09"), calendar.MustParse("2026-07-11"))

	assert.True(t, blocked.IntersectsRange(overlapping))
	assert.False(t, blocked.IntersectsRange(arrivingAfter))
	assert.False(t, blocked.IntersectsRange(leavingOnBlocked))
}

func TestDateJSON(t *testing.T) {
	var payload struct {
		Day  calendar.Date `json:"day"`
		None calendar.Date `json:"none"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"day":"2026-07-10","none":null}`), &payload))
	assert.Equal(t, "2026-07-10", payload.Day.String())
	assert.True(t, payload.None.IsZero())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"day":"2026-07-10","none":null}`, string(out))

	require.Error(t, json.Unmarshal([]byte(`{"day":"10/07/2026"}`), &payload))
}
