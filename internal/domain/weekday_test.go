package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"fittracker/fitness-app/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekday_MatchesTimeWeekday(t *testing.T) {
	for _, wd := range []time.Weekday{time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday} {
		got := domain.WeekdayOf(wd)
		assert.Equal(t, int(wd), int(got))
		assert.Equal(t, wd.String(), capitalize(got.String()))
	}
}

func capitalize(s string) string {
	return string(s[0]-'a'+'A') + s[1:]
}

func TestParseWeekday(t *testing.T) {
	d, err := domain.ParseWeekday(" Monday ")
	require.NoError(t, err)
	assert.Equal(t, domain.Monday, d)

	_, err = domain.ParseWeekday("funday")
	assert.Error(t, err)
}

func TestDaySet(t *testing.T) {
	s := domain.NewDaySet(domain.Wednesday, domain.Monday, domain.Monday)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has(domain.Monday))
	assert.True(t, s.Has(domain.Wednesday))
	assert.False(t, s.Has(domain.Tuesday))
	assert.Equal(t, []domain.Weekday{domain.Monday, domain.Wednesday}, s.Days())
	assert.Equal(t, "monday,wednesday", s.String())

	s = s.Remove(domain.Monday).Remove(domain.Wednesday)
	assert.True(t, s.Empty())

	assert.True(t, domain.NewDaySet(domain.Weekday(9)).Empty())
	assert.False(t, domain.DaySet(0xff).Has(domain.Weekday(7)))
}

func TestDaySet_JSON(t *testing.T) {
	s := domain.NewDaySet(domain.Sunday, domain.Saturday)
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `["sunday","saturday"]`, string(data))

	var back domain.DaySet
	require.NoError(t, json.Unmarshal([]byte(`["SATURDAY","sunday"]`), &back))
	assert.Equal(t, s, back)

	assert.Error(t, json.Unmarshal([]byte(`["someday"]`), &back))
}

func TestDate(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	// 01:30 UTC on a Tuesday is still Monday evening in UTC-3.
	ts := time.Date(2024, 1, 2, 1, 30, 0, 0, time.UTC).In(loc)
	d := domain.DateOf(ts)
	assert.Equal(t, "2024-01-01", d.String())
	assert.Equal(t, domain.Monday, d.Weekday())
	assert.Equal(t, "2024-01-02", d.AddDays(1).String())
	assert.Equal(t, "2023-12-31", d.AddDays(-1).String())

	parsed, err := domain.ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, domain.Thursday, parsed.Weekday())

	_, err = domain.ParseDate("2024-02-30")
	assert.Error(t, err)

	data, err := json.Marshal(parsed)
	require.NoError(t, err)
	assert.Equal(t, `"2024-02-29"`, string(data))
}

func TestIdentity_FlexibleClaims(t *testing.T) {
	var id domain.Identity
	require.NoError(t, json.Unmarshal([]byte(`{"idUser":"7","nome":"Ana","email":"ana@x.com","uf":"SP","level":2}`), &id))
	assert.Equal(t, domain.FlexInt(7), id.UserID)
	assert.Equal(t, domain.FlexString("2"), id.Level)

	require.NoError(t, json.Unmarshal([]byte(`{"idUser":8,"level":"3"}`), &id))
	assert.Equal(t, domain.FlexInt(8), id.UserID)
	assert.Equal(t, domain.FlexString("3"), id.Level)

	assert.True(t, domain.IsUF("RJ"))
	assert.False(t, domain.IsUF("XX"))
}
