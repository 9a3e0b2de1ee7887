package remote_test

import (
	"testing"

	"fittracker/fitness-app/internal/domain"
	"fittracker/fitness-app/internal/remote"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDays(t *testing.T) {
	assert.Equal(t, "", remote.EncodeDays(0))
	assert.Equal(t, "domingo, segunda, terca, quarta, quinta, sexta, sabado",
		remote.EncodeDays(domain.NewDaySet(domain.AllWeekdays...)))
	assert.Equal(t, "segunda, sexta", remote.EncodeDays(domain.NewDaySet(domain.Friday, domain.Monday)))
}

func TestDecodeDays(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want domain.DaySet
	}{
		{name: "canonical", raw: "segunda, terca", want: domain.NewDaySet(domain.Monday, domain.Tuesday)},
		{name: "no spaces", raw: "quarta,quinta", want: domain.NewDaySet(domain.Wednesday, domain.Thursday)},
		{name: "accents and case", raw: "Terça, SÁBADO", want: domain.NewDaySet(domain.Tuesday, domain.Saturday)},
		{name: "feira suffix", raw: "segunda-feira, sexta-feira", want: domain.NewDaySet(domain.Monday, domain.Friday)},
		{name: "english", raw: "sunday, Monday", want: domain.NewDaySet(domain.Sunday, domain.Monday)},
		{name: "duplicates", raw: "domingo, domingo", want: domain.NewDaySet(domain.Sunday)},
		{name: "unknown skipped", raw: "segunda, feriado", want: domain.NewDaySet(domain.Monday)},
		{name: "empty", raw: "", want: 0},
		{name: "only commas", raw: " , ,", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, remote.DecodeDays(tt.raw))
		})
	}
}

func TestDaysRoundTrip(t *testing.T) {
	for mask := 0; mask < 128; mask++ {
		set := domain.DaySet(mask)
		assert.Equal(t, set, remote.DecodeDays(remote.EncodeDays(set)))
	}
}
