package remote

import (
	"strings"

	"fittracker/fitness-app/internal/domain"

	log "github.com/sirupsen/logrus"
)

// Day tags as the remote API stores them.
var wireDayTags = map[domain.Weekday]string{
	domain.Sunday:    "domingo",
	domain.Monday:    "segunda",
	domain.Tuesday:   "terca",
	domain.Wednesday: "quarta",
	domain.Thursday:  "quinta",
	domain.Friday:    "sexta",
	domain.Saturday:  "sabado",
}

var wireDayLookup = func() map[string]domain.Weekday {
	m := make(map[string]domain.Weekday, 14)
	for d, tag := range wireDayTags {
		m[tag] = d
		m[d.String()] = d
	}
	return m
}()

var accentReplacer = strings.NewReplacer("ç", "c", "á", "a", "à", "a", "ã", "a", "â", "a", "é", "e", "ê", "e", "í", "i", "ó", "o", "ô", "o", "ú", "u")

// EncodeDays produces the comma-joined string sent to the remote API.
func EncodeDays(days domain.DaySet) string {
	list := days.Days()
	tags := make([]string, len(list))
	for i, d := range list {
		tags[i] = wireDayTags[d]
	}
	return strings.Join(tags, ", ")
}

// DecodeDays parses a comma-joined day list. Portuguese and English tags
// are accepted regardless of case and accents; "-feira" suffixes are
// dropped. Unknown tags are skipped.
func DecodeDays(raw string) domain.DaySet {
	var set domain.DaySet
	for _, part := range strings.Split(raw, ",") {
		tag := normalizeDayTag(part)
		if tag == "" {
			continue
		}
		d, ok := wireDayLookup[tag]
		if !ok {
			log.Warnf("remote: ignoring unknown day tag %q", strings.TrimSpace(part))
			continue
		}
		set = set.Add(d)
	}
	return set
}

func normalizeDayTag(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	tag = accentReplacer.Replace(tag)
	tag = strings.TrimSuffix(tag, "-feira")
	return strings.TrimSpace(tag)
}
