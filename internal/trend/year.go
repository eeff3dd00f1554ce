// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package trend

import (
	"strconv"
	"time"

	"github.com/pdiddy/pubtrend/internal/europepmc"
)

// minYear is the oldest publication year accepted as plausible.
const minYear = 1700

// deriveYear derives a publication year from a record. Field precedence:
// explicit pubYear, then the year prefix of firstPublicationDate, then the
// year prefix of electronicPublicationDate. The first present field wins;
// its value must parse as an integer in [minYear, currentYear+1]. A record
// with no usable year returns ok=false and is excluded from aggregation,
// which is not an error.
func deriveYear(r europepmc.Record, now time.Time) (year int, ok bool) {
	var raw string
	switch {
	case r.PubYear != "":
		raw = r.PubYear
	case r.FirstPublicationDate != "":
		raw = yearPrefix(r.FirstPublicationDate)
	case r.ElectronicPublicationDate != "":
		raw = yearPrefix(r.ElectronicPublicationDate)
	default:
		return 0, false
	}

	y, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	if y < minYear || y > now.Year()+1 {
		return 0, false
	}
	return y, true
}

// yearPrefix returns the first four characters of a date string like
// "2019-05-01".
func yearPrefix(date string) string {
	if len(date) < 4 {
		return date
	}
	return date[:4]
}
