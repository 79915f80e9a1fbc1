package instance

import (
	"sort"
	"strings"
)

// SortKey orders the projection. Cycling advances Name → LastPlayed →
// Playtime and wraps back to Name.
type SortKey int

const (
	SortByName SortKey = iota
	SortByLastPlayed
	SortByPlaytime

	sortKeyCount
)

// Next returns the following sort key in the cycle.
func (k SortKey) Next() SortKey {
	return (k + 1) % sortKeyCount
}

func (k SortKey) String() string {
	switch k {
	case SortByLastPlayed:
		return "last played"
	case SortByPlaytime:
		return "playtime"
	default:
		return "name"
	}
}

// Project computes the visible, ordered subset of records: filter when the
// query is non-empty, then sort. The input slice is never reordered; the
// repository collection stays in enumeration order.
func Project(records []Record, query string, key SortKey) []Record {
	out := make([]Record, 0, len(records))
	q := strings.ToLower(query)
	for _, rec := range records {
		if q != "" && !strings.Contains(strings.ToLower(rec.DisplayName), q) {
			continue
		}
		out = append(out, rec)
	}
	sortRecords(out, key)
	return out
}

func sortRecords(records []Record, key SortKey) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		switch key {
		case SortByLastPlayed:
			// Most recent first; never-played records sort after every
			// record with a timestamp.
			switch {
			case a.LastPlayed == nil && b.LastPlayed == nil:
				return lessByName(a, b)
			case a.LastPlayed == nil:
				return false
			case b.LastPlayed == nil:
				return true
			case !a.LastPlayed.Equal(*b.LastPlayed):
				return a.LastPlayed.After(*b.LastPlayed)
			}
			return lessByName(a, b)
		case SortByPlaytime:
			if a.Playtime != b.Playtime {
				return a.Playtime > b.Playtime
			}
			return lessByName(a, b)
		default:
			return lessByName(a, b)
		}
	})
}

func lessByName(a, b Record) bool {
	an, bn := strings.ToLower(a.DisplayName), strings.ToLower(b.DisplayName)
	if an != bn {
		return an < bn
	}
	return a.ID < b.ID
}
