package season

import (
	"sort"
	"time"
)

// Season is a time-bounded competition instance. Ids are derived from the
// name ("2024-25" has id 202425), so ordering by id orders by time.
type Season struct {
	ID        int64
	Name      string
	StartDate time.Time
	EndDate   time.Time
	Current   bool
}

// Find returns the season with the given id.
func Find(seasons []Season, id int64) (Season, bool) {
	for _, s := range seasons {
		if s.ID == id {
			return s, true
		}
	}
	return Season{}, false
}

// SortByID orders seasons oldest first, in place.
func SortByID(seasons []Season) {
	sort.SliceStable(seasons, func(i, j int) bool { return seasons[i].ID < seasons[j].ID })
}
