package player

import (
	"fmt"
	"sort"
)

// Player is a squad member of one club.
type Player struct {
	ID     int64
	ClubID int64
	Name   string
	Number int
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id must be positive")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Number <= 0 {
		return fmt.Errorf("player number must be positive")
	}

	return nil
}

// SortByNumber orders a squad by shirt number, then name.
func SortByNumber(players []Player) {
	sort.SliceStable(players, func(i, j int) bool {
		if players[i].Number != players[j].Number {
			return players[i].Number < players[j].Number
		}
		return players[i].Name < players[j].Name
	})
}
