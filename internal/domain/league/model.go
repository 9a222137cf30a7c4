package league

import "fmt"

// Country groups leagues.
type Country struct {
	ID   int64
	Name string
}

// League is a competition grouping clubs within a country.
type League struct {
	ID        int64
	CountryID int64
	Name      string
}

func (l League) Validate() error {
	if l.ID <= 0 {
		return fmt.Errorf("league id must be positive")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}

	return nil
}
