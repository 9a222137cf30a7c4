package club

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Club is a team participating in one league.
type Club struct {
	ID       int64
	LeagueID int64
	Name     string
}

// Registration is the create-request body for a new club.
type Registration struct {
	LeagueID int64  `json:"leagueId" validate:"gt=0"`
	Name     string `json:"name" validate:"required,max=100"`
}

// Validate checks the registration with surrounding whitespace of the name
// ignored, so a blank name is rejected.
func (r Registration) Validate() error {
	r.Name = strings.TrimSpace(r.Name)

	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate registration: %w", err)
	}

	first := fieldErrs[0]
	switch {
	case first.Field() == "LeagueID":
		return fmt.Errorf("league id must be positive")
	case first.Field() == "Name" && first.Tag() == "max":
		return fmt.Errorf("club name must be at most %s characters", first.Param())
	default:
		return fmt.Errorf("club name is required")
	}
}
