package asana

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// validateID rejects a missing or non-positive identifier synchronously,
// before any request is issued. Existence and uniqueness are enforced
// remotely; this is the only local check.
func validateID(name string, id int64) error {
	if err := validation.Validate(id, validation.Required, validation.Min(int64(1))); err != nil {
		return fmt.Errorf("asana: invalid %s id: %w", name, err)
	}
	return nil
}
