package location

import (
	"fmt"

	"citycast.app/pkg/errors"
)

func errNoInput() error {
	return errors.NewNoInputError("city name is required")
}

func errTooShort(min int) error {
	return errors.NewInputTooShortError(fmt.Sprintf("city name must be at least %d characters", min))
}
