package payments

import "errors"

func errorsIsMissingConfig(err error) bool {
	return errors.Is(err, ErrMissingConfig)
}
