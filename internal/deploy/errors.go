package deploy

import "errors"

var (
	ErrMissingFiles  = errors.New("missing files")
	ErrNothingToPack = errors.New("no deployment files found")
)
