package platformconfig

import "errors"

var (
	ErrConfigNotFound = errors.New("platformconfig.repository: config not found")
	ErrBuildQuery     = errors.New("platformconfig.repository: failed to build query")
	ErrExecQuery      = errors.New("platformconfig.repository: failed to execute query")
	ErrScanRow        = errors.New("platformconfig.repository: failed to scan row")
)
