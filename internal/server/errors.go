package server

import "errors"

var errMissingField = errors.New("air and dew are required")
