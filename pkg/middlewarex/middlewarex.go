// Package middlewarex holds the net/http middlewares shared by every
// listener of the service.
package middlewarex

import "raincast/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
