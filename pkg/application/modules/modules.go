// Package modules wires long running servers into an errgroup.
package modules

import "raincast/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
