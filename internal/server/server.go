package server

import "raincast/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Server groups the HTTP handlers by the entity they serve. Raincast has a
// single one.
type Server struct {
	PredictionServer
}

func NewServer(
	predictionServer PredictionServer,
) Server {
	return Server{
		PredictionServer: predictionServer,
	}
}
