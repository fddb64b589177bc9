package logger

import (
	"go.uber.org/zap"
)

var Log *zap.Logger = zap.NewNop()

// Init replaces the no-op default with a production logger. Called once from
// main; tests keep the no-op logger.
func Init() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	Log = log
}
