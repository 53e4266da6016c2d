package library

import (
	"time"

	"github.com/luna-lang/luna/object"
)

var processStart = time.Now()

// clock() reads the monotonic clock as float seconds, for timing spans of
// script execution.
func libClock(args []object.Object) object.Object {
	return &object.Float{Value: time.Since(processStart).Seconds()}
}
