// package logging initializes the root logger and provides some helpers.
package logging

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

const verboseEnv = "VALID8R_VERBOSE"

var root logr.Logger

// The root logger.
func Log() logr.Logger { return root }

func init() { // Set env verbosity on init, Init() can over-ride.
	root = stdr.New(log.New(os.Stderr, "valid8r ", log.Ltime))
	if n, err := strconv.Atoi(os.Getenv(verboseEnv)); err == nil {
		stdr.SetVerbosity(n)
	}
}

// Init sets verbosity for the root logger.
func Init(verbosity int) {
	if verbosity != 0 { // If not set, let env verbosity stand
		stdr.SetVerbosity(verbosity)
	}
}

type logStringer struct{ v any }

func (l logStringer) MarshalLog() any { return fmt.Sprintf("%v", l.v) }

// Stringer wraps a value so it is logged with its %v formatting.
func Stringer(v any) logr.Marshaler { return logStringer{v: v} }
