package env

import (
	"os"
)

// Debug reports whether DEBUG is set, which raises every logger to debug level.
func Debug() bool {
	return os.Getenv("DEBUG") != ""
}
