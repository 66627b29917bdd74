package harmony

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'harmony'.
func tracer() tracing.Trace {
	return tracing.Select("harmony")
}
