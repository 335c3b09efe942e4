package logs

import (
	"io"
	"os"
)

// Writer receives the text log output. Fork a scope with another Writer to
// capture logs.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
