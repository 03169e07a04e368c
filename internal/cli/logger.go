package cli

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// consoleFormatter renders entries as plain lines for a terminal user:
// debug entries as bare messages, higher levels prefixed with the level
// name ("Info: ...", "Warning: ..."). Fields follow as key=value pairs.
type consoleFormatter struct{}

func (consoleFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer

	if e.Level < logrus.DebugLevel {
		level := e.Level.String()
		b.WriteString(strings.ToUpper(level[:1]) + level[1:])
		b.WriteString(": ")
	}
	b.WriteString(e.Message)

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Data[k])
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

func newLogger(out io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(consoleFormatter{})
	log.SetLevel(logrus.InfoLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
