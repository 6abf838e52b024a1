// SPDX-License-Identifier: MIT

package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

// EnvLevel names the environment variable read by InitLogger.
const EnvLevel = "MATINV_LOG"

// InitLogger sets up Apex with a LineHandler on stderr and a log level from
// the MATINV_LOG env variable, unless level is non-empty. Unknown levels
// fall back to ERROR.
func InitLogger(level string) {
	if level == "" {
		level = os.Getenv(EnvLevel)
	}
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = log.ErrorLevel
	}
	log.SetHandler(NewLineHandler(os.Stderr))
	log.SetLevel(lvl)
}

// LineHandler formats log messages as "time L message k=v ..." lines.
type LineHandler struct {
	w   io.Writer
	now func() time.Time
}

// NewLineHandler returns a LineHandler writing to w.
func NewLineHandler(w io.Writer) *LineHandler {
	return &LineHandler{w: w, now: time.Now}
}

// HandleLog implements the log.Handler interface.
func (h *LineHandler) HandleLog(e *log.Entry) error {
	timestamp := h.now().Format("2006-01-02 15:04:05")
	level := strings.ToUpper(e.Level.String())

	var b strings.Builder
	fmt.Fprintf(&b, "%s %.1s %s", timestamp, level, e.Message)
	for _, name := range e.Fields.Names() {
		fmt.Fprintf(&b, " %s=%v", name, e.Fields.Get(name))
	}
	b.WriteByte('\n')

	_, err := io.WriteString(h.w, b.String())
	return err
}
