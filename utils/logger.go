package utils

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strings"
	"sync"
	"time"
)

const (
	LevelInfo  = "inf"
	LevelWarn  = "wrn"
	LevelError = "err"
)

var logLock sync.Mutex

func log(w io.Writer, calldepth int, level string, id string, params ...any) {
	if w == nil {
		w = os.Stdout
	}
	var now = time.Now().Format("2006-01-02 15:04:05")
	_, file, line, _ := runtime.Caller(calldepth)
	msg := make([]string, 0, len(params))
	for _, p := range params {
		msg = append(msg, fmt.Sprintf("%+v", p))
	}
	logLock.Lock()
	defer logLock.Unlock()
	fmt.Fprintf(w, "%s|%s|%s:%d|%s|%s\n", now, level, path.Base(file), line, id, strings.Join(msg, " "))
}

// Logger writes single-line records tagged with ID, usually the remote
// address of the request being served. A nil Out means stdout.
type Logger struct {
	ID  string
	Out io.Writer
}

func (l *Logger) Print(params ...any) {
	log(l.Out, 2, LevelInfo, l.ID, params...)
}

func (l *Logger) Printf(format string, params ...any) {
	log(l.Out, 2, LevelInfo, l.ID, fmt.Sprintf(format, params...))
}

func (l *Logger) Warnf(format string, params ...any) {
	log(l.Out, 2, LevelWarn, l.ID, fmt.Sprintf(format, params...))
}

func (l *Logger) Error(params ...any) {
	log(l.Out, 2, LevelError, l.ID, params...)
}

func (l *Logger) Errorf(format string, params ...any) {
	log(l.Out, 2, LevelError, l.ID, fmt.Sprintf(format, params...))
}
