package meta

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/lyraproj/issue/issue"
)

type (
	LogLevel string

	Logger interface {
		Log(level LogLevel, args ...interface{})

		Logf(level LogLevel, format string, args ...interface{})

		LogIssue(i issue.Reported)
	}

	stdlog struct {
		out io.Writer
		err io.Writer
	}

	LogEntry struct {
		level   LogLevel
		message string
	}

	// ArrayLogger retains log entries in memory. It is intended for tests and
	// safe for use from multiple goroutines
	ArrayLogger struct {
		lock    sync.Mutex
		entries []*LogEntry
	}
)

const (
	ALERT   = LogLevel(`alert`)
	CRIT    = LogLevel(`crit`)
	DEBUG   = LogLevel(`debug`)
	EMERG   = LogLevel(`emerg`)
	ERR     = LogLevel(`err`)
	INFO    = LogLevel(`info`)
	NOTICE  = LogLevel(`notice`)
	WARNING = LogLevel(`warning`)
)

var LogLevels = []LogLevel{ALERT, CRIT, DEBUG, EMERG, ERR, INFO, NOTICE, WARNING}

func Alert(logger Logger, format string, args ...interface{}) {
	logger.Logf(ALERT, format, args...)
}

func Crit(logger Logger, format string, args ...interface{}) {
	logger.Logf(CRIT, format, args...)
}

func Debug(logger Logger, format string, args ...interface{}) {
	logger.Logf(DEBUG, format, args...)
}

func Emerg(logger Logger, format string, args ...interface{}) {
	logger.Logf(EMERG, format, args...)
}

func Err(logger Logger, format string, args ...interface{}) {
	logger.Logf(ERR, format, args...)
}

func Info(logger Logger, format string, args ...interface{}) {
	logger.Logf(INFO, format, args...)
}

func Notice(logger Logger, format string, args ...interface{}) {
	logger.Logf(NOTICE, format, args...)
}

func Warning(logger Logger, format string, args ...interface{}) {
	logger.Logf(WARNING, format, args...)
}

// NewStdLogger creates a logger that writes debug, info, and notice entries to
// stdout and everything else to stderr
func NewStdLogger() Logger {
	return &stdlog{os.Stdout, os.Stderr}
}

func (l *stdlog) Log(level LogLevel, args ...interface{}) {
	w := l.writerFor(level)
	fmt.Fprintf(w, `%s: `, level)
	fmt.Fprintln(w, args...)
}

func (l *stdlog) Logf(level LogLevel, format string, args ...interface{}) {
	w := l.writerFor(level)
	fmt.Fprintf(w, `%s: `, level)
	fmt.Fprintf(w, format, args...)
	fmt.Fprintln(w)
}

func (l *stdlog) writerFor(level LogLevel) io.Writer {
	switch level {
	case DEBUG, INFO, NOTICE:
		return l.out
	default:
		return l.err
	}
}

func (l *stdlog) LogIssue(i issue.Reported) {
	fmt.Fprintln(l.err, i.String())
}

func NewArrayLogger() *ArrayLogger {
	return &ArrayLogger{entries: make([]*LogEntry, 0, 16)}
}

// Entries returns the messages that have been logged at the given level, in the
// order that they were logged
func (l *ArrayLogger) Entries(level LogLevel) (result []string) {
	l.lock.Lock()
	defer l.lock.Unlock()
	result = make([]string, 0, 8)
	for _, entry := range l.entries {
		if entry.level == level {
			result = append(result, entry.message)
		}
	}
	return
}

func (l *ArrayLogger) Log(level LogLevel, args ...interface{}) {
	b := strings.Builder{}
	fmt.Fprint(&b, args...)
	l.append(&LogEntry{level, b.String()})
}

func (l *ArrayLogger) Logf(level LogLevel, format string, args ...interface{}) {
	l.append(&LogEntry{level, fmt.Sprintf(format, args...)})
}

func (l *ArrayLogger) LogIssue(i issue.Reported) {
	var level LogLevel
	switch i.Severity() {
	case issue.SeverityError:
		level = ERR
	case issue.SeverityWarning, issue.SeverityDeprecation:
		level = WARNING
	default:
		return
	}
	l.append(&LogEntry{level, i.String()})
}

func (l *ArrayLogger) append(entry *LogEntry) {
	l.lock.Lock()
	l.entries = append(l.entries, entry)
	l.lock.Unlock()
}
