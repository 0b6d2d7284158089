package log

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// EnvLevel names the environment variable consulted by New for the initial level.
const EnvLevel = "CSP_LOG_LEVEL"

type LoggerImpl struct {
	mu     sync.Mutex
	stdout *logrus.Logger
}

// DefaultLogger is shared by packages that are not handed a logger of their own.
var DefaultLogger = New()

// New returns a logrus backed logger. The level comes from CSP_LOG_LEVEL and
// falls back to info.
func New() *LoggerImpl {
	l := &LoggerImpl{
		stdout: logrus.New(),
	}
	level := os.Getenv(EnvLevel)
	if level == "" {
		level = string(InfoLevel)
	}
	l.SetLevel(level)
	return l
}

func (l *LoggerImpl) decorate(skip int) *logrus.Entry {
	if pc, file, line, ok := runtime.Caller(skip); ok {
		fName := runtime.FuncForPC(pc).Name()
		path := strings.Split(file, string(os.PathSeparator))
		var position string
		if len(path) > 3 {
			position = fmt.Sprintf("%s:%d", strings.Join(path[len(path)-3:], string(os.PathSeparator)), line)
		} else {
			position = fmt.Sprintf("%s:%d", strings.Join(path, string(os.PathSeparator)), line)
		}
		return l.stdout.WithField("position", position).WithField("func", fName)
	}
	return logrus.NewEntry(l.stdout)
}

func (l *LoggerImpl) Trace(format string, v ...interface{}) {
	l.decorate(2).Tracef(format, v...)
}

func (l *LoggerImpl) Debug(format string, v ...interface{}) {
	l.decorate(2).Debugf(format, v...)
}

func (l *LoggerImpl) Info(format string, v ...interface{}) {
	l.decorate(2).Infof(format, v...)
}

func (l *LoggerImpl) Warn(format string, v ...interface{}) {
	l.decorate(2).Warnf(format, v...)
}

func (l *LoggerImpl) Error(format string, v ...interface{}) {
	l.decorate(2).Errorf(format, v...)
}

func (l *LoggerImpl) Fatal(format string, v ...interface{}) {
	l.decorate(2).Fatalf(format, v...)
}

func (l *LoggerImpl) Panic(format string, v ...interface{}) {
	l.decorate(2).Panicf(format, v...)
}

func (l *LoggerImpl) SetOutput(out io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stdout.SetOutput(out)
}

func (l *LoggerImpl) GetOutput() io.Writer {
	if l.stdout != nil && l.stdout.Out != nil {
		return l.stdout.Out
	}
	return nil
}

func (l *LoggerImpl) GetLevel() int {
	return int(l.stdout.GetLevel())
}

// Enabled reports whether messages at level would be written.
func (l *LoggerImpl) Enabled(level int) bool {
	return l.stdout.IsLevelEnabled(logrus.Level(level))
}

func (l *LoggerImpl) setLevel(level int) {
	l.stdout.SetLevel(logrus.Level(level))
}

func (l *LoggerImpl) SetLevel(level string) {
	switch strings.ToLower(level) {
	case string(TraceLevel):
		l.setLevel(LevelTrace)
	case string(DebugLevel):
		l.setLevel(LevelDebug)
	case string(InfoLevel):
		l.setLevel(LevelInfo)
	case string(WarnLevel):
		l.setLevel(LevelWarn)
	case string(ErrorLevel):
		l.setLevel(LevelError)
	case string(FatalLevel):
		l.setLevel(LevelFatal)
	case string(PanicLevel):
		l.setLevel(LevelPanic)
	default:
		l.setLevel(LevelInfo)
	}
}

func (l *LoggerImpl) SetFormatter(formatter logrus.Formatter) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stdout.SetFormatter(formatter)
}
