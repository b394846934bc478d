package log

import (
	contextPkg "DishaAssistant/pkg/context"
	"fmt"
	"golang.org/x/net/context"
	"gopkg.in/natefinch/lumberjack.v2"
	"io"
	"os"
	"path"
	"runtime"
	"strings"
	"sync"
	"time"

	formatter "github.com/antonfisher/nested-logrus-formatter"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	logger *logrus.Logger
	once   sync.Once
)

type Fields = logrus.Fields

// NewLogger configures the process logger once. Log files rotate under
// ./storage/logs except when APP_ENV=test.
func NewLogger() *logrus.Logger {
	once.Do(func() {
		logger = logrus.New()
		logger.SetLevel(levelFromEnv())

		logger.SetFormatter(&formatter.Formatter{
			NoColors:        os.Getenv("APP_ENV") == "production",
			TimestampFormat: "02 Jan 06 - 15:04",
			CallerFirst:     true,
			CustomCallerFormatter: func(f *runtime.Frame) string {
				s := strings.Split(f.Function, ".")
				return fmt.Sprintf(" \x1b[%dm[%s:%d][%s()]", 34, path.Base(f.File), f.Line, s[len(s)-1])
			},
		})

		writers := []io.Writer{os.Stderr}
		if os.Getenv("APP_ENV") != "test" {
			writers = append(writers, &lumberjack.Logger{
				Filename:   fmt.Sprintf("./storage/logs/disha-%s.log", time.Now().Format("2006-01-02")),
				LocalTime:  true,
				Compress:   true,
				MaxSize:    100,
				MaxAge:     7,
				MaxBackups: 3,
			})
		}

		logger.SetOutput(io.MultiWriter(writers...))
		logger.SetReportCaller(true)
	})

	return logger
}

func levelFromEnv() logrus.Level {
	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return logrus.DebugLevel
	}
	return level
}

// current falls back to the logrus standard logger until NewLogger runs.
func current() *logrus.Logger {
	if logger == nil {
		return logrus.StandardLogger()
	}
	return logger
}

func Info(fields Fields, msg string) {
	current().WithFields(fields).Info(msg)
}

func Warn(fields Fields, msg string) {
	current().WithFields(fields).Warn(msg)
}

func Error(fields Fields, msg string) {
	current().WithFields(fields).Error(msg)
}

// ErrorWithTraceID logs entry at error level tagged with a trace id and
// returns it. The request id doubles as the trace id when the entry has one.
func ErrorWithTraceID(entry *logrus.Entry, msg string) string {
	traceID, _ := entry.Data["request_id"].(string)
	if traceID == "" || traceID == "unknown" {
		traceID = uuid.NewString()
	}

	entry.WithField("trace_id", traceID).Error(msg)
	return traceID
}

// WithRequestID starts an entry on l carrying the request and session ids
// stored in ctx.
func WithRequestID(l *logrus.Logger, ctx context.Context) *logrus.Entry {
	entry := l.WithField("request_id", contextPkg.GetRequestID(ctx))
	if sessionID := contextPkg.GetSessionID(ctx); sessionID != "" {
		entry = entry.WithField("session_id", sessionID)
	}
	return entry
}
