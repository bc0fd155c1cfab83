// Package logging builds the process-wide structured logger.
package logging

import (
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
)

// New returns a JSON logger writing to stdout with timestamps in loc.
func New(level string, loc *time.Location) *log.Logger {
	return NewWithWriter(os.Stdout, level, loc)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, level string, loc *time.Location) *log.Logger {
	l := log.New()
	l.SetOutput(w)
	l.SetFormatter(&locationFormatter{
		loc: loc,
		inner: &log.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: log.FieldMap{
				log.FieldKeyTime: "ts",
			},
		},
	})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	l.SetLevel(lvl)
	return l
}

type locationFormatter struct {
	loc   *time.Location
	inner log.Formatter
}

func (f *locationFormatter) Format(e *log.Entry) ([]byte, error) {
	if f.loc != nil {
		e.Time = e.Time.In(f.loc)
	}
	return f.inner.Format(e)
}
