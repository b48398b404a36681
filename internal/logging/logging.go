package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

func SetupLogging() *logrus.Logger {
	return NewLogger(os.Stdout, logrus.InfoLevel)
}

// NewLogger builds the JSON logger used across the service, writing to out.
func NewLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:      out,
		Level:    level,
		Hooks:    make(logrus.LevelHooks),
		ExitFunc: os.Exit,
	}

	return &logger
}
