package logging

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const DefaultLevel = logrus.InfoLevel

func ParseLevel(level string) (logrus.Level, error) {
	if level == "" {
		return DefaultLevel, nil
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return DefaultLevel, errors.Wrapf(err, "log level %q", level)
	}
	return parsed, nil
}

func SetupLogger(level string) error {
	return SetupLoggerOutput(level, os.Stderr)
}

func SetupLoggerOutput(level string, output io.Writer) error {
	parsed, err := ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetLevel(parsed)
	logrus.SetOutput(output)
	return nil
}
