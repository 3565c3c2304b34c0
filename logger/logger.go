package logger

import (
	"io"
	"os"

	"github.com/dawnzzz/simple-bag/config"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func SetupLogger() {
	if config.Properties.Debug || os.Getenv("ENV") == "DEBUG" {
		log.SetLevel(logrus.DebugLevel)
	}
}

func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

func Debug(args ...interface{}) {
	log.Debug(args...)
}

func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

func Info(args ...interface{}) {
	log.Info(args...)
}

func Infoln(args ...interface{}) {
	log.Infoln(args...)
}

func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

func Warn(args ...interface{}) {
	log.Warn(args...)
}

func Error(args ...interface{}) {
	log.Error(args...)
}

func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

func Fatalf(format string, args ...interface{}) {
	log.Fatalf(format, args...)
}
