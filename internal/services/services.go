package services

import (
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel aligns the service logger with the application level
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}
