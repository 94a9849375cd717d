package main

import (
	"time"

	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()
	Execute()
}

// configureLogger configura o formato dos logs, sempre em stderr
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
