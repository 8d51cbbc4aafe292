// Package logrus adapts a logrus.Entry to the areacache logging interface.
package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/windlessuser/olc/areacache"
)

type LogrusLogger struct{ E *logrus.Entry }

var _ areacache.Logger = LogrusLogger{}

func (l LogrusLogger) Debug(msg string, f areacache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l LogrusLogger) Info(msg string, f areacache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Info(msg)
}
func (l LogrusLogger) Warn(msg string, f areacache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Warn(msg)
}
func (l LogrusLogger) Error(msg string, f areacache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
