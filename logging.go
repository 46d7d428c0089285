// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"io"

	"github.com/sirupsen/logrus"
)

// newSilentLogger returns a logrus.Logger discarding everything it is given.
// The core performs no logging by default, per the error handling design:
// tracing is something a caller opts into with WithLogger, not something the
// library imposes.
func newSilentLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
