package forClusteringGo

import (
	"errors"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidTrials  = errors.New("number of trials must be positive")
	ErrNilRandom      = errors.New("random source is nil")
	ErrNodeOutOfRange = errors.New("node id out of range")

	errUnknownMethod = errors.New("unknown / unimplemented TriangleCount method")
)

var logger = logrus.StandardLogger()

// SetLogger replaces the logger used for progress messages. A nil logger
// restores the logrus standard logger.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	logger = l
}

func try(err error) {
	if err != nil {
		panic(err)
	}
}

// recoverError turns a panic raised by try into an error result.
func recoverError(err *error) {
	if r := recover(); r != nil {
		if e, ok := r.(error); ok {
			*err = e
			return
		}
		panic(r)
	}
}
