package cli

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// NewLogger builds the command's logger from cfg. Logs go to w unless cfg.LogFile
// is set. The returned function closes the log file, if any.
func NewLogger(cfg *Config, w io.Writer) (*logrus.Logger, func() error, error) {
	closer := func() error { return nil }

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, closer, errors.Wrapf(err, "failed to open log file %s", cfg.LogFile)
		}
		w = f
		closer = f.Close
	}

	logLvl, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		_ = closer()
		return nil, func() error { return nil }, errors.Wrap(err, "failed to parse log level")
	}

	log := &logrus.Logger{
		Out: w,
		Formatter: &logrus.TextFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FullTimestamp:   true,
			DisableSorting:  true,
		},
		Hooks: make(logrus.LevelHooks),
		Level: logLvl,
	}

	return log, closer, nil
}
