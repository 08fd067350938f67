package cmd

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/oshokin/gitver/internal/logger"
)

// logLevelValue implements pflag.Value, rejecting unknown levels at parse time.
type logLevelValue string

var _ pflag.Value = (*logLevelValue)(nil)

func (l *logLevelValue) String() string {
	return string(*l)
}

func (l *logLevelValue) Set(v string) error {
	if _, ok := logger.ParseLogLevel(v); !ok {
		return fmt.Errorf("must be one of debug, info, warn or error")
	}

	*l = logLevelValue(v)

	return nil
}

func (l *logLevelValue) Type() string {
	return "level"
}
