package cli

import (
	"fmt"
	"io"

	"github.com/dshills/redactobj/redact"
	"github.com/dshills/redactobj/redactzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a console logger on w. Fields pass through r before they
// are encoded, so values logged by commands never carry matched secrets.
func newLogger(level string, w io.Writer, r *redact.Redactor) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.Set(level); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), lvl)

	return zap.New(redactzap.NewCore(core, r)), nil
}
