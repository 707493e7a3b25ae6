package main

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/yacobolo/gtkcss"
)

// newLogger returns a console logger on stderr. Verbose enables debug
// output, quiet disables logging entirely.
func newLogger(verbose, quiet bool) (*zap.Logger, error) {
	if quiet {
		return zap.NewNop(), nil
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	if gtkcss.ShouldUseColors(false) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	stderr, _, err := zap.Open("stderr")
	if err != nil {
		return nil, fmt.Errorf("opening log destination: %w", err)
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), stderr, zap.NewAtomicLevelAt(level))
	return zap.New(core).Named("gtkcss"), nil
}
