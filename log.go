package tabcomp

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/term"
)

// newLogger returns a no-op logger unless _TABCOMP_DEBUG is set. Debug
// output goes to stderr when stderr is a terminal, otherwise to a file in
// the temp dir so it cannot corrupt the completion stream.
func newLogger() *zap.Logger {
	if os.Getenv("_TABCOMP_DEBUG") == "" {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	if term.IsTerminal(int(os.Stderr.Fd())) {
		cfg.OutputPaths = []string{"stderr"}
	} else {
		cfg.OutputPaths = []string{filepath.Join(os.TempDir(), "tabcomp.log")}
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
