package sfnt

import "go.uber.org/zap"

// nopLogger is the default, silent logger: library use produces no log
// output unless a caller opts in via Options.Logger, matching the
// teacher's own silence (freetype/truetype never logs).
var nopLogger = zap.NewNop()

func loggerOrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return nopLogger
	}
	return l
}
