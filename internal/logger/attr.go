// Package logger holds log/slog helpers shared by the encoder and the CLI.
package logger

import (
	"fmt"
	"log/slog"
	"time"
)

// Attribute helpers return the empty Attr for zero inputs so call sites can
// pass them unconditionally.

// Error creates an attribute for a single error under the key "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed calculates the duration since start.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// Version records a symbol version number.
func Version(n int) slog.Attr {
	if n <= 0 {
		return slog.Attr{}
	}
	return slog.Int("version", n)
}

// ECLevel records an error correction level.
func ECLevel(level fmt.Stringer) slog.Attr {
	if level == nil {
		return slog.Attr{}
	}
	return slog.String("ec_level", level.String())
}

// Mode records a segment mode.
func Mode(mode fmt.Stringer) slog.Attr {
	if mode == nil {
		return slog.Attr{}
	}
	return slog.String("mode", mode.String())
}

// Mask records a mask pattern index.
func Mask(pattern int) slog.Attr {
	if pattern < 0 {
		return slog.Attr{}
	}
	return slog.Int("mask", pattern)
}

// Penalty records a mask penalty score.
func Penalty(score int) slog.Attr {
	return slog.Int("penalty", score)
}
