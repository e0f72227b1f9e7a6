//go:build !rp2040

package fmtx

import (
	"fmt"
	"io"
	"os"
)

// DefaultOutput receives Logf output. Host builds log to stderr.
var DefaultOutput io.Writer = os.Stderr

func Sprintf(format string, a ...any) string { return fmt.Sprintf(format, a...) }
