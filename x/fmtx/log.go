package fmtx

// Logf writes one "[tag] message" line to DefaultOutput.
// Output errors are ignored; logging must never stall the main loop.
func Logf(tag, format string, a ...any) {
	line := "[" + tag + "] " + Sprintf(format, a...) + "\n"
	_, _ = DefaultOutput.Write([]byte(line))
}
