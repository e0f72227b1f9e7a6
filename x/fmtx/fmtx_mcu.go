//go:build rp2040

package fmtx

import (
	"io"
	"strconv"
)

// DefaultOutput is used by Logf on MCU builds. It forwards to
// the runtime's println sink until the platform bootstrap replaces it
// (e.g. with a UART writer).
var DefaultOutput io.Writer = printlnWriter{}

type printlnWriter struct{}

func (printlnWriter) Write(p []byte) (int, error) {
	n := len(p)
	if n > 0 && p[n-1] == '\n' {
		p = p[:n-1]
	}
	println(string(p))
	return n, nil
}

func Sprintf(format string, a ...any) string {
	var b []byte
	b = appendf(b, format, a)
	return string(b)
}

// appendf supports %s %q %d %x %X %v %t and %%. Anything else is copied
// through verbatim; keep MCU cost low.
func appendf(b []byte, format string, args []any) []byte {
	ai := 0
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' || i+1 == len(format) {
			b = append(b, c)
			continue
		}
		i++
		verb := format[i]
		if verb == '%' {
			b = append(b, '%')
			continue
		}
		if ai >= len(args) {
			b = append(b, "%!"...)
			b = append(b, verb)
			continue
		}
		b = appendValue(b, args[ai], verb)
		ai++
	}
	return b
}

func appendValue(b []byte, v any, verb byte) []byte {
	base := 10
	upper := false
	switch verb {
	case 'x':
		base = 16
	case 'X':
		base, upper = 16, true
	}
	switch x := v.(type) {
	case string:
		if verb == 'q' {
			return strconv.AppendQuote(b, x)
		}
		return append(b, x...)
	case []byte:
		return append(b, x...)
	case bool:
		return strconv.AppendBool(b, x)
	case error:
		return append(b, x.Error()...)
	case int:
		return appendInt(b, int64(x), base, upper)
	case int8:
		return appendInt(b, int64(x), base, upper)
	case int16:
		return appendInt(b, int64(x), base, upper)
	case int32:
		return appendInt(b, int64(x), base, upper)
	case int64:
		return appendInt(b, x, base, upper)
	case uint:
		return appendUint(b, uint64(x), base, upper)
	case uint8:
		return appendUint(b, uint64(x), base, upper)
	case uint16:
		return appendUint(b, uint64(x), base, upper)
	case uint32:
		return appendUint(b, uint64(x), base, upper)
	case uint64:
		return appendUint(b, x, base, upper)
	case interface{ String() string }:
		return append(b, x.String()...)
	default:
		return append(b, "?"...)
	}
}

func appendInt(b []byte, v int64, base int, upper bool) []byte {
	start := len(b)
	b = strconv.AppendInt(b, v, base)
	if upper {
		toUpper(b[start:])
	}
	return b
}

func appendUint(b []byte, v uint64, base int, upper bool) []byte {
	start := len(b)
	b = strconv.AppendUint(b, v, base)
	if upper {
		toUpper(b[start:])
	}
	return b
}

func toUpper(p []byte) {
	for i, c := range p {
		if c >= 'a' && c <= 'z' {
			p[i] = c - 'a' + 'A'
		}
	}
}
