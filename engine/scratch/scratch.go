// Package scratch provides a per-frame byte arena for building short strings
// (labels, counters, debug lines) without garbage.
//
// Strings returned by the View methods and Sprintf point into the arena.
// They stay valid until the next Reset, which is why the ui Instance resets
// its arena in Begin together with the draw buffer.
package scratch

import (
	"strconv"
	"unicode/utf8"
	"unsafe"
)

const defaultCapacity = 1024

// Buffer is a reusable byte arena. Not safe for concurrent use.
type Buffer struct {
	buf []byte
}

// New returns a buffer with the given capacity (1 KiB when capacity <= 0).
func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// Reset clears the buffer without freeing memory. Views handed out before
// the call must no longer be used.
func (b *Buffer) Reset() { b.buf = b.buf[:0] }

func (b *Buffer) Cap() int { return cap(b.buf) }
func (b *Buffer) Len() int { return len(b.buf) }

// GrowTo increases capacity if needed. Prefer calling it at load time.
func (b *Buffer) GrowTo(minCapacity int) {
	if minCapacity <= cap(b.buf) {
		return
	}
	nb := make([]byte, len(b.buf), minCapacity)
	copy(nb, b.buf)
	b.buf = nb
}

// Ensure makes room for at least n more bytes.
func (b *Buffer) Ensure(n int) {
	if len(b.buf)+n <= cap(b.buf) {
		return
	}
	newCap := cap(b.buf) * 2
	if newCap < len(b.buf)+n {
		newCap = len(b.buf) + n
	}
	b.GrowTo(newCap)
}

// Mark returns a bookmark to later slice the output.
func (b *Buffer) Mark() int { return len(b.buf) }

// BytesFrom returns the bytes written since mark.
func (b *Buffer) BytesFrom(mark int) []byte { return b.buf[mark:] }

// StringFrom copies the bytes written since mark.
func (b *Buffer) StringFrom(mark int) string { return string(b.buf[mark:]) }

// ViewFrom returns a zero-copy string over the bytes written since mark.
func (b *Buffer) ViewFrom(mark int) string {
	s := b.buf[mark:]
	if len(s) == 0 {
		return ""
	}
	return unsafe.String(&s[0], len(s))
}

// ----- Chainable builder -----

// Builder appends to a Buffer. Obtain one with F.
type Builder struct {
	b    *Buffer
	mark int
}

// F starts a new string at the end of the buffer.
//
//	s := buf.F().S("fps ").I(fps).View()
func (b *Buffer) F() Builder { return Builder{b: b, mark: len(b.buf)} }

// View returns the string built so far without copying.
func (w Builder) View() string { return w.b.ViewFrom(w.mark) }

// String returns a copy of the string built so far.
func (w Builder) String() string { return w.b.StringFrom(w.mark) }

func (w Builder) B(p []byte) Builder { w.b.buf = append(w.b.buf, p...); return w }
func (w Builder) S(s string) Builder { w.b.buf = append(w.b.buf, s...); return w }
func (w Builder) C(c byte) Builder   { w.b.buf = append(w.b.buf, c); return w }
func (w Builder) R(r rune) Builder   { w.b.buf = utf8.AppendRune(w.b.buf, r); return w }

// I appends a base-10 integer.
func (w Builder) I(v int) Builder {
	w.b.buf = strconv.AppendInt(w.b.buf, int64(v), 10)
	return w
}

// U appends an unsigned base-10 integer.
func (w Builder) U(v uint64) Builder {
	w.b.buf = strconv.AppendUint(w.b.buf, v, 10)
	return w
}

// F64 appends v with prec digits after the decimal point.
func (w Builder) F64(v float64, prec int) Builder {
	w.b.buf = strconv.AppendFloat(w.b.buf, v, 'f', prec, 64)
	return w
}

func (w Builder) Bool(v bool) Builder {
	w.b.buf = strconv.AppendBool(w.b.buf, v)
	return w
}

// Hex appends u in hexadecimal without "0x".
func (w Builder) Hex(u uint64) Builder {
	w.b.buf = strconv.AppendUint(w.b.buf, u, 16)
	return w
}

// Pad appends n copies of c.
func (w Builder) Pad(n int, c byte) Builder {
	if n <= 0 {
		return w
	}
	w.b.Ensure(n)
	for i := 0; i < n; i++ {
		w.b.buf = append(w.b.buf, c)
	}
	return w
}

// ----- Minimal % formatter -----

// Sprintf formats into the buffer and returns a view of the result.
// Supported verbs: %s %d %u %f (with optional .prec, default 3) and %%.
// Unknown verbs are written literally. Formatting stops when the arguments
// run out.
//
// Arguments are still boxed into the variadic slice at the call site. Use
// the Builder when that matters.
func (b *Buffer) Sprintf(format string, args ...any) string {
	var ai int
	mark := len(b.buf)
	for i := 0; i < len(format); i++ {
		ch := format[i]
		if ch != '%' {
			b.buf = append(b.buf, ch)
			continue
		}
		if i+1 < len(format) && format[i+1] == '%' {
			b.buf = append(b.buf, '%')
			i++
			continue
		}
		i++
		prec := -1
		if i < len(format) && format[i] == '.' {
			i++
			start := i
			for i < len(format) && format[i] >= '0' && format[i] <= '9' {
				i++
			}
			prec = parseUint(format[start:i])
		}
		if i >= len(format) || ai >= len(args) {
			break
		}
		switch format[i] {
		case 's':
			b.buf = appendString(b.buf, args[ai])
		case 'd':
			b.buf = strconv.AppendInt(b.buf, toInt64(args[ai]), 10)
		case 'u':
			b.buf = strconv.AppendUint(b.buf, uint64(toInt64(args[ai])), 10)
		case 'f':
			p := 3
			if prec >= 0 {
				p = prec
			}
			b.buf = strconv.AppendFloat(b.buf, toFloat64(args[ai]), 'f', p, 64)
		default:
			b.buf = append(b.buf, '%', format[i])
		}
		ai++
	}
	return b.ViewFrom(mark)
}

func parseUint(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

func appendString(dst []byte, v any) []byte {
	switch x := v.(type) {
	case string:
		return append(dst, x...)
	case []byte:
		return append(dst, x...)
	case interface{ String() string }:
		return append(dst, x.String()...)
	default:
		return append(dst, "<unsupported>"...)
	}
}

func toInt64(v any) int64 {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case uint:
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return int64(x)
	default:
		return 0
	}
}

func toFloat64(v any) float64 {
	switch x := v.(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	default:
		return 0
	}
}
