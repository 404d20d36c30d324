package calc

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// ReadDecimal consumes one non-negative decimal literal from r and returns
// its value. Reading stops at the first non-digit, which is left unread.
func ReadDecimal(r io.ByteScanner) (int64, error) {
	var (
		value  int64
		digits int
	)
	for {
		ch, err := r.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("reading decimal: %w", err)
		}
		if ch < '0' || ch > '9' {
			if err := r.UnreadByte(); err != nil {
				return 0, fmt.Errorf("reading decimal: %w", err)
			}
			if digits == 0 {
				return 0, NewUnknownCharacterError(ch, 0)
			}
			break
		}
		d := int64(ch - '0')
		if value > (math.MaxInt64-d)/10 {
			return 0, NewOverflowError("integer literal exceeds 64 bits")
		}
		value = value*10 + d
		digits++
	}
	if digits == 0 {
		return 0, io.ErrUnexpectedEOF
	}
	return value, nil
}

// WriteDecimal writes v in base 10 with no trailing newline.
func WriteDecimal(w io.Writer, v int64) error {
	var buf [20]byte
	_, err := w.Write(strconv.AppendInt(buf[:0], v, 10))
	return err
}
