package interact

import (
	"bufio"
	"io"
	"unicode"
)

// KeyReader delivers one key per call, blocking until one is available.
type KeyReader interface {
	ReadKey() (rune, error)
}

// RuneReader reads keys from a plain stream such as piped stdin. Whitespace
// is skipped so line-buffered input works.
type RuneReader struct {
	r *bufio.Reader
}

func NewRuneReader(r io.Reader) *RuneReader {
	return &RuneReader{r: bufio.NewReader(r)}
}

func (k *RuneReader) ReadKey() (rune, error) {
	for {
		r, _, err := k.r.ReadRune()
		if err != nil {
			return 0, err
		}
		if !unicode.IsSpace(r) {
			return r, nil
		}
	}
}
