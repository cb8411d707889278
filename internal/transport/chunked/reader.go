// Package chunked decodes the HTTP/1.1 chunked transfer encoding.
package chunked

import (
	"bufio"
	"errors"
	"io"
)

// NewReader returns a reader that yields the payload bytes of a chunked
// message body and reports io.EOF at the zero-length final chunk.
func NewReader(r io.Reader) io.Reader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &reader{br: br}
}

type reader struct {
	br        *bufio.Reader
	chunk     io.Reader // remainder of the current chunk, nil between chunks
	chunkSize int64
	read      int64
}

// readSize parses one chunk-size line. Chunk extensions are not
// supported and any non-hex byte fails the read.
func (c *reader) readSize() (size uint64, err error) {
	cnt := 0
	isPrefix := true
	for isPrefix {
		var line []byte
		line, isPrefix, err = c.br.ReadLine()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return 0, err
		}
		for _, b := range line {
			cnt++
			switch {
			case '0' <= b && b <= '9':
				b = b - '0'
			case 'a' <= b && b <= 'f':
				b = b - 'a' + 10
			case 'A' <= b && b <= 'F':
				b = b - 'A' + 10
			default:
				return 0, errors.New("invalid byte in chunk length")
			}
			size <<= 4
			size |= uint64(b)
		}
		if cnt >= 16 {
			return 0, errors.New("http chunk length too large")
		}
	}
	return size, nil
}

func (c *reader) Read(p []byte) (n int, err error) {
	if c.chunk == nil {
		size, err := c.readSize()
		if err != nil {
			return 0, err
		}
		if size == 0 {
			return 0, io.EOF
		}
		c.chunk = io.LimitReader(c.br, int64(size))
		c.chunkSize = int64(size)
		c.read = 0
	}
	n, err = c.chunk.Read(p)
	c.read += int64(n)
	if err == io.EOF {
		if c.read != c.chunkSize {
			return n, io.ErrUnexpectedEOF
		}
		if err := c.discardCRLF(); err != nil {
			return n, err
		}
		c.chunk = nil
		return n, nil
	}
	return n, err
}

// discardCRLF consumes the chunk-data terminator.
func (c *reader) discardCRLF() error {
	cr, _ := c.br.ReadByte()
	lf, err := c.br.ReadByte()
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return err
	}
	if cr != '\r' || lf != '\n' {
		return errors.New("malformed chunked encoding")
	}
	return nil
}
