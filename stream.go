package zwc

// Encoder produces the zero-width character stream for a byte sequence,
// one rune at a time, in the style of bufio.Scanner: call Next, and
// each time it returns true read Rune. Encoder does no lookahead beyond the
// block currently being emitted and holds at most a 4-character buffer.
type Encoder struct {
	data   []byte
	pos    int
	buf    [4]rune
	bufLen int
	bufPos int
}

// NewEncoder returns an Encoder over data using the canonical,
// uncompressed 4-character-per-byte block encoding.
func NewEncoder(data []byte) *Encoder {
	return &Encoder{data: data}
}

// Next advances the encoder to the next character. It reports whether
// one is available.
func (e *Encoder) Next() bool {
	if e.bufPos < e.bufLen {
		e.bufPos++
		return true
	}
	if e.pos >= len(e.data) {
		return false
	}
	e.buf = blockToChars(e.data[e.pos])
	e.bufLen = 4
	e.bufPos = 1
	e.pos++
	return true
}

// Rune returns the character produced by the most recent call to Next.
func (e *Encoder) Rune() rune {
	return e.buf[e.bufPos-1]
}

// Encode returns the full canonical character encoding of data.
func Encode(data []byte) []rune {
	out := make([]rune, 0, len(data)*4)
	e := NewEncoder(data)
	for e.Next() {
		out = append(out, e.Rune())
	}
	return out
}

// CompressedEncoder is Encoder's counterpart for the pattern-compressed
// block encoding: each byte consumes 2, 3, or 4 characters depending
// on Compression c.
type CompressedEncoder struct {
	data   []byte
	c      Compression
	pos    int
	buf    [4]rune
	bufLen int
	bufPos int
}

// NewCompressedEncoder returns a CompressedEncoder over data using c.
func NewCompressedEncoder(data []byte, c Compression) *CompressedEncoder {
	return &CompressedEncoder{data: data, c: c}
}

// Next advances the encoder to the next character. It reports whether
// one is available.
func (e *CompressedEncoder) Next() bool {
	if e.bufPos < e.bufLen {
		e.bufPos++
		return true
	}
	if e.pos >= len(e.data) {
		return false
	}
	e.buf, e.bufLen = blockToCharsCompressed(e.data[e.pos], e.c)
	e.bufPos = 1
	e.pos++
	return true
}

// Rune returns the character produced by the most recent call to Next.
func (e *CompressedEncoder) Rune() rune {
	return e.buf[e.bufPos-1]
}

// EncodeCompress returns the full pattern-compressed character
// encoding of data under c.
func EncodeCompress(data []byte, c Compression) []rune {
	out := make([]rune, 0, len(data)*3)
	e := NewCompressedEncoder(data, c)
	for e.Next() {
		out = append(out, e.Rune())
	}
	return out
}

// Decoder consumes a canonical, uncompressed character stream (4
// characters per byte) and produces bytes, in the style of
// bufio.Scanner. A decoder surfaces the first malformed or short block
// via Err and does not resynchronize: once Next returns false, Err
// reports why.
type Decoder struct {
	runes []rune
	pos   int
	cur   byte
	err   error
	done  bool
}

// NewDecoder returns a Decoder over runes.
func NewDecoder(runes []rune) *Decoder {
	return &Decoder{runes: runes}
}

// Next decodes the next byte. It reports whether a byte (or a
// terminal error) is available; once it returns false the sequence is
// exhausted and Err reflects the final state.
func (d *Decoder) Next() bool {
	if d.done {
		return false
	}
	if d.pos >= len(d.runes) {
		d.done = true
		return false
	}

	remaining := len(d.runes) - d.pos
	if remaining < 4 {
		d.err = &IncompleteBlockError{Len: remaining}
		d.pos = len(d.runes)
		d.done = true
		return true
	}

	var block [4]rune
	copy(block[:], d.runes[d.pos:d.pos+4])
	b, err := blockFromChars(block)
	if err != nil {
		d.err = err
		d.pos = len(d.runes)
		d.done = true
		return true
	}
	d.cur = b
	d.pos += 4
	return true
}

// Byte returns the byte decoded by the most recent call to Next. It is
// only valid when Err is nil.
func (d *Decoder) Byte() byte { return d.cur }

// Err returns the first decode error encountered, if any.
func (d *Decoder) Err() error { return d.err }

// Decode drains the canonical character stream runes into bytes,
// stopping at (and returning) the first error.
func Decode(runes []rune) ([]byte, error) {
	out := make([]byte, 0, len(runes)/4)
	d := NewDecoder(runes)
	for d.Next() {
		if err := d.Err(); err != nil {
			return out, err
		}
		out = append(out, d.Byte())
	}
	return out, nil
}

// CompressedDecoder is Decoder's counterpart for the pattern-compressed
// block encoding.
type CompressedDecoder struct {
	runes []rune
	c     Compression
	pos   int
	cur   byte
	err   error
	done  bool
}

// NewCompressedDecoder returns a CompressedDecoder over runes using c.
func NewCompressedDecoder(runes []rune, c Compression) *CompressedDecoder {
	return &CompressedDecoder{runes: runes, c: c}
}

// weight returns the block-completion weight of a single character:
// shortcut characters count for 2, value characters for 1. Anything
// else returns 0, false.
func weight(r rune, c Compression) (int, bool) {
	if r == alphabet[shortcut0] || r == alphabet[shortcut1] {
		return 2, true
	}
	if _, err := value(r); err == nil {
		return 1, true
	}
	return 0, false
}

// Next decodes the next byte, consuming characters until their weight
// (shortcut = 2, value = 1) sums to at least 4, capped at 4 characters.
func (cd *CompressedDecoder) Next() bool {
	if cd.done {
		return false
	}
	if cd.pos >= len(cd.runes) {
		cd.done = true
		return false
	}

	start := cd.pos
	sum := 0
	n := 0
	for sum < 4 && n < 4 && cd.pos < len(cd.runes) {
		w, ok := weight(cd.runes[cd.pos], cd.c)
		if !ok {
			cd.err = &InvalidCharacterError{Char: cd.runes[cd.pos]}
			cd.pos = len(cd.runes)
			cd.done = true
			return true
		}
		sum += w
		n++
		cd.pos++
	}

	if sum < 4 {
		cd.err = &IncompleteBlockError{Len: n}
		cd.done = true
		return true
	}

	b, err := blockFromCharsCompressed(cd.runes[start:cd.pos], n, cd.c)
	if err != nil {
		cd.err = err
		cd.done = true
		return true
	}
	cd.cur = b
	return true
}

// Byte returns the byte decoded by the most recent call to Next. It is
// only valid when Err is nil.
func (cd *CompressedDecoder) Byte() byte { return cd.cur }

// Err returns the first decode error encountered, if any.
func (cd *CompressedDecoder) Err() error { return cd.err }

// DecodeDecompress drains the pattern-compressed character stream
// runes into bytes under c, stopping at (and returning) the first
// error.
func DecodeDecompress(runes []rune, c Compression) ([]byte, error) {
	out := make([]byte, 0, len(runes))
	d := NewCompressedDecoder(runes, c)
	for d.Next() {
		if err := d.Err(); err != nil {
			return out, err
		}
		out = append(out, d.Byte())
	}
	return out, nil
}
