package fpaq0f2

// coderMode distinguishes an encoding RangeCoder from a decoding one.
// A single coder is constructed for exactly one direction and dropped
// at the end of the call; the two modes never share a buffer pointer.
type coderMode int

const (
	modeCompress coderMode = iota
	modeDecompress
)

// A RangeCoder is a 32-bit carry-less binary arithmetic coder/decoder
// over a caller-supplied byte buffer, driven by a Predictor. It narrows
// the interval [x1, x2] in proportion to the Predictor's estimate and
// emits (or consumes) bytes as the top byte of the interval settles.
type RangeCoder struct {
	predictor *Predictor
	mode      coderMode

	buf    []byte
	bufLen uint32
	bufIdx uint32

	x1, x2 uint32 // current interval, x1 <= x2
	x      uint32 // decoder-only: window into the compressed stream
}

// NewEncoder returns a RangeCoder that compresses into out. out's
// length is the coder's output capacity; Encode/Flush report overflow
// rather than growing it.
func NewEncoder(out []byte) *RangeCoder {
	return &RangeCoder{
		predictor: NewPredictor(),
		mode:      modeCompress,
		buf:       out,
		bufLen:    uint32(len(out)),
		x1:        0,
		x2:        0xFFFFFFFF,
	}
}

// NewDecoder returns a RangeCoder that decompresses from in, priming
// its 32-bit window with the first four bytes (or zeros, if in is
// shorter than four bytes).
//
// The priming loop uses bufIdx <= bufLen, not <, to read the fourth
// byte: this reproduces a one-byte-past-end read in the reference
// implementation this coder must stay bit-exact with. The out-of-bounds
// byte is treated as 0 here rather than actually read.
func NewDecoder(in []byte) *RangeCoder {
	rc := &RangeCoder{
		predictor: NewPredictor(),
		mode:      modeDecompress,
		buf:       in,
		bufLen:    uint32(len(in)),
		x1:        0,
		x2:        0xFFFFFFFF,
	}
	for i := 0; i < 4; i++ {
		var c byte
		if rc.bufIdx <= rc.bufLen {
			if rc.bufIdx < rc.bufLen {
				c = in[rc.bufIdx]
			}
			rc.bufIdx++
		}
		rc.x = rc.x<<8 | uint32(c)
	}
	return rc
}

// split computes x1 + floor((x2-x1)*p/65536) without a 64-bit multiply
// and without overflow, for p in 0..65535.
func split(x1, x2 uint32, p uint16) uint32 {
	width := x2 - x1
	return x1 + (width>>16)*uint32(p) + ((width&0xFFFF)*uint32(p))>>16
}

// Encode compresses bit y (0 or 1), reporting false if out's capacity
// was exhausted before the byte could be emitted.
func (rc *RangeCoder) Encode(y uint32) bool {
	if rc.mode != modeCompress {
		panic("fpaq0f2: Encode called on a decoder")
	}
	p := rc.predictor.Predict()
	xmid := split(rc.x1, rc.x2, p)
	if y == 1 {
		rc.x2 = xmid
	} else {
		rc.x1 = xmid + 1
	}
	rc.predictor.Observe(y)

	for (rc.x1^rc.x2)&0xFF000000 == 0 {
		if rc.bufIdx >= rc.bufLen {
			return false
		}
		rc.buf[rc.bufIdx] = byte(rc.x2 >> 24)
		rc.bufIdx++
		rc.x1 <<= 8
		rc.x2 = rc.x2<<8 | 0xFF
	}
	return true
}

// Decode returns the next decompressed bit, reading further input bytes
// (or zeros past end of input) as the interval renormalizes.
func (rc *RangeCoder) Decode() uint32 {
	if rc.mode != modeDecompress {
		panic("fpaq0f2: Decode called on an encoder")
	}
	p := rc.predictor.Predict()
	xmid := split(rc.x1, rc.x2, p)
	var y uint32
	if rc.x <= xmid {
		y = 1
		rc.x2 = xmid
	} else {
		rc.x1 = xmid + 1
	}
	rc.predictor.Observe(y)

	for (rc.x1^rc.x2)&0xFF000000 == 0 {
		rc.x1 <<= 8
		rc.x2 = rc.x2<<8 | 0xFF
		var c byte
		if rc.bufIdx < rc.bufLen {
			c = rc.buf[rc.bufIdx]
			rc.bufIdx++
		}
		rc.x = rc.x<<8 | uint32(c)
	}
	return y
}

// Flush writes the remaining bytes needed to anchor the decoder once
// there is no more input to compress. Only meaningful in compress mode.
func (rc *RangeCoder) Flush() bool {
	if rc.mode != modeCompress {
		panic("fpaq0f2: Flush called on a decoder")
	}
	for (rc.x1^rc.x2)&0xFF000000 == 0 {
		if rc.bufIdx >= rc.bufLen {
			return false
		}
		rc.buf[rc.bufIdx] = byte(rc.x2 >> 24)
		rc.bufIdx++
		rc.x1 <<= 8
		rc.x2 = rc.x2<<8 | 0xFF
	}
	if rc.bufIdx >= rc.bufLen {
		return false
	}
	rc.buf[rc.bufIdx] = byte(rc.x2 >> 24)
	rc.bufIdx++
	return true
}

// BufIdx returns the number of bytes written (encode) or the read
// cursor (decode) so far. After priming from an input shorter than four
// bytes, the decode cursor is one past the end of the input.
func (rc *RangeCoder) BufIdx() uint32 {
	return rc.bufIdx
}
