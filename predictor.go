package fpaq0f2

// smContexts is the number of contexts the Predictor's StateMap indexes:
// 8 bits of partial-byte position plus 8 bits of per-position bit history.
const smContexts = 0x10000

// adaptLimit fixes how fast the model learns. It is part of the
// bit-exact contract between encoder and decoder.
const adaptLimit = 90

// A Predictor estimates the probability that the next bit of the
// uncompressed stream is 1, given the bits already seen in the current
// byte (cxt) and the recent bit history at that position (state).
type Predictor struct {
	cxt   uint32 // 0 = not yet started a byte, 1..255 = partial byte with leading 1
	sm    *StateMap
	state [256]uint32 // per bit-position sliding 8-bit history
}

// NewPredictor returns a Predictor ready to model a fresh byte stream.
func NewPredictor() *Predictor {
	p := &Predictor{sm: NewStateMap(smContexts)}
	for i := range p.state {
		p.state[i] = 0x66
	}
	return p
}

// Predict returns P(next bit = 1) as a 16-bit number in 0..65535.
func (p *Predictor) Predict() uint16 {
	return p.sm.Predict(p.cxt<<8 | p.state[p.cxt])
}

// Observe trains the predictor with the bit y actually seen, and
// advances cxt and the per-position bit history.
func (p *Predictor) Observe(y uint32) {
	p.sm.Update(y, adaptLimit)
	p.state[p.cxt] = ((p.state[p.cxt] << 1) | y) & 0xFF
	if newCxt := (p.cxt << 1) | y; newCxt >= 256 {
		p.cxt = 0
	} else {
		p.cxt = newCxt
	}
}
