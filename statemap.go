// Package fpaq0f2 implements an adaptive order-0 binary arithmetic
// compressor, after Matt Mahoney's fpaq0f2. Each bit of the input is
// modeled in the context of the bits already seen in the current byte,
// plus an 8-bit history of recent bits observed in that same context.
package fpaq0f2

import "math/bits"

// A StateMap maps a context to a probability. After a bit is observed,
// the map is nudged toward the observed value so that later predictions
// in the same context improve.
//
// Each cell packs two fields into a uint32: the top 24 bits hold the
// current prediction, the low 8 bits hold a saturating observation
// count. The split is part of the wire contract: any deviation in the
// update arithmetic changes the coder's output.
type StateMap struct {
	t      []uint32 // cx -> prediction in high 24 bits, count in low 8 bits
	lastCx uint32   // context of the most recent Predict call
	dt     [256]uint32
}

// NewStateMap allocates a StateMap with n contexts, seeding every cell
// from the popcount of its low 8 bits so that contexts already biased
// toward 1 or 0 start with a matching probability.
func NewStateMap(n int) *StateMap {
	sm := &StateMap{t: make([]uint32, n)}
	for i := range sm.t {
		ones := uint32(bits.OnesCount32(uint32(i)&0xFF)) + 3
		sm.t[i] = ones<<28 | 6
	}
	for i := range sm.dt {
		sm.dt[i] = 32768 / uint32(2*i+3)
	}
	return sm
}

// Predict returns the estimated probability, as a 16-bit number in
// 0..65535, that the next bit observed in context cx will be 1.
func (sm *StateMap) Predict(cx uint32) uint16 {
	sm.lastCx = cx
	return uint16(sm.t[cx] >> 16)
}

// Update trains the map with the bit y (0 or 1) actually observed
// following the most recent Predict call. limit (1..254) controls how
// many observations are needed before the adaptation rate saturates.
func (sm *StateMap) Update(y uint32, limit uint32) {
	cell := sm.t[sm.lastCx]
	n := cell & 0xFF
	p := cell >> 14
	if n < limit {
		cell++
	}
	delta := (((y << 18) - p) * sm.dt[n]) & 0xFFFFFF00
	sm.t[sm.lastCx] = cell + delta
}
