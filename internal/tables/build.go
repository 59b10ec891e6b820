package tables

import (
	"fmt"
	"math"
)

// Fixed-point formats of the compiled-in tables.
const (
	// ProtoScale4 is SCALE4: the window stage of the 4-band kernel shifts its
	// accumulator right by this many bits.
	ProtoScale4 = 16

	// ProtoScale8 is SCALE8, the 8-band counterpart of ProtoScale4.
	ProtoScale8 = 17

	// CosScale is the binary point of the modulation coefficients.
	CosScale = 15

	// Len4 and Len8 are the int16 lengths of one odd or even table.
	Len4 = 56
	Len8 = 144

	// hops is the number of 2M-sample groups spanned by the window.
	hops = 5

	// gainMargin keeps each window lane away from int16 saturation.
	gainMargin = 1.25
)

// TapCount returns the prototype window length, 10*M.
func TapCount(subbands int) int {
	return 2 * hops * subbands
}

// TableLen returns the length of one odd or even table.
func TableLen(subbands int) int {
	return TapCount(subbands) + subbands*subbands
}

// ProtoScale returns the window-stage shift for the subband count.
func ProtoScale(subbands int) int {
	if subbands == 4 {
		return ProtoScale4
	}
	return ProtoScale8
}

// Layout returns the reordering of one 2M-sample group of history. Slot r of
// the group holds the sample Layout(M)[r] positions older than the group's
// newest sample.
//
// The order pairs offsets whose modulation rows coincide (o and M-o, o and
// 2M-o) into one multiply-add lane. Offsets 0 and M share lane 0 of the first
// half; M/2 and 3M/2 share lane 0 of the second half, which keeps the odd
// phase windows aligned on lane boundaries.
func Layout(subbands int) []int {
	m := subbands
	order := make([]int, 0, 2*m)
	order = append(order, 0, m)
	for i := 1; i < m/2; i++ {
		order = append(order, i, m-i)
	}
	order = append(order, m/2, 3*m/2)
	for i := 1; i < m/2; i++ {
		order = append(order, m+i, 2*m-i)
	}
	return order
}

// Term maps a within-group offset to the modulation row that absorbs it.
// The returned sign is +1 or -1; ok is false for offset 3M/2, whose
// modulation row is identically zero.
func Term(subbands, offset int) (term, sign int, ok bool) {
	m := subbands
	switch {
	case offset == 0 || offset == m:
		return 0, 1, true
	case offset <= m/2:
		return offset, 1, true
	case offset < m:
		return m - offset, 1, true
	case offset < 3*m/2:
		return offset, 1, true
	case offset == 3*m/2:
		return 0, 0, false
	default:
		return 3*m - offset, -1, true
	}
}

// Gains returns, per term offset, the factor folded into the window
// coefficients and divided out of the modulation coefficients. Offsets that
// are not terms hold zero.
func Gains(subbands int) []float64 {
	g := make([]float64, 2*subbands)
	for o := range 2 * subbands {
		term, _, ok := Term(subbands, o)
		if !ok || term != o {
			continue
		}
		peak := 0.0
		for k := range subbands {
			peak = math.Max(peak, math.Abs(Modulation(subbands, k, o)))
		}
		g[o] = gainMargin * peak
	}
	return g
}

// Fixed rounds x*scale half away from zero.
func Fixed(x, scale float64) int {
	v := int(float64(math.Abs(x)*scale) + 0.5)
	if x < 0 {
		return -v
	}
	return v
}

// slotSource returns the window tap index and within-group offset seen by
// a table slot. The odd table is applied to windows starting M samples into
// a group, so its slots see the layout rotated by M.
func slotSource(order []int, hop, slot int, odd bool) (idx, offset int) {
	m := len(order) / 2
	if !odd {
		return 2*m*hop + order[slot], order[slot]
	}
	r := (slot + m) % (2 * m)
	idx = 2*m*hop + order[r] - m
	if slot >= m {
		idx += 2 * m
	}
	return idx, (order[r] + m) % (2 * m)
}

// LaneTerms returns the modulation row each window lane accumulates.
func LaneTerms(subbands int, odd bool) []int {
	order := Layout(subbands)
	lanes := make([]int, subbands)
	for lane := range lanes {
		lanes[lane] = -1
		for slot := 2 * lane; slot < 2*lane+2; slot++ {
			_, offset := slotSource(order, 0, slot, odd)
			term, _, ok := Term(subbands, offset)
			if !ok {
				continue
			}
			if lanes[lane] >= 0 && lanes[lane] != term {
				panic(fmt.Sprintf("tables: lane %d mixes terms %d and %d", lane, lanes[lane], term))
			}
			lanes[lane] = term
		}
	}
	return lanes
}

// Build computes one analysis table. The first TapCount entries are window
// coefficients laid out hop by hop in Layout order; lane l of a hop covers
// entries 2l and 2l+1. The remaining M*M entries are modulation
// coefficients: for lane pair p and subband k, entries
// TapCount + p*2M + 2k and +1 multiply lanes 2p and 2p+1.
func Build(subbands int, odd bool) []int16 {
	if subbands != 4 && subbands != 8 {
		panic(fmt.Sprintf("tables: unsupported subband count %d", subbands))
	}

	m := subbands
	taps := TapCount(m)
	proto := Prototype(m)
	order := Layout(m)
	gains := Gains(m)
	lanes := LaneTerms(m, odd)
	protoScale := float64(int(1) << ProtoScale(m))

	table := make([]int16, 0, TableLen(m))
	for hop := range hops {
		for slot := range 2 * m {
			idx, offset := slotSource(order, hop, slot, odd)
			term, sign, ok := Term(m, offset)
			if !ok || idx < 0 || idx >= taps {
				table = append(table, 0)
				continue
			}
			table = append(table, int16(Fixed(float64(sign)*proto[idx]*gains[term], protoScale)))
		}
	}

	for p := range m / 2 {
		for k := range m {
			for _, term := range lanes[2*p : 2*p+2] {
				table = append(table, int16(Fixed(Modulation(m, k, term)/gains[term], 1<<CosScale)))
			}
		}
	}
	return table
}
