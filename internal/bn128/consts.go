// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bn128

// Fixed wire widths from spec.md §4.1, matching the `consts` module of
// original_source/src/precompiles/bn128.rs.
const (
	// fieldElementLen is the wire width of a single Fq or Fr element.
	fieldElementLen = 32
	// g1Len is the wire width of a G1 point: two Fq elements.
	g1Len = 2 * fieldElementLen
	// addInputLen is ECADD's fixed, zero-padded input width: two G1
	// points.
	addInputLen = 2 * g1Len
	// mulInputLen is ECMUL's fixed, zero-padded input width: one G1
	// point plus one Fr scalar.
	mulInputLen = g1Len + fieldElementLen
	// pairElementLen is the width of a single ECPAIRING element: a G1
	// point followed by a G2 point.
	pairElementLen = g1Len + 2*g1Len
)

// getData mirrors the teacher's core/vm getData helper: it returns
// size bytes from data starting at start, right-padded with zeroes
// where data runs out, without ever reading past the end of data or
// past a wrapped length.
func getData(data []byte, start, size uint64) []byte {
	length := uint64(len(data))
	if start > length {
		start = length
	}
	end := start + size
	if end > length {
		end = length
	}
	out := make([]byte, size)
	copy(out, data[start:end])
	return out
}
