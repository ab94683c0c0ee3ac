// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bn128

import "errors"

// The error taxonomy below is consensus-visible: every value here is
// part of the contract a caller can match against, not just a debug
// string. It mirrors errBadPairingInput in the teacher's contracts.go
// and the error messages of original_source/src/precompiles/bn128.rs.
var (
	// ErrInvalidXPoint is returned when a G1 point's x-coordinate is
	// not a canonical Fq element (>= the field modulus).
	ErrInvalidXPoint = errors.New("invalid x point")
	// ErrInvalidYPoint is returned when a G1 point's y-coordinate is
	// not a canonical Fq element.
	ErrInvalidYPoint = errors.New("invalid y point")
	// ErrInvalidCurvePoint is returned when a non-infinity (x, y) pair
	// does not satisfy y^2 = x^3 + 3.
	ErrInvalidCurvePoint = errors.New("invalid curve point")
	// ErrInvalidFieldElement is returned when ECMUL's scalar is not a
	// canonical Fr element.
	ErrInvalidFieldElement = errors.New("invalid field element")
	// ErrInvalidPairingInputLength is returned when ECPAIRING's input
	// length is not a multiple of 192 bytes.
	ErrInvalidPairingInputLength = errors.New("input length invalid, must be multiple of 192")

	// ErrInvalidAArgumentXCoordinate is returned for a non-canonical Fq
	// element in a pairing element's G1 x-coordinate lane and in any of
	// its four G2 ("b argument") lanes; no distinct "b argument" lane
	// message exists. Only the G1 y-coordinate lane reports
	// ErrInvalidAArgumentYCoordinate instead.
	ErrInvalidAArgumentXCoordinate = errors.New("invalid a argument, x coordinate")
	// ErrInvalidAArgumentYCoordinate is returned for a non-canonical Fq
	// element in a pairing element's G1 y-coordinate lane.
	ErrInvalidAArgumentYCoordinate = errors.New("invalid a argument, y coordinate")
	// ErrInvalidAArgumentNotOnCurve is returned when a pairing
	// element's G1 half is off-curve.
	ErrInvalidAArgumentNotOnCurve = errors.New("invalid a argument, not on curve")
	// ErrInvalidBArgumentNotOnCurve is returned when a pairing
	// element's G2 half is off-curve or outside the correct subgroup.
	ErrInvalidBArgumentNotOnCurve = errors.New("invalid b argument, not on curve")
)
