// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package params

import "github.com/ethereum/go-ethereum/common/math"

// safePairingGas computes base + perPoint*numElements with the same
// overflow convention the teacher's bigModExp.RequiredGas uses
// (math/big.BitLen() > 64 => math.MaxUint64): any overflow in the
// multiply-then-add is reported back to the caller via the bool result
// instead of wrapping around a uint64, so an attacker cannot buy a
// cheap RequiredGas for an enormous input.
func safePairingGas(base, perPoint, numElements uint64) (uint64, bool) {
	total, overflow := math.SafeMul(perPoint, numElements)
	if overflow {
		return 0, false
	}
	total, overflow = math.SafeAdd(total, base)
	if overflow {
		return 0, false
	}
	return total, true
}
