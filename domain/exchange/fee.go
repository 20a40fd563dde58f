package exchange

import "math/bits"

// ComputeFee returns the fee owed to the fee account for filling an
// order. Integer floor division: truncation rounds in the filler's
// favor, and orders below 100/feePercent units are fee-free.
//
// The product is taken in 128 bits so large orders cannot wrap. The
// bool reports whether the fee fits in uint64; when it does not, no
// balance could ever cover the fill.
func ComputeFee(amountGet, feePercent uint64) (uint64, bool) {
	hi, lo := bits.Mul64(amountGet, feePercent)
	if hi >= 100 {
		return 0, false
	}
	fee, _ := bits.Div64(hi, lo, 100)
	return fee, true
}
