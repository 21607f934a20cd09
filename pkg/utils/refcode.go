package utils

import "math/rand/v2"

const (
	// ReferralCodeLength is the fixed length of all referral codes
	ReferralCodeLength = 6

	referralCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// GenerateReferralCode returns a 6-character code drawn uniformly from
// [A-Z0-9]. The code is a public identifier: collision resistance matters,
// unpredictability does not, so math/rand is sufficient. Uniqueness against
// already-assigned codes is the ledger's responsibility, not this function's.
func GenerateReferralCode() string {
	b := make([]byte, ReferralCodeLength)
	for i := range b {
		b[i] = referralCodeAlphabet[rand.IntN(len(referralCodeAlphabet))]
	}
	return string(b)
}
