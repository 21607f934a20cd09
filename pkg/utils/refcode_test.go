package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"referral-hub.backend/pkg/utils"
)

func TestGenerateReferralCode_Format(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code := utils.GenerateReferralCode()
		assert.Len(t, code, utils.ReferralCodeLength)
		for _, ch := range code {
			assert.True(t, strings.ContainsRune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789", ch),
				"unexpected character %q in code %q", ch, code)
		}
	}
}

func TestGenerateReferralCode_Varies(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		seen[utils.GenerateReferralCode()] = struct{}{}
	}
	// 36^6 possible codes makes 100 draws collapsing to a handful
	// effectively impossible unless the generator is broken.
	assert.Greater(t, len(seen), 90)
}
