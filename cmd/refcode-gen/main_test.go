package main

import (
	"testing"

	"referral-hub.backend/pkg/utils"
)

func TestGenerateCodes(t *testing.T) {
	codes := generateCodes(5)
	if len(codes) != 5 {
		t.Fatalf("expected 5 codes, got %d", len(codes))
	}
	for _, code := range codes {
		if len(code) != utils.ReferralCodeLength {
			t.Fatalf("expected %d-char code, got %q", utils.ReferralCodeLength, code)
		}
	}
}
