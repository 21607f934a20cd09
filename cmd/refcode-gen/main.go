package main

import (
	"flag"
	"fmt"

	"referral-hub.backend/pkg/utils"
)

func generateCodes(n int) []string {
	codes := make([]string, 0, n)
	for i := 0; i < n; i++ {
		codes = append(codes, utils.GenerateReferralCode())
	}
	return codes
}

func main() {
	count := flag.Int("n", 1, "number of codes to generate")
	flag.Parse()

	for _, code := range generateCodes(*count) {
		fmt.Println(code)
	}
}
