package utils

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// NormalizeAddresses trims and de-duplicates addresses, preserving
// first-seen order and original casing. Deduplication is case-insensitive;
// the original spelling goes on the wire because some chains use
// case-sensitive addresses.
func NormalizeAddresses(addresses []string) []string {
	seen := make(map[string]struct{}, len(addresses))
	normalized := make([]string, 0, len(addresses))
	for _, address := range addresses {
		addr := strings.TrimSpace(address)
		if addr == "" {
			continue
		}
		key := strings.ToLower(addr)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		normalized = append(normalized, addr)
	}
	return normalized
}

// IsValidEVMAddress reports whether s is a 0x-prefixed 20-byte hex address.
func IsValidEVMAddress(s string) bool {
	return common.IsHexAddress(s)
}
