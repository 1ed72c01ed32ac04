package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatchStrings(t *testing.T) {
	tests := []struct {
		name      string
		items     []string
		batchSize int
		want      [][]string
	}{
		{
			name:      "even split",
			items:     []string{"a", "b", "c", "d"},
			batchSize: 2,
			want:      [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:      "remainder batch",
			items:     []string{"a", "b", "c"},
			batchSize: 2,
			want:      [][]string{{"a", "b"}, {"c"}},
		},
		{
			name:      "batch larger than input",
			items:     []string{"a", "b"},
			batchSize: 30,
			want:      [][]string{{"a", "b"}},
		},
		{
			name:      "non-positive batch size keeps one batch",
			items:     []string{"a", "b", "c"},
			batchSize: 0,
			want:      [][]string{{"a", "b", "c"}},
		},
		{
			name:      "empty input",
			items:     nil,
			batchSize: 5,
			want:      [][]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BatchStrings(tt.items, tt.batchSize))
		})
	}
}

func TestNormalizeAddresses(t *testing.T) {
	got := NormalizeAddresses([]string{
		"0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2",
		" 0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2 ",
		"",
		"So11111111111111111111111111111111111111112",
	})
	// Duplicates collapse case-insensitively, first spelling wins.
	assert.Equal(t, []string{
		"0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2",
		"So11111111111111111111111111111111111111112",
	}, got)
}

func TestIsValidEVMAddress(t *testing.T) {
	assert.True(t, IsValidEVMAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"))
	assert.False(t, IsValidEVMAddress("So11111111111111111111111111111111111111112"))
	assert.False(t, IsValidEVMAddress("0x123"))
	assert.False(t, IsValidEVMAddress(""))
}
