package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Points(t *testing.T) {
	testCases := []struct {
		name     string
		event    [2]int64
		bet      [2]int64
		expected int64
	}{
		{
			name:     "exact result",
			event:    [2]int64{2, 1},
			bet:      [2]int64{2, 1},
			expected: 3,
		},
		{
			name:     "exact draw",
			event:    [2]int64{0, 0},
			bet:      [2]int64{0, 0},
			expected: 3,
		},
		{
			name:     "correct winner wrong score",
			event:    [2]int64{3, 0},
			bet:      [2]int64{1, 0},
			expected: 1,
		},
		{
			name:     "correct draw wrong score",
			event:    [2]int64{1, 1},
			bet:      [2]int64{2, 2},
			expected: 1,
		},
		{
			name:     "correct away winner",
			event:    [2]int64{0, 2},
			bet:      [2]int64{1, 3},
			expected: 1,
		},
		{
			name:     "wrong winner",
			event:    [2]int64{2, 0},
			bet:      [2]int64{0, 2},
			expected: 0,
		},
		{
			name:     "predicted draw but home won",
			event:    [2]int64{1, 0},
			bet:      [2]int64{1, 1},
			expected: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Points(tc.event[0], tc.event[1], tc.bet[0], tc.bet[1])
			require.Equal(t, tc.expected, got)
		})
	}
}
