package members

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name                 string
		current, total, show int
		want                 []int
	}{
		{"no pages", 1, 0, 5, []int{}},
		{"total equals window", 3, 5, 5, []int{1, 2, 3, 4, 5}},
		{"fewer pages than window", 1, 3, 5, []int{1, 2, 3}},
		{"head of long run", 2, 12, 5, []int{1, 2, 3, 4, 5}},
		{"centred", 6, 12, 5, []int{4, 5, 6, 7, 8}},
		{"even window", 4, 12, 4, []int{2, 3, 4, 5}},
		{"window of one", 7, 12, 1, []int{7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageWindow(tt.current, tt.total, tt.show))
		})
	}
}

func TestPageWindowCoversAllPagesWhenTotalEqualsWindow(t *testing.T) {
	for total := 1; total <= 10; total++ {
		for current := 1; current <= total; current++ {
			got := PageWindow(current, total, total)
			assert.Len(t, got, total)
			assert.Equal(t, 1, got[0])
			assert.Equal(t, total, got[len(got)-1])
		}
	}
}

// The tail of the window is not clamped to totalPages.
func TestPageWindowTailOvershoot(t *testing.T) {
	got := PageWindow(11, 12, 5)
	assert.Equal(t, []int{9, 10, 11, 12, 13}, got)

	got = PageWindow(12, 12, 5)
	assert.Equal(t, []int{10, 11, 12, 13, 14}, got)
	assert.Greater(t, got[len(got)-1], 12)
}

func TestPageWindowNonPositiveWindow(t *testing.T) {
	assert.Empty(t, PageWindow(1, 3, 0))
	assert.Empty(t, PageWindow(1, 3, -5))
}

func TestPageIndices(t *testing.T) {
	first, last := PageIndices(1, 10)
	assert.Equal(t, 0, first)
	assert.Equal(t, 10, last)

	first, last = PageIndices(3, 4)
	assert.Equal(t, 8, first)
	assert.Equal(t, 12, last)
}

func TestSliceBounds(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 25} {
		records := makeRecords(n)
		for _, size := range []int{1, 3, 10} {
			for page := 1; page <= 5; page++ {
				t.Run(fmt.Sprintf("n=%d/size=%d/page=%d", n, size, page), func(t *testing.T) {
					want := n - (page-1)*size
					if want < 0 {
						want = 0
					}
					if want > size {
						want = size
					}
					assert.Len(t, Slice(records, page, size), want)
				})
			}
		}
	}
}

func TestSliceDoesNotAlias(t *testing.T) {
	records := makeRecords(3)
	got := Slice(records, 1, 2)
	got[0].Name = "changed"
	assert.Equal(t, "User 1", records[0].Name)
}

func TestSliceOutOfRange(t *testing.T) {
	records := makeRecords(3)
	assert.Empty(t, Slice(records, 0, 10))
	assert.Empty(t, Slice(records, -2, 10))
	assert.Empty(t, Slice(records, 9, 10))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 0, TotalPages(5, 0))
}

// makeRecords builds n records with ids "1".."n".
func makeRecords(n int) []Record {
	out := make([]Record, n)
	for i := range out {
		out[i] = Record{
			ID:    ID(fmt.Sprint(i + 1)),
			Name:  fmt.Sprintf("User %d", i+1),
			Email: fmt.Sprintf("user%d@example.com", i+1),
			Role:  "member",
		}
	}
	return out
}
