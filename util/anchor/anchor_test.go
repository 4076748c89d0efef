package anchor

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func lines(buffer *bytes.Buffer) []string {
	return strings.Split(strings.TrimRight(buffer.String(), "\n"), "\n")
}

func TestPrintf(t *testing.T) {
	var buffer bytes.Buffer
	tui := NewWriter(&buffer, Red, false)
	tui.Printf("hello %s\n", "world")
	tui.AnchorPrintf("done")
	assert.Equal(t, []string{"hello world", "⚓ done"}, lines(&buffer))
}

func TestLot(t *testing.T) {
	var buffer bytes.Buffer
	tui := NewWriter(&buffer, Red, false)
	tui.Lot("search").Printf("querying %d providers", 2)
	assert.Same(t, tui.Lot("search"), tui.Lot("search"))
	tui.Lot("search").Close("3 matches")
	tui.Lot("enrich").Printf("pending")
	tui.Lot("enrich").Wipe()
	tui.Lot("enrich").Close()

	assert.Equal(t, []string{
		"… search querying 2 providers",
		"✓ search 3 matches",
		"… enrich pending",
		"✓ enrich ",
	}, lines(&buffer))
}

func TestConcurrent(t *testing.T) {
	var (
		buffer bytes.Buffer
		tui    = NewWriter(&buffer, Cyan, false)
		wg     sync.WaitGroup
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tui.Lot("lot").Printf("%d", i)
			tui.Printf("line %d", i)
		}(i)
	}
	wg.Wait()
	assert.Len(t, lines(&buffer), 20)
	assert.Len(t, tui.lots, 1)
}
