package pool_test

import (
	"sync"
	"testing"

	"github.com/lestrrat-go/xmlbuilder/internal/pool"
	"github.com/stretchr/testify/require"
)

func TestByteSlicePoolSequential(t *testing.T) {
	bs := pool.ByteSlice()

	b := bs.Get()
	require.Equal(t, 0, len(b), "initial slice should have length 0")
	require.GreaterOrEqual(t, cap(b), 64, "initial capacity should be at least 64")

	b = append(b, 1, 2, 3)
	require.Equal(t, 3, len(b), "slice length after append should reflect appended items")

	bs.Put(b)

	b2 := bs.Get()
	require.Equal(t, 0, len(b2), "slice length after Put should be reset to 0")
	require.GreaterOrEqual(t, cap(b2), 64, "capacity should remain at least 64 after reset")
}

func TestByteSlicePoolGetCapacity(t *testing.T) {
	bs := pool.ByteSlice()
	b := bs.GetCapacity(256)
	require.Len(t, b, 0, "slice should be empty")
	require.GreaterOrEqual(t, cap(b), 256, "capacity should honor the request")
	bs.Put(b)
}

func TestByteSlicePoolConcurrent(t *testing.T) {
	const n = 30
	const capacity = 128
	bs := pool.ByteSlice()
	var wg sync.WaitGroup
	contents := make([]string, n)

	wg.Add(n)
	for i := range n {
		go func() {
			defer wg.Done()

			b := bs.GetCapacity(capacity)
			defer bs.Put(b)
			require.GreaterOrEqual(t, cap(b), capacity, "capacity should be sufficient for goroutine %d", i)
			require.Len(t, b, 0, "slice should be empty at start for goroutine %d", i)

			for range capacity {
				b = append(b, byte(i+0x21))
			}

			// copy before Put so later reuse cannot corrupt it
			contents[i] = string(b)
		}()
	}
	wg.Wait()

	for i, s := range contents {
		require.Len(t, s, capacity, "content %d should be full length", i)
		for j := 0; j < len(s); j++ {
			require.Equal(t, byte(i+0x21), s[j], "content %d should not be interleaved", i)
		}
	}
}
