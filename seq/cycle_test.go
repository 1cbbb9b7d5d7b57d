package seq

import (
	"iter"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// detector is either Floyd, Brent or Detect, so the same cases run against
// all of them.
type detector func(s iter.Seq[int], limit int) (Cycle, bool)

var detectors = map[string]detector{
	"floyd":  Floyd[int],
	"brent":  Brent[int],
	"detect": Detect[int],
}

func TestDetectPrefixAndCycle(t *testing.T) {
	tests := []struct {
		name   string
		prefix []int
		cycle  []int
		want   Cycle
	}{
		{
			name:   "prefix then cycle",
			prefix: []int{1, 2, 3},
			cycle:  []int{4, 5, 6, 7},
			want:   Cycle{Start: 3, Length: 4},
		},
		{
			name:  "pure cycle no prefix",
			cycle: []int{1, 2, 3},
			want:  Cycle{Start: 0, Length: 3},
		},
		{
			name:  "single repeated element",
			cycle: []int{7},
			want:  Cycle{Start: 0, Length: 1},
		},
		{
			name:   "long prefix short cycle",
			prefix: []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
			cycle:  []int{10, 11},
			want:   Cycle{Start: 10, Length: 2},
		},
		{
			name:   "one element prefix",
			prefix: []int{0},
			cycle:  []int{1, 2, 3, 4, 5},
			want:   Cycle{Start: 1, Length: 5},
		},
	}

	for _, tt := range tests {
		for name, detect := range detectors {
			t.Run(tt.name+"/"+name, func(t *testing.T) {
				got, ok := detect(CyclePrefix(tt.prefix, tt.cycle), 0)
				require.True(t, ok)
				assert.Equal(t, tt.want, got)
			})
		}
	}
}

func TestDetectNoCycleOnDistinctFiniteList(t *testing.T) {
	list := []int{5, 1, 4, 2, 8, 0, 9, 3}
	for name, detect := range detectors {
		t.Run(name, func(t *testing.T) {
			got, ok := detect(slices.Values(list), 0)
			assert.False(t, ok)
			assert.Equal(t, Cycle{}, got)
		})
	}
}

func TestDetectLimitBelowCycleStart(t *testing.T) {
	// The cycle objectively exists at index 50, but the limit stops the
	// search long before the detectors can prove it.
	prefix := make([]int, 50)
	for i := range prefix {
		prefix[i] = i
	}
	s := CyclePrefix(prefix, []int{100, 101, 102})
	for name, detect := range detectors {
		t.Run(name, func(t *testing.T) {
			_, ok := detect(s, 10)
			assert.False(t, ok)
		})
	}
}

func TestDetectAcyclicInfiniteHitsLimit(t *testing.T) {
	for name, detect := range detectors {
		t.Run(name, func(t *testing.T) {
			_, ok := detect(Count(0, 1), 1000)
			assert.False(t, ok)
		})
	}
}

func TestFloydBrentAgreeOnRandomInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 25; i++ {
		prefixLen := rng.Intn(11)
		cycleLen := 1 + rng.Intn(10)

		// Values are chosen so that no element of the prefix collides with
		// the cycle and the cycle itself has no internal repetition.
		prefix := make([]int, prefixLen)
		for j := range prefix {
			prefix[j] = j
		}
		cycle := make([]int, cycleLen)
		for j := range cycle {
			cycle[j] = 1000 + j
		}

		s := CyclePrefix(prefix, cycle)
		f, fok := Floyd(s, 0)
		b, bok := Brent(s, 0)
		require.True(t, fok, "floyd prefix=%d cycle=%d", prefixLen, cycleLen)
		require.True(t, bok, "brent prefix=%d cycle=%d", prefixLen, cycleLen)
		assert.Equal(t, f, b, "prefix=%d cycle=%d", prefixLen, cycleLen)
		assert.Equal(t, Cycle{Start: prefixLen, Length: cycleLen}, b)
	}
}

func TestDetectIdempotent(t *testing.T) {
	build := func() iter.Seq[int] {
		return CyclePrefix([]int{1, 2}, []int{3, 4, 5})
	}
	first, ok1 := Detect(build(), 0)
	second, ok2 := Detect(build(), 0)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, first, second)
}

func TestDetectIteratedFunction(t *testing.T) {
	// x -> (3x+1) mod 11 starting at 2 enters a cycle; both detectors must
	// agree on where.
	f := func(x int) int { return (3*x + 1) % 11 }
	fl, ok := Floyd(Iterate(f, 2), 0)
	require.True(t, ok)
	br, ok := Brent(Iterate(f, 2), 0)
	require.True(t, ok)
	assert.Equal(t, fl, br)
	assert.Positive(t, fl.Length)
}

func TestDetectEmptySequence(t *testing.T) {
	for name, detect := range detectors {
		t.Run(name, func(t *testing.T) {
			_, ok := detect(slices.Values([]int(nil)), 0)
			assert.False(t, ok)
		})
	}
}

func TestFirstMatch(t *testing.T) {
	makeKeep := func(values []int) *Keep[int] {
		k, err := NewKeep(Tee(slices.Values(values), 1)[0])
		require.NoError(t, err)
		return k
	}

	t.Run("match at index", func(t *testing.T) {
		a := makeKeep([]int{1, 2, 3, 4})
		b := makeKeep([]int{9, 8, 3, 4})
		n, ok := firstMatch(a, b, 100)
		require.True(t, ok)
		assert.Equal(t, 2, n)
		assert.Equal(t, 3, a.Current(), "cursors stay at the match")
	})

	t.Run("no match within limit", func(t *testing.T) {
		a := makeKeep([]int{1, 2, 3, 4, 5})
		b := makeKeep([]int{2, 3, 4, 5, 6})
		_, ok := firstMatch(a, b, 3)
		assert.False(t, ok)
	})

	t.Run("source drained", func(t *testing.T) {
		a := makeKeep([]int{1, 2})
		b := makeKeep([]int{3, 4})
		_, ok := firstMatch(a, b, 100)
		assert.False(t, ok)
	})
}
