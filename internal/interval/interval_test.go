package interval

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func hm(h, m int) time.Time {
	return base.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func iv(fromH, toH int) Interval {
	return Interval{Start: hm(fromH, 0), End: hm(toH, 0)}
}

// --- Subtract ---

func TestSubtract(t *testing.T) {
	slot := iv(10, 20)

	tests := []struct {
		name string
		cut  Interval
		want []Interval
	}{
		{"no overlap after", iv(20, 21), []Interval{slot}},
		{"no overlap before", iv(8, 10), []Interval{slot}},
		{"interior", iv(12, 18), []Interval{iv(10, 12), iv(18, 20)}},
		{"left overlap", iv(8, 12), []Interval{iv(12, 20)}},
		{"right overlap", iv(18, 22), []Interval{iv(10, 18)}},
		{"full cover", iv(9, 21), []Interval{}},
		{"exact cover", iv(10, 20), []Interval{}},
		{"shared start", iv(10, 12), []Interval{iv(12, 20)}},
		{"shared end", iv(18, 20), []Interval{iv(10, 18)}},
		{"empty cut", Interval{Start: hm(12, 0), End: hm(12, 0)}, []Interval{slot}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Subtract(slot, tt.cut))
		})
	}
}

func TestSubtractAll_AppliesCutsSequentially(t *testing.T) {
	avail := []Interval{iv(8, 12), iv(14, 20)}
	cuts := []Interval{iv(9, 10), iv(11, 15), iv(18, 19)}

	got := SubtractAll(avail, cuts)

	assert.Equal(t, []Interval{iv(8, 9), iv(10, 11), iv(15, 18), iv(19, 20)}, got)
}

func TestSubtractAll_NoCuts(t *testing.T) {
	got := SubtractAll([]Interval{iv(10, 12), iv(12, 14)}, nil)

	assert.Equal(t, []Interval{iv(10, 14)}, got)
}

// --- Merge ---

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		in   []Interval
		want []Interval
	}{
		{"empty", nil, []Interval{}},
		{"overlapping", []Interval{iv(10, 12), iv(11, 14)}, []Interval{iv(10, 14)}},
		{"adjacent", []Interval{iv(10, 12), iv(12, 15)}, []Interval{iv(10, 15)}},
		{"disjoint", []Interval{iv(10, 12), iv(13, 15)}, []Interval{iv(10, 12), iv(13, 15)}},
		{"unsorted", []Interval{iv(13, 15), iv(10, 12)}, []Interval{iv(10, 12), iv(13, 15)}},
		{"nested", []Interval{iv(10, 20), iv(12, 14)}, []Interval{iv(10, 20)}},
		{"drops empty", []Interval{iv(10, 10), iv(11, 12)}, []Interval{iv(11, 12)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Merge(tt.in))
		})
	}
}

func TestMerge_DoesNotModifyInput(t *testing.T) {
	in := []Interval{iv(13, 15), iv(10, 14)}
	snapshot := append([]Interval(nil), in...)

	_ = Merge(in)

	assert.Equal(t, snapshot, in)
}

func TestUnion(t *testing.T) {
	got := Union([]Interval{iv(10, 12), iv(14, 20)}, []Interval{iv(12, 14)})

	assert.Equal(t, []Interval{iv(10, 20)}, got)
}

// --- Covers ---

func TestCovers(t *testing.T) {
	avail := Merge([]Interval{iv(8, 12), iv(14, 20)})

	assert.True(t, Covers(iv(8, 12), avail))
	assert.True(t, Covers(iv(15, 16), avail))
	assert.False(t, Covers(iv(11, 15), avail))
	assert.False(t, Covers(iv(6, 9), avail))
	assert.False(t, Covers(iv(19, 21), avail))
	assert.False(t, Covers(iv(21, 22), avail))
	assert.False(t, Covers(iv(12, 12), avail))
	assert.False(t, Covers(iv(10, 11), nil))
}

func TestUncovered_KeepsInputOrder(t *testing.T) {
	avail := []Interval{iv(8, 12)}
	targets := []Interval{iv(13, 14), iv(9, 10), iv(7, 9)}

	assert.Equal(t, []Interval{iv(13, 14), iv(7, 9)}, Uncovered(targets, avail))
	assert.False(t, CoversAll(targets, avail))
	assert.True(t, CoversAll([]Interval{iv(9, 10)}, avail))
}

func TestDisjoint(t *testing.T) {
	assert.True(t, Disjoint([]Interval{iv(10, 12), iv(12, 14)}))
	assert.True(t, Disjoint([]Interval{iv(14, 16), iv(10, 12)}))
	assert.False(t, Disjoint([]Interval{iv(10, 13), iv(12, 14)}))
	assert.False(t, Disjoint([]Interval{iv(10, 13), iv(10, 11)}))
}

func TestSplitAtMidnight(t *testing.T) {
	overnight := Interval{Start: hm(20, 0), End: hm(34, 0)}

	got := SplitAtMidnight(overnight)

	require.Len(t, got, 2)
	assert.Equal(t, Interval{Start: hm(20, 0), End: hm(24, 0)}, got[0])
	assert.Equal(t, Interval{Start: hm(24, 0), End: hm(34, 0)}, got[1])

	assert.Equal(t, []Interval{iv(10, 14)}, SplitAtMidnight(iv(10, 14)))
	assert.Equal(t, []Interval{iv(20, 24)}, SplitAtMidnight(iv(20, 24)))
}

func TestTotalMinutes(t *testing.T) {
	got := TotalMinutes([]Interval{iv(10, 12), {Start: hm(13, 0), End: hm(13, 30)}})

	assert.Equal(t, int64(150), got)
}

// --- Laws ---

// randomInterval draws a valid interval on the half-hour grid within two days.
func randomInterval(r *rand.Rand) Interval {
	a := r.Intn(96)
	b := a + 1 + r.Intn(24)
	return Interval{Start: base.Add(time.Duration(a) * Step), End: base.Add(time.Duration(b) * Step)}
}

func randomSet(r *rand.Rand, n int) []Interval {
	out := make([]Interval, n)
	for i := range out {
		out[i] = randomInterval(r)
	}
	return out
}

func containsPoint(set []Interval, p time.Time) bool {
	for _, iv := range set {
		if !p.Before(iv.Start) && p.Before(iv.End) {
			return true
		}
	}
	return false
}

func gridPoints() []time.Time {
	points := make([]time.Time, 0, 130)
	for i := 0; i < 130; i++ {
		points = append(points, base.Add(time.Duration(i)*Step))
	}
	return points
}

func TestSubtract_PiecesAreDisjointAndExact(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	points := gridPoints()

	for n := 0; n < 500; n++ {
		slot, cut := randomInterval(r), randomInterval(r)
		pieces := Subtract(slot, cut)

		require.True(t, Disjoint(pieces), "slot=%s cut=%s", slot, cut)
		for _, p := range pieces {
			require.True(t, p.Valid())
			require.True(t, slot.Contains(p))
		}
		for _, pt := range points {
			want := containsPoint([]Interval{slot}, pt) && !containsPoint([]Interval{cut}, pt)
			require.Equal(t, want, containsPoint(pieces, pt), "slot=%s cut=%s point=%s", slot, cut, pt)
		}
	}
}

func TestMerge_IdempotentAndOrderIndependent(t *testing.T) {
	r := rand.New(rand.NewSource(11))

	for n := 0; n < 300; n++ {
		set := randomSet(r, 1+r.Intn(8))
		merged := Merge(set)

		require.Equal(t, merged, Merge(merged))

		shuffled := append([]Interval(nil), set...)
		r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		require.Equal(t, merged, Merge(shuffled))

		for i := 1; i < len(merged); i++ {
			require.True(t, merged[i-1].End.Before(merged[i].Start), "merged set must be sorted without adjacency")
		}
	}
}

func TestCovers_MonotoneUnderGrowth(t *testing.T) {
	r := rand.New(rand.NewSource(13))

	for n := 0; n < 300; n++ {
		small := Merge(randomSet(r, 1+r.Intn(5)))
		large := Union(small, randomSet(r, r.Intn(5)))
		target := randomInterval(r)

		if Covers(target, small) {
			require.True(t, Covers(target, large), "target=%s small=%v large=%v", target, small, large)
		}
	}
}

func TestSubtractAll_ThenUnionRestores(t *testing.T) {
	r := rand.New(rand.NewSource(17))

	for n := 0; n < 300; n++ {
		avail := Merge(randomSet(r, 1+r.Intn(4)))
		cut := randomInterval(r)
		if !Covers(cut, avail) {
			continue
		}

		blocked := SubtractAll(avail, []Interval{cut})
		require.False(t, Covers(cut, blocked))
		require.Equal(t, avail, Union(blocked, []Interval{cut}))
	}
}
