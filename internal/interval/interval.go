// Package interval implements the algebra over half-open wall-clock ranges
// that backs listing availability and booking slots.
package interval

import (
	"fmt"
	"sort"
	"time"
)

// Step is the granularity of every persisted boundary.
const Step = 30 * time.Minute

const displayLayout = "2006-01-02 15:04"

// Interval is a half-open [Start, End) range of naive wall-clock time.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func New(start, end time.Time) Interval {
	return Interval{Start: start, End: end}
}

// Valid reports whether Start < End.
func (i Interval) Valid() bool {
	return i.Start.Before(i.End)
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Contains reports whether o lies entirely within i.
func (i Interval) Contains(o Interval) bool {
	return !o.Start.Before(i.Start) && !o.End.After(i.End)
}

// Overlaps reports whether i and o share at least one instant.
// Adjacent intervals do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && o.Start.Before(i.End)
}

func (i Interval) Equal(o Interval) bool {
	return i.Start.Equal(o.Start) && i.End.Equal(o.End)
}

// Aligned reports whether both boundaries sit on the half-hour grid.
func (i Interval) Aligned() bool {
	return OnGrid(i.Start) && OnGrid(i.End)
}

// Expired reports whether the interval ended at or before now.
func (i Interval) Expired(now time.Time) bool {
	return !i.End.After(now)
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s, %s)", i.Start.Format(displayLayout), i.End.Format(displayLayout))
}

// Subtract removes cut from slot and returns what is left of slot, in order.
func Subtract(slot, cut Interval) []Interval {
	if !cut.Valid() || !cut.End.After(slot.Start) || !cut.Start.Before(slot.End) {
		return []Interval{slot}
	}

	out := make([]Interval, 0, 2)
	if slot.Start.Before(cut.Start) {
		out = append(out, Interval{Start: slot.Start, End: cut.Start})
	}
	if cut.End.Before(slot.End) {
		out = append(out, Interval{Start: cut.End, End: slot.End})
	}
	return out
}

// SubtractAll removes every cut from the availability set, applying the cuts
// one after another to the current pieces, and returns the merged remainder.
func SubtractAll(availability, cuts []Interval) []Interval {
	current := Merge(availability)
	for _, cut := range cuts {
		next := make([]Interval, 0, len(current)+1)
		for _, iv := range current {
			next = append(next, Subtract(iv, cut)...)
		}
		current = next
	}
	return Merge(current)
}

// Merge sorts intervals by start and folds overlapping or adjacent ones
// together. Intervals with Start >= End are dropped. The input is not modified.
func Merge(intervals []Interval) []Interval {
	sorted := make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		if iv.Valid() {
			sorted = append(sorted, iv)
		}
	}
	if len(sorted) == 0 {
		return []Interval{}
	}

	sort.Slice(sorted, func(a, b int) bool {
		if sorted[a].Start.Equal(sorted[b].Start) {
			return sorted[a].End.Before(sorted[b].End)
		}
		return sorted[a].Start.Before(sorted[b].Start)
	})

	merged := []Interval{sorted[0]}
	for _, cur := range sorted[1:] {
		last := &merged[len(merged)-1]
		if !cur.Start.After(last.End) {
			if cur.End.After(last.End) {
				last.End = cur.End
			}
			continue
		}
		merged = append(merged, cur)
	}
	return merged
}

// Union returns the merged union of two interval sets.
func Union(a, b []Interval) []Interval {
	all := make([]Interval, 0, len(a)+len(b))
	all = append(all, a...)
	all = append(all, b...)
	return Merge(all)
}

// Covers reports whether target lies within a single interval of merged.
// merged must be sorted and non-overlapping, as returned by Merge.
func Covers(target Interval, merged []Interval) bool {
	if !target.Valid() {
		return false
	}
	idx := sort.Search(len(merged), func(i int) bool {
		return merged[i].Start.After(target.Start)
	}) - 1
	if idx < 0 {
		return false
	}
	return !merged[idx].End.Before(target.End)
}

// CoversAll reports whether every target is covered by availability.
func CoversAll(targets, availability []Interval) bool {
	return len(Uncovered(targets, availability)) == 0
}

// Uncovered returns the targets that availability does not cover, in input order.
func Uncovered(targets, availability []Interval) []Interval {
	merged := Merge(availability)
	var missing []Interval
	for _, t := range targets {
		if !Covers(t, merged) {
			missing = append(missing, t)
		}
	}
	return missing
}

// Disjoint reports whether no two intervals overlap. Adjacency is allowed.
func Disjoint(intervals []Interval) bool {
	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(a, b int) bool { return sorted[a].Start.Before(sorted[b].Start) })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start.Before(sorted[i-1].End) {
			return false
		}
	}
	return true
}

// SplitAtMidnight cuts an interval at every midnight it crosses.
// An overnight range yields its evening part and its morning part.
func SplitAtMidnight(i Interval) []Interval {
	var out []Interval
	cur := i.Start
	for {
		midnight := Day(cur).AddDate(0, 0, 1)
		if !midnight.Before(i.End) {
			out = append(out, Interval{Start: cur, End: i.End})
			return out
		}
		out = append(out, Interval{Start: cur, End: midnight})
		cur = midnight
	}
}

// TotalMinutes returns the summed duration of the intervals in whole minutes.
func TotalMinutes(intervals []Interval) int64 {
	var total time.Duration
	for _, iv := range intervals {
		total += iv.Duration()
	}
	return int64(total / time.Minute)
}
