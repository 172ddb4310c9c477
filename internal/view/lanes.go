package view

// Interval is a projected extent on the display axis.
type Interval struct {
	Start float64
	End   float64
}

// Overlaps reports whether a and b share any of the axis. Touching ends do
// not overlap; NaN bounds never overlap anything.
func (a Interval) Overlaps(b Interval) bool {
	return a.Start < b.End && b.Start < a.End
}

// AssignLanes places each interval, in the order given, in the lowest lane
// none of whose members it overlaps. The result is aligned with ivs. This is
// greedy first-fit: no two intervals in a lane overlap, but the lane count is
// not minimal in general.
func AssignLanes(ivs []Interval) []int {
	out := make([]int, len(ivs))
	var lanes [][]Interval
	for i, iv := range ivs {
		lane := 0
		for ; lane < len(lanes); lane++ {
			if !clashes(lanes[lane], iv) {
				break
			}
		}
		if lane == len(lanes) {
			lanes = append(lanes, nil)
		}
		lanes[lane] = append(lanes[lane], iv)
		out[i] = lane
	}
	return out
}

func clashes(lane []Interval, iv Interval) bool {
	for _, prev := range lane {
		if prev.Overlaps(iv) {
			return true
		}
	}
	return false
}

// LaneCount is the number of lanes an assignment uses.
func LaneCount(lanes []int) int {
	n := 0
	for _, l := range lanes {
		if l+1 > n {
			n = l + 1
		}
	}
	return n
}

// LaneY is the vertical offset of a lane.
func LaneY(base, height, lane int) int {
	return base + lane*height
}
