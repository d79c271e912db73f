package internal

import "sort"

// Andrew's monotone chain. Returns indexes of hull vertices in counterclockwise
// order, starting from the lexicographically lowest point. Collinear points on
// the boundary and duplicates are left out. Fewer than three distinct,
// non-collinear points give a degenerate hull of one or two indexes.
func ConvexHull(points []Point) []int {
	if len(points) == 0 {
		return nil
	}

	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return points[order[i]].Less(points[order[j]])
	})
	// Duplicates are adjacent after sorting. Keep the first occurrence.
	unique := order[:1]
	for _, i := range order[1:] {
		if points[i] != points[unique[len(unique)-1]] {
			unique = append(unique, i)
		}
	}
	order = unique

	// A point makes a left turn if it's strictly counterclockwise from the last
	// two hull points. Anything else, including collinear, pops.
	var build = func(stack *IndexStack, i int) {
		for stack.Len() >= 2 && Orient(points[stack.Peek(1)], points[stack.Peek(0)], points[i]) <= 0 {
			stack.Pop()
		}
		stack.Push(i)
	}

	lower := make(IndexStack, 0, len(order))
	for _, i := range order {
		build(&lower, i)
	}
	upper := make(IndexStack, 0, len(order))
	for k := len(order) - 1; k >= 0; k-- {
		build(&upper, order[k])
	}

	// The last point of each chain is the first point of the other
	hull := append([]int{}, lower[:lower.Len()-1]...)
	hull = append(hull, upper[:upper.Len()-1]...)
	if len(hull) == 0 {
		// All points coincide
		hull = []int{order[0]}
	}
	return hull
}
