// SPDX-License-Identifier: MIT

package gridgraph

import (
	"container/list"
	"fmt"

	"github.com/katalvlaran/lvlgrid/grid"
)

// ExpandIsland finds a minimum-conversion path of water cells connecting
// any cell of component srcComp to any cell of component dstComp, as
// numbered by ConnectedComponents. Each water cell converted costs 1.
// Returns the path (including the start and end land cells) and its cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from all srcComp cells:
//     moving into a land cell costs 0, into a water cell 1.
//  3. Stop when any dstComp cell is dequeued.
//  4. Reconstruct path via predecessors.
//
// Complexity: O(W·H·d) time, O(W·H) memory for distance and prev slices.
func (gg *GridGraph[T]) ExpandIsland(srcComp, dstComp int) (path []grid.Pos, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, fmt.Errorf("ExpandIsland(%d,%d) of %d: %w", srcComp, dstComp, len(comps), ErrComponentIndex)
	}
	dstSet := make(map[int]struct{}, len(comps[dstComp]))
	for _, p := range comps[dstComp] {
		dstSet[gg.index(p)] = struct{}{}
	}

	h, w := gg.Cells.Size()
	n := h * w
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0-1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for _, p := range comps[srcComp] {
		i := gg.index(p)
		dist[i] = 0
		dq.PushFront(i)
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if _, ok := dstSet[u]; ok {
			target = u
			break
		}
		up := gg.Coordinate(u)
		for _, d := range gg.dirs {
			vp, ok := gg.Cells.AddDir(up, d)
			if !ok {
				continue
			}
			v := gg.index(vp)
			step := 0
			if !gg.IsLand(vp) {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; at = prev[at] {
		path = append(path, gg.Coordinate(at))
	}
	// reverse into src → dst order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}
