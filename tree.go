package huffman

import (
	"container/heap"
	"math"
)

// node is one slot in the code tree arena.  Every internal node has
// exactly two children; a tree over n symbols has n leaves and n-1
// internal nodes.
type node struct {
	weight uint64
	left   int32 // arena index, internal nodes only
	right  int32 // arena index, internal nodes only
	symbol int32 // alphabet index, leaves only
	leaf   bool
}

// buildTree runs the greedy merge: every alphabet position becomes a leaf,
// then the two minimum-weight nodes are repeatedly merged under a fresh
// internal node until one root remains.  Ties on weight break toward the
// lower arena index, so earlier-created nodes win and the result is
// deterministic; the first node popped becomes the left child.
//
// len(weights) must be >= 1.
func buildTree(weights []uint64) (arena []node, root int32) {
	n := len(weights)
	arena = make([]node, 0, 2*n-1)
	h := nodeHeap{list: make([]int32, 0, n)}
	for i, w := range weights {
		arena = append(arena, node{weight: w, symbol: int32(i), leaf: true})
		h.list = append(h.list, int32(i))
	}
	h.arena = arena
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(int32)
		b := heap.Pop(&h).(int32)

		// Compute the weight sum using saturating addition.
		sum := arena[a].weight + arena[b].weight
		if sum < arena[a].weight {
			sum = math.MaxUint64
		}

		arena = append(arena, node{weight: sum, left: a, right: b})
		h.arena = arena
		heap.Push(&h, int32(len(arena)-1))
	}

	root = heap.Pop(&h).(int32)
	return arena, root
}

// type nodeHeap {{{

type nodeHeap struct {
	arena []node
	list  []int32
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if h.arena[a].weight != h.arena[b].weight {
		return h.arena[a].weight < h.arena[b].weight
	}
	return a < b
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(int32))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
