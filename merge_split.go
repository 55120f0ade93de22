// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avltree

// Merge joins two trees into one and returns it. Every key of t1 must be
// smaller than every key of t2; this is not checked, and violating it yields a
// tree that no longer searches correctly.
//
// Both inputs are consumed: they are left empty and their nodes now belong to
// the returned tree. Either input may be nil.
func Merge(t1, t2 *Tree) *Tree {
	left, right := t1.take(), t2.take()
	if left == nil {
		return newTreeWithRoot(right)
	}
	if right == nil {
		return newTreeWithRoot(left)
	}

	rest, mid := removeMax(left)
	merged := newTreeWithRoot(join(rest, mid, right))
	logger.Debug("merged trees", "height", merged.Height(), "joined_at", mid.key)
	return merged
}

// Split partitions the tree around pivot: small holds every key <= pivot and
// large every key > pivot. The receiver is consumed and left empty.
func (tree *Tree) Split(pivot int) (small, large *Tree) {
	s, l := split(tree.take(), pivot)
	small, large = newTreeWithRoot(s), newTreeWithRoot(l)
	logger.Debug("split tree", "pivot", pivot, "small_height", small.Height(), "large_height", large.Height())
	return small, large
}

func split(node *avlNode, pivot int) (small, large *avlNode) {
	if node == nil {
		return nil, nil
	}

	left, right := node.left, node.right
	node.left, node.right = nil, nil

	switch {
	case pivot < node.key:
		small, large = split(left, pivot)
		return small, join(large, node, right)
	case pivot > node.key:
		small, large = split(right, pivot)
		return join(left, node, small), large
	default:
		// node holds the pivot, which belongs to the small side.
		return join(left, node, nil), right
	}
}

// join links left and right under mid. Every key of left must be smaller than
// mid.key and every key of right larger. When the heights differ by more than
// one, mid is attached down the spine of the taller tree where the heights
// match, and every node on the way back up is rebalanced.
func join(left, mid, right *avlNode) *avlNode {
	switch {
	case getHeight(left) > getHeight(right)+1:
		return joinRight(left, mid, right)
	case getHeight(right) > getHeight(left)+1:
		return joinLeft(left, mid, right)
	}
	mid.left, mid.right = left, right
	mid.updateHeight()
	return mid
}

// joinRight descends the right spine of the taller left tree.
func joinRight(left, mid, right *avlNode) *avlNode {
	if getHeight(left.right) <= getHeight(right)+1 {
		mid.left, mid.right = left.right, right
		mid.updateHeight()
		left.right = mid
	} else {
		left.right = joinRight(left.right, mid, right)
	}
	return rebalance(left)
}

// joinLeft descends the left spine of the taller right tree.
func joinLeft(left, mid, right *avlNode) *avlNode {
	if getHeight(right.left) <= getHeight(left)+1 {
		mid.left, mid.right = left, right.left
		mid.updateHeight()
		right.left = mid
	} else {
		right.left = joinLeft(left, mid, right.left)
	}
	return rebalance(right)
}
