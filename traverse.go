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

import "iter"

// NodeInfo describes one node as seen during an in-order walk.
type NodeInfo struct {
	Key     int
	Height  int
	Balance int // height(left) - height(right)
}

func infoOf(node *avlNode) NodeInfo {
	return NodeInfo{Key: node.key, Height: node.height, Balance: getBalanceFactor(node)}
}

// All returns an iterator over the nodes in ascending key order. Nodes are
// produced lazily, so breaking out of the loop stops the walk. The tree must
// not be modified while iterating.
func (tree *Tree) All() iter.Seq[NodeInfo] {
	return func(yield func(NodeInfo) bool) {
		var stack []*avlNode
		node := tree.root
		for node != nil || len(stack) > 0 {
			for node != nil {
				stack = append(stack, node)
				node = node.left
			}
			node = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(infoOf(node)) {
				return
			}
			node = node.right
		}
	}
}

// InOrderTraverse calls fn for every node in ascending key order.
func (tree *Tree) InOrderTraverse(fn func(key, height, balance int)) {
	if fn == nil {
		return
	}
	inOrderRecursive(tree.root, fn)
}

func inOrderRecursive(node *avlNode, fn func(key, height, balance int)) {
	if node == nil {
		return
	}
	inOrderRecursive(node.left, fn)
	fn(node.key, node.height, getBalanceFactor(node))
	inOrderRecursive(node.right, fn)
}

// Keys returns every key in ascending order.
func (tree *Tree) Keys() []int {
	keys := make([]int, 0)
	for info := range tree.All() {
		keys = append(keys, info.Key)
	}
	return keys
}

// Range returns an iterator over the keys k with lo <= k < hi, ascending.
func (tree *Tree) Range(lo, hi int) iter.Seq[int] {
	return func(yield func(int) bool) {
		rangeSearch(tree.root, lo, hi, yield)
	}
}

// rangeSearch walks only the subtrees that can hold keys in [low, high).
// It returns false once yield asks to stop.
func rangeSearch(node *avlNode, low, high int, yield func(int) bool) bool {
	if node == nil {
		return true
	}

	// If node.key can still be >= low, the left subtree may hold matches
	if node.key >= low {
		if !rangeSearch(node.left, low, high, yield) {
			return false
		}
	}

	if node.key >= low && node.key < high {
		if !yield(node.key) {
			return false
		}
	}

	if node.key < high {
		return rangeSearch(node.right, low, high, yield)
	}
	return true
}
