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

// Package avltree implements a height-balanced (AVL) binary search tree over
// unique integer keys, with merge and split operations that keep the tree
// balanced without rebuilding it.
//
// A Tree is not safe for concurrent use.
package avltree

import (
	"fmt"
	"sync/atomic"
)

var treeIDs atomic.Uint64

// Tree is an AVL tree of unique int keys. The zero value is not usable; call New.
type Tree struct {
	root *avlNode
	id   uint64
	rev  uint64 // bumped on every structural change
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{id: treeIDs.Add(1)}
}

// FromKeys builds a tree holding keys. Duplicates are ignored.
func FromKeys(keys ...int) *Tree {
	tree := New()
	for _, key := range keys {
		tree.Insert(key)
	}
	return tree
}

func newTreeWithRoot(root *avlNode) *Tree {
	tree := New()
	tree.root = root
	return tree
}

// Close releases every node. The tree is empty afterwards and may be reused.
func (tree *Tree) Close() {
	if tree.root == nil {
		return
	}
	tree.root = nil
	tree.rev++
}

// take hands the nodes over to the caller and leaves tree empty.
func (tree *Tree) take() *avlNode {
	if tree == nil {
		return nil
	}
	root := tree.root
	tree.Close()
	return root
}

func rotateLeft(node *avlNode) *avlNode {
	if node == nil || node.right == nil {
		return node
	}

	pivot := node.right
	node.right = pivot.left
	pivot.left = node

	node.updateHeight()
	pivot.updateHeight()

	return pivot
}

func rotateRight(node *avlNode) *avlNode {
	if node == nil || node.left == nil {
		return node
	}

	pivot := node.left
	node.left = pivot.right
	pivot.right = node

	node.updateHeight()
	pivot.updateHeight()

	return pivot
}

// rebalance refreshes node's height and restores the balance invariant at
// node. Both subtrees must already be valid AVL trees whose heights differ by
// at most two.
func rebalance(node *avlNode) *avlNode {
	if node == nil {
		return nil
	}
	node.updateHeight()

	balanceFactor := getBalanceFactor(node)

	// Left-heavy
	if balanceFactor > 1 {
		if getBalanceFactor(node.left) < 0 {
			// Left-Right case
			node.left = rotateLeft(node.left)
		}
		return rotateRight(node)
	}

	// Right-heavy
	if balanceFactor < -1 {
		if getBalanceFactor(node.right) > 0 {
			// Right-Left case
			node.right = rotateRight(node.right)
		}
		return rotateLeft(node)
	}

	return node
}

// Insert adds key to the tree. It reports false, leaving the tree untouched,
// when key is already present.
func (tree *Tree) Insert(key int) bool {
	var inserted bool
	tree.root = insertRecursive(tree.root, key, &inserted)
	if inserted {
		tree.rev++
	}
	return inserted
}

func insertRecursive(node *avlNode, key int, inserted *bool) *avlNode {
	if node == nil {
		*inserted = true
		return newNode(key)
	}

	if key < node.key {
		node.left = insertRecursive(node.left, key, inserted)
	} else if key > node.key {
		node.right = insertRecursive(node.right, key, inserted)
	} else {
		return node
	}

	return rebalance(node)
}

// Delete removes key from the tree. When key is absent the tree is left
// unchanged and an error wrapping ErrKeyNotFound is returned.
func (tree *Tree) Delete(key int) error {
	if !tree.Search(key) {
		logger.Warn("key not found, nothing deleted", "key", key)
		return fmt.Errorf("%w: %d", ErrKeyNotFound, key)
	}
	tree.root = deleteRecursive(tree.root, key)
	tree.rev++
	return nil
}

func deleteRecursive(node *avlNode, key int) *avlNode {
	if node == nil {
		return nil
	}

	if key < node.key {
		node.left = deleteRecursive(node.left, key)
	} else if key > node.key {
		node.right = deleteRecursive(node.right, key)
	} else {
		// At most one child: splice it in.
		if node.left == nil {
			return node.right
		}
		if node.right == nil {
			return node.left
		}
		// Two children: take over the in-order successor's key.
		successor := node.right.findMin()
		node.key = successor.key
		node.right = deleteRecursive(node.right, successor.key)
	}

	return rebalance(node)
}

// removeMax detaches the largest node of the subtree rooted at node and
// returns the rebalanced remainder together with the detached node.
func removeMax(node *avlNode) (rest, maxNode *avlNode) {
	if node.right == nil {
		rest = node.left
		node.left = nil
		node.height = 1
		return rest, node
	}
	node.right, maxNode = removeMax(node.right)
	return rebalance(node), maxNode
}

// Search reports whether key is in the tree.
func (tree *Tree) Search(key int) bool {
	node := tree.root
	for node != nil {
		if key < node.key {
			node = node.left
		} else if key > node.key {
			node = node.right
		} else {
			return true
		}
	}
	return false
}

// Min returns the smallest key, or false when the tree is empty.
func (tree *Tree) Min() (int, bool) {
	if tree.root == nil {
		return 0, false
	}
	return tree.root.findMin().key, true
}

// Max returns the largest key, or false when the tree is empty.
func (tree *Tree) Max() (int, bool) {
	if tree.root == nil {
		return 0, false
	}
	return tree.root.findMax().key, true
}

// Count returns the number of keys. It walks the whole tree.
func (tree *Tree) Count() int {
	return tree.root.size()
}

// Height returns the height of the root, 0 for an empty tree.
func (tree *Tree) Height() int {
	return getHeight(tree.root)
}

// Empty reports whether the tree holds no keys.
func (tree *Tree) Empty() bool {
	return tree.root == nil
}
