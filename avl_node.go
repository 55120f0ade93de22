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

// avlNode is a single key of the tree. A node owns its children exclusively.
type avlNode struct {
	key    int
	height int // 1 for a leaf
	left   *avlNode
	right  *avlNode
}

func newNode(key int) *avlNode {
	return &avlNode{key: key, height: 1}
}

func getHeight(node *avlNode) int {
	if node == nil {
		return 0
	}
	return node.height
}

func getBalanceFactor(node *avlNode) int {
	if node == nil {
		return 0
	}
	return getHeight(node.left) - getHeight(node.right)
}

func (n *avlNode) updateHeight() {
	n.height = max(getHeight(n.left), getHeight(n.right)) + 1
}

// size counts the nodes of the subtree rooted at n.
func (n *avlNode) size() int {
	if n == nil {
		return 0
	}
	return 1 + n.left.size() + n.right.size()
}

func (n *avlNode) findMin() *avlNode {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *avlNode) findMax() *avlNode {
	for n.right != nil {
		n = n.right
	}
	return n
}
