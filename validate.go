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

import "fmt"

// Validate checks search order, stored heights and balance at every node and
// returns the first violation found, or nil.
func (tree *Tree) Validate() error {
	_, err := checkNode(tree.root, nil, nil)
	return err
}

// checkNode returns the recomputed height of the subtree. lo and hi, when
// set, are exclusive bounds inherited from the ancestors.
func checkNode(node *avlNode, lo, hi *int) (int, error) {
	if node == nil {
		return 0, nil
	}
	if (lo != nil && node.key <= *lo) || (hi != nil && node.key >= *hi) {
		return 0, fmt.Errorf("%w: key %d", ErrOrder, node.key)
	}

	lh, err := checkNode(node.left, lo, &node.key)
	if err != nil {
		return 0, err
	}
	rh, err := checkNode(node.right, &node.key, hi)
	if err != nil {
		return 0, err
	}

	h := max(lh, rh) + 1
	if node.height != h {
		return 0, fmt.Errorf("%w: key %d stores %d, want %d", ErrHeight, node.key, node.height, h)
	}
	if bf := lh - rh; bf > 1 || bf < -1 {
		return 0, fmt.Errorf("%w: key %d has balance %d", ErrBalance, node.key, bf)
	}
	return h, nil
}
