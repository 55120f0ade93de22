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

import "errors"

// Tree errors
var (
	// ErrKeyNotFound is returned by Delete when the key is not in the tree.
	ErrKeyNotFound = errors.New("key not found")
)

// Invariant errors reported by Validate
var (
	// ErrOrder indicates a key on the wrong side of an ancestor.
	ErrOrder = errors.New("search order violated")

	// ErrHeight indicates a stored height that does not match the subtrees.
	ErrHeight = errors.New("stale height")

	// ErrBalance indicates a node whose subtree heights differ by more than one.
	ErrBalance = errors.New("node out of balance")
)

// Command errors
var (
	// ErrUnknownCommand indicates a command word that is not recognized.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrMissingKey indicates a command that needs at least one key but got none.
	ErrMissingKey = errors.New("command requires a key")

	// ErrInvalidKey indicates an argument that is not an integer.
	ErrInvalidKey = errors.New("invalid key")
)
