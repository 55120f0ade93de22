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

import (
	"errors"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

func TestInsertKeepsInvariants(t *testing.T) {
	faker := gofakeit.New(1)
	keys := randomKeys(faker, 500, -10000, 10000)

	tree := New()
	for i, key := range keys {
		require.True(t, tree.Insert(key))
		require.NoError(t, tree.Validate(), "after inserting %d", key)
		require.Equal(t, i+1, tree.Count())
	}
	for _, key := range keys {
		require.True(t, tree.Search(key), "key %d lost", key)
	}
	require.Equal(t, sortedCopy(keys), tree.Keys())
}

func TestSequentialInsertStaysLogarithmic(t *testing.T) {
	tree := New()
	for key := 1; key <= 1<<12; key++ {
		tree.Insert(key)
	}
	require.NoError(t, tree.Validate())
	// An AVL tree of n nodes is at most about 1.44*log2(n) high.
	require.LessOrEqual(t, tree.Height(), 18)
}

func TestDeleteKeepsInvariants(t *testing.T) {
	faker := gofakeit.New(2)
	keys := randomKeys(faker, 400, 0, 5000)
	tree := FromKeys(keys...)

	order := append([]int{}, keys...)
	faker.ShuffleInts(order)

	remaining := make(map[int]bool, len(keys))
	for _, k := range keys {
		remaining[k] = true
	}

	for _, key := range order {
		require.NoError(t, tree.Delete(key))
		delete(remaining, key)

		require.NoError(t, tree.Validate(), "after deleting %d", key)
		require.False(t, tree.Search(key))
		require.Equal(t, len(remaining), tree.Count())
	}
	require.True(t, tree.Empty())
}

func TestMixedOperationsAgainstMap(t *testing.T) {
	faker := gofakeit.New(3)
	tree := New()
	model := make(map[int]bool)

	for step := 0; step < 3000; step++ {
		key := faker.IntRange(0, 200)
		if faker.Bool() {
			require.Equal(t, !model[key], tree.Insert(key))
			model[key] = true
		} else {
			err := tree.Delete(key)
			if model[key] {
				require.NoError(t, err)
			} else {
				require.True(t, errors.Is(err, ErrKeyNotFound))
			}
			delete(model, key)
		}
		require.NoError(t, tree.Validate(), "step %d", step)
	}

	for key := 0; key <= 200; key++ {
		require.Equal(t, model[key], tree.Search(key), "key %d", key)
	}
}
