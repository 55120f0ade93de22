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
	"fmt"
	"sort"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyRange(lo, hi int) []int {
	keys := make([]int, 0, hi-lo+1)
	for k := lo; k <= hi; k++ {
		keys = append(keys, k)
	}
	return keys
}

func TestMerge(t *testing.T) {
	assert := assert.New(t)

	t1 := FromKeys(1, 2, 3)
	t2 := FromKeys(10, 20, 30)

	merged := Merge(t1, t2)

	assert.Equal([]int{1, 2, 3, 10, 20, 30}, merged.Keys())
	assert.NoError(merged.Validate())

	// Inputs are consumed.
	assert.True(t1.Empty())
	assert.True(t2.Empty())
	assert.False(t1.Search(1))
	assert.False(t2.Search(10))
}

func TestMergeWithEmpty(t *testing.T) {
	assert := assert.New(t)

	merged := Merge(New(), FromKeys(4, 5))
	assert.Equal([]int{4, 5}, merged.Keys())

	merged = Merge(FromKeys(4, 5), New())
	assert.Equal([]int{4, 5}, merged.Keys())

	merged = Merge(nil, nil)
	assert.True(merged.Empty())

	merged = Merge(FromKeys(7), nil)
	assert.Equal([]int{7}, merged.Keys())
}

func TestMergeSkewedHeights(t *testing.T) {
	cases := []struct {
		name       string
		small, big []int
	}{
		{"one node then a thousand", []int{0}, keyRange(1, 1000)},
		{"a thousand then one node", keyRange(0, 999), []int{5000}},
		{"two nodes then a thousand", []int{-2, -1}, keyRange(1, 1000)},
		{"a thousand then three", keyRange(1, 1000), []int{2000, 2001, 2002}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			merged := Merge(FromKeys(tc.small...), FromKeys(tc.big...))

			require.NoError(t, merged.Validate())
			want := append(append([]int{}, tc.small...), tc.big...)
			require.Equal(t, want, merged.Keys())
		})
	}
}

func TestSplit(t *testing.T) {
	assert := assert.New(t)

	tree := FromKeys(1, 2, 3, 4, 5)
	small, large := tree.Split(3)

	assert.Equal([]int{1, 2, 3}, small.Keys())
	assert.Equal([]int{4, 5}, large.Keys())
	assert.NoError(small.Validate())
	assert.NoError(large.Validate())
	assert.True(tree.Empty(), "split must consume its input")
}

func TestSplitPivotAbsent(t *testing.T) {
	tree := FromKeys(50, 25, 75, 10, 30, 60, 80)
	small, large := tree.Split(40)

	assert.Equal(t, []int{10, 25, 30}, small.Keys())
	assert.Equal(t, []int{50, 60, 75, 80}, large.Keys())
}

func TestSplitEdges(t *testing.T) {
	cases := []struct {
		name         string
		pivot        int
		wantSmallLen int
	}{
		{"below every key", -1, 0},
		{"at the minimum", 0, 1},
		{"at the maximum", 99, 100},
		{"above every key", 1000, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			small, large := FromKeys(keyRange(0, 99)...).Split(tc.pivot)

			require.NoError(t, small.Validate())
			require.NoError(t, large.Validate())
			assert.Equal(t, tc.wantSmallLen, small.Count())
			assert.Equal(t, 100-tc.wantSmallLen, large.Count())
		})
	}

	small, large := New().Split(3)
	assert.True(t, small.Empty())
	assert.True(t, large.Empty())
}

func randomKeys(faker *gofakeit.Faker, n, lo, hi int) []int {
	seen := make(map[int]bool, n)
	keys := make([]int, 0, n)
	for len(keys) < n {
		k := faker.IntRange(lo, hi)
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	return keys
}

func sortedCopy(keys []int) []int {
	out := append([]int{}, keys...)
	sort.Ints(out)
	return out
}

func TestSplitPartitionsRandomTrees(t *testing.T) {
	faker := gofakeit.New(7)

	for round := 0; round < 50; round++ {
		keys := randomKeys(faker, faker.IntRange(0, 300), -500, 500)
		pivot := faker.IntRange(-600, 600)

		t.Run(fmt.Sprintf("round %d pivot %d", round, pivot), func(t *testing.T) {
			small, large := FromKeys(keys...).Split(pivot)
			require.NoError(t, small.Validate())
			require.NoError(t, large.Validate())

			for _, k := range small.Keys() {
				require.LessOrEqual(t, k, pivot)
			}
			for _, k := range large.Keys() {
				require.Greater(t, k, pivot)
			}

			union := append(small.Keys(), large.Keys()...)
			require.Equal(t, sortedCopy(keys), union)

			// The halves merge back into the original key sequence.
			merged := Merge(small, large)
			require.NoError(t, merged.Validate())
			require.Equal(t, sortedCopy(keys), merged.Keys())
		})
	}
}

func TestMergeRandomTrees(t *testing.T) {
	faker := gofakeit.New(11)

	for round := 0; round < 50; round++ {
		leftKeys := randomKeys(faker, faker.IntRange(0, 400), 0, 9999)
		rightKeys := randomKeys(faker, faker.IntRange(0, 400), 10000, 20000)

		merged := Merge(FromKeys(leftKeys...), FromKeys(rightKeys...))
		require.NoError(t, merged.Validate(), "round %d", round)

		want := append(sortedCopy(leftKeys), sortedCopy(rightKeys)...)
		require.Equal(t, want, merged.Keys(), "round %d", round)
	}
}
