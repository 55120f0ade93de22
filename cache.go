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
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Keep rendered diagrams for 30 minutes
	renderCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	renderCacheCleanup = 5 * time.Minute
)

func newRenderCache(ttl, cleanup time.Duration) *cache.Cache {
	if ttl <= 0 {
		ttl = renderCacheExpiration
	}
	if cleanup <= 0 {
		cleanup = renderCacheCleanup
	}
	return cache.New(ttl, cleanup)
}

// renderKey identifies one revision of one tree. Any mutation bumps the
// revision, so stale diagrams are never served.
func renderKey(tree *Tree) string {
	return strconv.FormatUint(tree.id, 10) + ":" + strconv.FormatUint(tree.rev, 10)
}

func cacheDiagram(c *cache.Cache, key string, diagram string) {
	c.Set(key, diagram, cache.DefaultExpiration)
}

func getDiagram(c *cache.Cache, key string) (string, bool) {
	val, ok := c.Get(key)
	if !ok {
		return "", false
	}
	return val.(string), true
}
