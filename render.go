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
	"strconv"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"
	"github.com/xlab/treeprint"
)

// EmptyDiagram is what an empty tree renders as.
const EmptyDiagram = "(empty)\n"

// Renderer draws trees as indented box-drawing diagrams, right subtree
// above left subtree. Diagrams are cached per tree revision.
type Renderer struct {
	config     RenderConfig
	cache      *cache.Cache
	keyStyle   lipgloss.Style
	heavyStyle lipgloss.Style
}

// NewRenderer returns a caching renderer for the given settings.
func NewRenderer(config RenderConfig) *Renderer {
	r := newPlainRenderer(config)
	r.cache = newRenderCache(config.CacheTTL, config.CacheCleanup)
	return r
}

func newPlainRenderer(config RenderConfig) *Renderer {
	return &Renderer{
		config:     config,
		keyStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color(config.KeyColor)),
		heavyStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(config.HeavyColor)).Bold(true),
	}
}

// Render returns the diagram for tree.
func (r *Renderer) Render(tree *Tree) string {
	if r.cache == nil {
		return r.diagram(tree.root)
	}

	key := renderKey(tree)
	if diagram, ok := getDiagram(r.cache, key); ok {
		return diagram
	}
	diagram := r.diagram(tree.root)
	cacheDiagram(r.cache, key, diagram)
	return diagram
}

// RenderInto copies as much of the diagram as fits into dst, never cutting a
// multi-byte character, and returns the length of the whole diagram. A result
// larger than len(dst) means the output was truncated.
func (r *Renderer) RenderInto(tree *Tree, dst []byte) int {
	return fill(dst, r.Render(tree))
}

// Forget drops any cached diagram of tree's current revision.
func (r *Renderer) Forget(tree *Tree) {
	if r.cache != nil {
		r.cache.Delete(renderKey(tree))
	}
}

func (r *Renderer) diagram(root *avlNode) string {
	if root == nil {
		return EmptyDiagram
	}
	printer := treeprint.NewWithRoot(r.label(root))
	r.addChildren(printer, root)
	return printer.String()
}

func (r *Renderer) addChildren(branch treeprint.Tree, node *avlNode) {
	// Right first so the diagram reads top to bottom from largest to smallest.
	if node.right != nil {
		r.addChildren(branch.AddBranch(r.label(node.right)), node.right)
	}
	if node.left != nil {
		r.addChildren(branch.AddBranch(r.label(node.left)), node.left)
	}
}

func (r *Renderer) label(node *avlNode) string {
	text := strconv.Itoa(node.key)
	if r.config.ShowBalance {
		text = fmt.Sprintf("%d (h=%d, bf=%d)", node.key, node.height, getBalanceFactor(node))
	}
	if !r.config.Color {
		return text
	}
	if getBalanceFactor(node) != 0 {
		return r.heavyStyle.Render(text)
	}
	return r.keyStyle.Render(text)
}

func fill(dst []byte, diagram string) int {
	n := len(diagram)
	if n > len(dst) {
		cut := len(dst)
		for cut > 0 && !utf8.RuneStart(diagram[cut]) {
			cut--
		}
		diagram = diagram[:cut]
	}
	copy(dst, diagram)
	return n
}

// String renders the tree with the default settings, without caching.
func (tree *Tree) String() string {
	return newPlainRenderer(defaultConfig.Render).diagram(tree.root)
}

// RenderInto writes the default diagram into dst. See Renderer.RenderInto.
func (tree *Tree) RenderInto(dst []byte) int {
	return fill(dst, tree.String())
}
