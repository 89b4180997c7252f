// Package filetree renders sized file listings as ASCII trees. Each file line
// carries its own size and each directory line the sum of everything below
// it, so the tree doubles as a breakdown of where the bytes are.
package filetree

import (
	"sort"
	"strings"

	"github.com/holonoms/filesize/internal/size"
	"github.com/holonoms/filesize/internal/walker"
)

// node is either a directory (children != nil) or a file.
type node struct {
	size     uint64
	children map[string]*node
}

// FileTree holds the directory hierarchy of a set of sized paths.
type FileTree struct {
	root *node
}

// New builds a tree from entries. Paths may use either slash or backslash as
// separator; empty components are dropped.
func New(entries []walker.Entry) *FileTree {
	tree := &FileTree{root: &node{children: map[string]*node{}}}
	for _, e := range entries {
		tree.add(splitPath(e.Path), e.Size)
	}
	return tree
}

// Size returns the total bytes in the tree.
func (t *FileTree) Size() uint64 {
	return t.root.size
}

// String renders the tree under "/" + customRoot. The root line carries the
// total size.
func (t *FileTree) String(customRoot string) string {
	result := []string{"/" + customRoot + label(t.root.size)}
	t.render(t.root, "", &result)
	return strings.Join(result, "\n")
}

func (t *FileTree) add(parts []string, n uint64) {
	if len(parts) == 0 {
		return
	}

	current := t.root
	current.size += n
	for i, part := range parts {
		child, ok := current.children[part]
		if !ok {
			child = &node{}
			if i < len(parts)-1 {
				child.children = map[string]*node{}
			}
			current.children[part] = child
		} else if child.children == nil && i < len(parts)-1 {
			// Seen as a file first; promote to directory.
			child.children = map[string]*node{}
		}
		child.size += n
		current = child
	}
}

func (t *FileTree) render(n *node, prefix string, result *[]string) {
	var dirs, files []string
	for name, child := range n.children {
		if child.children != nil {
			dirs = append(dirs, name)
		} else {
			files = append(files, name)
		}
	}
	sort.Strings(dirs)
	sort.Strings(files)

	entries := append(dirs, files...)
	for i, name := range entries {
		child := n.children[name]
		isLast := i == len(entries)-1

		connector := "├── "
		childPrefix := prefix + "│   "
		if isLast {
			connector = "└── "
			childPrefix = prefix + "    "
		}

		displayName := name
		if child.children != nil {
			displayName += "/"
		}
		*result = append(*result, prefix+connector+displayName+label(child.size))

		if child.children != nil {
			t.render(child, childPrefix, result)
		}
	}
}

func label(n uint64) string {
	return " (" + size.Format(n) + ")"
}

func splitPath(path string) []string {
	path = strings.ReplaceAll(path, "\\", "/")
	var parts []string
	for _, p := range strings.Split(path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
