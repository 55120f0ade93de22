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
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
)

// Op names a tree operation in the command language.
type Op string

const (
	OpInsert Op = "insert"
	OpDelete Op = "delete"
	OpSearch Op = "search"
	OpPrint  Op = "print"
	OpCount  Op = "count"
	OpHeight Op = "height"
)

var opNames = map[string]Op{
	"i": OpInsert, "insert": OpInsert,
	"d": OpDelete, "delete": OpDelete,
	"s": OpSearch, "search": OpSearch,
	"p": OpPrint, "print": OpPrint,
	"c": OpCount, "count": OpCount,
	"h": OpHeight, "height": OpHeight,
}

// Command is one parsed line such as "insert 10 20 30".
type Command struct {
	Op   Op
	Keys []int
}

func (op Op) needsKeys() bool {
	return op == OpInsert || op == OpDelete || op == OpSearch
}

// ParseCommand parses a line made of a command word followed by integer keys.
// Words are split with shell quoting rules; the command word is case-insensitive.
func ParseCommand(line string) (Command, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return Command{}, fmt.Errorf("failed to parse command %q: %w", line, err)
	}
	if len(args) == 0 {
		return Command{}, fmt.Errorf("%w: empty line", ErrUnknownCommand)
	}

	op, ok := opNames[strings.ToLower(args[0])]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	cmd := Command{Op: op}
	for _, arg := range args[1:] {
		key, err := strconv.Atoi(arg)
		if err != nil {
			return Command{}, fmt.Errorf("%w: %q", ErrInvalidKey, arg)
		}
		cmd.Keys = append(cmd.Keys, key)
	}

	if op.needsKeys() && len(cmd.Keys) == 0 {
		return Command{}, fmt.Errorf("%w: %s", ErrMissingKey, op)
	}
	return cmd, nil
}

// Exec applies cmd to the tree and returns its textual output: one
// "true"/"false" line per searched key, the diagram for print, and a number
// for count and height. Insert and delete produce no output. Deleting
// missing keys does not stop the remaining deletions; the misses are joined
// into the returned error.
func (tree *Tree) Exec(cmd Command) (string, error) {
	switch cmd.Op {
	case OpInsert:
		for _, key := range cmd.Keys {
			tree.Insert(key)
		}
		return "", nil

	case OpDelete:
		var errs []error
		for _, key := range cmd.Keys {
			if err := tree.Delete(key); err != nil {
				errs = append(errs, err)
			}
		}
		return "", errors.Join(errs...)

	case OpSearch:
		lines := make([]string, 0, len(cmd.Keys))
		for _, key := range cmd.Keys {
			lines = append(lines, strconv.FormatBool(tree.Search(key)))
		}
		return strings.Join(lines, "\n"), nil

	case OpPrint:
		return tree.String(), nil

	case OpCount:
		return strconv.Itoa(tree.Count()), nil

	case OpHeight:
		return strconv.Itoa(tree.Height()), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Op)
}

// ExecLine parses line and applies it. See ParseCommand and Exec.
func (tree *Tree) ExecLine(line string) (string, error) {
	cmd, err := ParseCommand(line)
	if err != nil {
		return "", err
	}
	return tree.Exec(cmd)
}
