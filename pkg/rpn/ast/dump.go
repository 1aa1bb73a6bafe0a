/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import (
	"reflect"
	"strings"
)

type Dumper struct {
	Output string
	indent int
}

func (d *Dumper) Visit(node Expression) Visitor {
	if node == nil {
		d.indent -= 1
		return nil
	}

	level := strings.Repeat("    ", d.indent)

	t := reflect.TypeOf(node)
	d.Output += level + t.Elem().Name() + "[" + node.Value() + "]" + "\n"
	d.indent += 1

	return d
}

// Dump returns an indented, one-node-per-line rendering of the tree.
func Dump(root Expression) string {
	d := Dumper{}
	Walk(&d, root)
	return d.Output
}
