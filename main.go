/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package main

import (
	"github.com/dburkart/rpn2tex/cmd/rpn2tex"
)

func main() {
	rpn2tex.Execute()
}
