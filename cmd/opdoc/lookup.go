// Copyright (C) 2019-2024 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yuanpeiyu/SmaliEx/data/dalvik"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [name or value]...",
	Short: "Look up opcodes by name or by value (decimal or 0x prefixed)",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ops := opcodesFromSettings(cmd)
		missing := lookupOpcodes(os.Stdout, ops, args)
		c := color.FgGreen
		if missing > 0 {
			c = color.FgRed
		}
		fmt.Println(color.New(c).Sprintf("Found %d of %d opcodes", len(args)-missing, len(args)))
		if missing > 0 {
			reportErrorf("%d of %d opcodes not found at %s", missing, len(args), ops.Version)
		}
	},
}

// lookupOpcode treats query as a value if it parses as an integer and as a
// name otherwise.
func lookupOpcode(ops *dalvik.Opcodes, query string) *dalvik.Opcode {
	if value, err := strconv.ParseInt(query, 0, 32); err == nil {
		return ops.ByValue(int(value))
	}
	return ops.ByName(query)
}

// lookupOpcodes writes one line per query and returns how many were not found.
func lookupOpcodes(out io.Writer, ops *dalvik.Opcodes, queries []string) (missing int) {
	for _, q := range queries {
		op := lookupOpcode(ops, q)
		if op == nil {
			missing++
			fmt.Fprintf(out, "%s: not found\n", q)
			continue
		}
		entry := makeOpcodeEntry(op)
		line := fmt.Sprintf("%s: 0x%02x %s format=%s ref=%s api=%s", q, entry.Value, entry.Name,
			entry.Format, entry.Reference, apiRangeString(entry.MinAPI, entry.MaxAPI))
		if len(entry.Flags) > 0 {
			line += " flags=" + strings.Join(entry.Flags, ",")
		}
		if entry.Experimental {
			line += " experimental"
		}
		fmt.Fprintln(out, line)
	}
	return missing
}
