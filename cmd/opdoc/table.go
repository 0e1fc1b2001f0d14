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
	"strings"

	"github.com/spf13/cobra"

	"github.com/yuanpeiyu/SmaliEx/data/dalvik"
	"github.com/yuanpeiyu/SmaliEx/protocol"
)

var tableFormat string

func init() {
	tableCmd.Flags().StringVarP(&tableFormat, "format", "f", "markdown", "Output format: markdown or json")
}

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print every opcode visible at the selected version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ops := opcodesFromSettings(cmd)
		var err error
		switch tableFormat {
		case "markdown", "md":
			err = opsToMarkdown(os.Stdout, ops)
		case "json":
			err = opsToJSON(os.Stdout, ops)
		default:
			reportErrorf("Unknown format %q", tableFormat)
		}
		if err != nil {
			reportErrorf("Cannot write opcode table: %v", err)
		}
	},
}

// opcodeEntry is the JSON form of one opcode.
type opcodeEntry struct {
	Value        int      `codec:"value"`
	Name         string   `codec:"name"`
	Format       string   `codec:"format"`
	Size         int      `codec:"size"`
	Reference    string   `codec:"reference"`
	MinAPI       int      `codec:"min_api"`
	MaxAPI       int      `codec:"max_api"`
	Flags        []string `codec:"flags,omitempty"`
	Experimental bool     `codec:"experimental,omitempty"`
}

type opcodeTable struct {
	APILevel     int           `codec:"api_level"`
	OatVersion   int           `codec:"oat_version"`
	Experimental bool          `codec:"experimental"`
	Opcodes      []opcodeEntry `codec:"opcodes"`
}

func flagNames(op *dalvik.Opcode) []string {
	var names []string
	if op.CanThrow() {
		names = append(names, "throws")
	}
	if op.CanContinue() {
		names = append(names, "continues")
	}
	if op.SetsResult() {
		names = append(names, "sets-result")
	}
	if op.SetsWideRegister() {
		names = append(names, "sets-wide-register")
	} else if op.SetsRegister() {
		names = append(names, "sets-register")
	}
	if op.OdexOnly() {
		names = append(names, "odex")
	}
	return names
}

func makeOpcodeEntry(op *dalvik.Opcode) opcodeEntry {
	return opcodeEntry{
		Value:        op.Value,
		Name:         op.Name,
		Format:       strings.TrimPrefix(op.Format.String(), "Format"),
		Size:         op.Format.Size(),
		Reference:    op.Reference.String(),
		MinAPI:       op.MinAPI(),
		MaxAPI:       op.MaxAPI(),
		Flags:        flagNames(op),
		Experimental: op.IsExperimental(),
	}
}

func makeOpcodeTable(ops *dalvik.Opcodes) opcodeTable {
	table := opcodeTable{
		APILevel:     ops.Version.API,
		OatVersion:   ops.Version.Oat,
		Experimental: ops.Experimental,
	}
	for _, op := range ops.All() {
		table.Opcodes = append(table.Opcodes, makeOpcodeEntry(op))
	}
	for _, op := range []*dalvik.Opcode{dalvik.PackedSwitchPayload, dalvik.SparseSwitchPayload, dalvik.ArrayPayload} {
		table.Opcodes = append(table.Opcodes, makeOpcodeEntry(op))
	}
	return table
}

func opsToJSON(out io.Writer, ops *dalvik.Opcodes) error {
	return protocol.NewJSONEncoder(out).Encode(makeOpcodeTable(ops))
}

func markdownTableEscape(x string) string {
	return strings.ReplaceAll(x, "|", "\\|")
}

func apiRangeString(minAPI, maxAPI int) string {
	switch {
	case minAPI == 0 && maxAPI == dalvik.MaxAPILevel:
		return "all"
	case maxAPI == dalvik.MaxAPILevel:
		return fmt.Sprintf("%d+", minAPI)
	default:
		return fmt.Sprintf("%d-%d", minAPI, maxAPI)
	}
}

func opsToMarkdown(out io.Writer, ops *dalvik.Opcodes) error {
	title := ops.Version.String()
	if name := dalvik.ReleaseName(ops.Version.API); name != "" {
		title += " (" + name + ")"
	}
	if ops.Experimental {
		title += ", experimental"
	}
	if _, err := fmt.Fprintf(out, "# Opcodes for %s\n\n| Opcode | Name | Format | Reference | API levels | Flags |\n| --- | --- | --- | --- | --- | --- |\n", title); err != nil {
		return err
	}
	for _, entry := range makeOpcodeTable(ops).Opcodes {
		_, err := fmt.Fprintf(out, "| 0x%02x | `%s` | %s | %s | %s | %s |\n",
			entry.Value, markdownTableEscape(entry.Name), entry.Format, entry.Reference,
			apiRangeString(entry.MinAPI, entry.MaxAPI), strings.Join(entry.Flags, ", "))
		if err != nil {
			return err
		}
	}
	return nil
}
