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

	"github.com/spf13/cobra"

	"github.com/yuanpeiyu/SmaliEx/data/dalvik"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [packed version]...",
	Short: "Split packed version integers into API level and oat version",
	Long:  "A packed version carries the API level in its low 16 bits and the oat version in its high 16 bits. An oat version of 0 is replaced by the default for the API level, when one is known.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := resolveVersions(os.Stdout, args); err != nil {
			reportErrorf("%v", err)
		}
	},
}

func resolveVersions(out io.Writer, args []string) error {
	for _, arg := range args {
		packed, err := strconv.ParseUint(arg, 0, 32)
		if err != nil {
			return fmt.Errorf("cannot parse packed version %q: %w", arg, err)
		}
		v := dalvik.ResolveVersion(uint32(packed))
		fmt.Fprintf(out, "%s: %s", arg, v)
		if name := dalvik.ReleaseName(v.API); name != "" {
			fmt.Fprintf(out, " (%s)", name)
		}
		fmt.Fprintln(out)
	}
	return nil
}
