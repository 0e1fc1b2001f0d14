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

package dalvik

// Format identifies the operand layout of an instruction. Only the properties
// the opcode tables care about are recorded here.
type Format byte

// Instruction formats, named after the register/operand layout they describe.
const (
	Format10t Format = iota
	Format10x
	Format11n
	Format11x
	Format12x
	Format20bc
	Format20t
	Format21c
	Format21ih
	Format21lh
	Format21s
	Format21t
	Format22b
	Format22c
	Format22cs
	Format22s
	Format22t
	Format22x
	Format23x
	Format25x
	Format30t
	Format31c
	Format31i
	Format31t
	Format32x
	Format35c
	Format35mi
	Format35ms
	Format3rc
	Format3rmi
	Format3rms
	Format45cc
	Format4rcc
	Format51l
	FormatPackedSwitchPayload
	FormatSparseSwitchPayload
	FormatArrayPayload

	invalidFormat // keep last
)

type formatSpec struct {
	name    string
	size    int // in bytes, -1 when variable
	payload bool
}

var formatSpecs = [invalidFormat]formatSpec{
	Format10t:                 {"10t", 2, false},
	Format10x:                 {"10x", 2, false},
	Format11n:                 {"11n", 2, false},
	Format11x:                 {"11x", 2, false},
	Format12x:                 {"12x", 2, false},
	Format20bc:                {"20bc", 4, false},
	Format20t:                 {"20t", 4, false},
	Format21c:                 {"21c", 4, false},
	Format21ih:                {"21ih", 4, false},
	Format21lh:                {"21lh", 4, false},
	Format21s:                 {"21s", 4, false},
	Format21t:                 {"21t", 4, false},
	Format22b:                 {"22b", 4, false},
	Format22c:                 {"22c", 4, false},
	Format22cs:                {"22cs", 4, false},
	Format22s:                 {"22s", 4, false},
	Format22t:                 {"22t", 4, false},
	Format22x:                 {"22x", 4, false},
	Format23x:                 {"23x", 4, false},
	Format25x:                 {"25x", 6, false},
	Format30t:                 {"30t", 6, false},
	Format31c:                 {"31c", 6, false},
	Format31i:                 {"31i", 6, false},
	Format31t:                 {"31t", 6, false},
	Format32x:                 {"32x", 6, false},
	Format35c:                 {"35c", 6, false},
	Format35mi:                {"35mi", 6, false},
	Format35ms:                {"35ms", 6, false},
	Format3rc:                 {"3rc", 6, false},
	Format3rmi:                {"3rmi", 6, false},
	Format3rms:                {"3rms", 6, false},
	Format45cc:                {"45cc", 8, false},
	Format4rcc:                {"4rcc", 8, false},
	Format51l:                 {"51l", 10, false},
	FormatPackedSwitchPayload: {"PackedSwitchPayload", -1, true},
	FormatSparseSwitchPayload: {"SparseSwitchPayload", -1, true},
	FormatArrayPayload:        {"ArrayPayload", -1, true},
}

func (f Format) spec() formatSpec {
	if f >= invalidFormat {
		return formatSpec{name: "invalid", size: -1}
	}
	return formatSpecs[f]
}

func (f Format) String() string {
	return "Format" + f.spec().name
}

// Size is the encoded size in bytes, or -1 for variable length payloads.
func (f Format) Size() int {
	return f.spec().size
}

// IsPayload is true for the pseudo-instruction formats that only mark
// variable length data trailing a switch or fill-array-data instruction.
func (f Format) IsPayload() bool {
	return f.spec().payload
}
