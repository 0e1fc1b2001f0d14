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

import "fmt"

// ReferenceType is the kind of constant pool item an instruction refers to.
type ReferenceType byte

const (
	// RefNone marks instructions without a pool reference
	RefNone ReferenceType = iota
	// RefString refers to the string pool
	RefString
	// RefType refers to the type pool
	RefType
	// RefField refers to the field pool
	RefField
	// RefMethod refers to the method pool
	RefMethod
	// RefMethodProto refers to the prototype pool
	RefMethodProto
	// RefCallSite refers to the call site pool
	RefCallSite
)

var referenceTypeNames = [...]string{"none", "string", "type", "field", "method", "method_proto", "call_site"}

func (r ReferenceType) String() string {
	if int(r) < len(referenceTypeNames) {
		return referenceTypeNames[r]
	}
	return fmt.Sprintf("ReferenceType(%d)", byte(r))
}

// Flags records control flow and register effects of an opcode.
type Flags uint16

const (
	// CanThrow is set if the instruction may throw an exception
	CanThrow Flags = 1 << iota
	// CanContinue is set if execution may fall through to the next instruction
	CanContinue
	// SetsResult is set if the instruction sets the hidden result register
	SetsResult
	// SetsRegister is set if the instruction writes its first register
	SetsRegister
	// SetsWideRegister is set if the written register is a wide pair
	SetsWideRegister
	// OdexOnly is set for instructions that only appear in optimized dex files
	OdexOnly
	// Experimental is set for instructions the runtime only accepts when
	// experimental opcodes are explicitly enabled
	Experimental
)

// APIRange is an inclusive range of API levels.
type APIRange struct {
	Min int
	Max int
}

// Contains is true iff api is within [r.Min, r.Max].
func (r APIRange) Contains(api int) bool {
	return api >= r.Min && api <= r.Max
}

// Overlaps is true iff some API level lies in both ranges.
func (r APIRange) Overlaps(o APIRange) bool {
	return r.Min <= o.Max && o.Min <= r.Max
}

// Opcode describes one instruction. Values of non-payload opcodes fit in a
// byte; payload pseudo-opcodes use the multi-byte values 0x100, 0x200 and
// 0x300.
type Opcode struct {
	Value     int
	Name      string
	Format    Format
	Reference ReferenceType
	APIs      APIRange
	Flags     Flags
}

func (op *Opcode) String() string {
	return op.Name
}

// MinAPI is the first API level where the opcode exists.
func (op *Opcode) MinAPI() int {
	return op.APIs.Min
}

// MaxAPI is the last API level where the opcode exists.
func (op *Opcode) MaxAPI() int {
	return op.APIs.Max
}

// Supports is true iff the opcode exists at the given API level.
func (op *Opcode) Supports(api int) bool {
	return op.APIs.Contains(api)
}

// IsExperimental reports whether the opcode is hidden unless experimental
// opcodes are enabled.
func (op *Opcode) IsExperimental() bool {
	return op.Flags&Experimental != 0
}

// IsPayload reports whether the opcode is a payload pseudo-opcode.
func (op *Opcode) IsPayload() bool {
	return op.Format.IsPayload()
}

// OdexOnly reports whether the opcode only appears in optimized dex files.
func (op *Opcode) OdexOnly() bool {
	return op.Flags&OdexOnly != 0
}

// CanThrow reports whether the instruction may throw.
func (op *Opcode) CanThrow() bool {
	return op.Flags&CanThrow != 0
}

// CanContinue reports whether execution can fall through the instruction.
func (op *Opcode) CanContinue() bool {
	return op.Flags&CanContinue != 0
}

// SetsResult reports whether the instruction sets the result register.
func (op *Opcode) SetsResult() bool {
	return op.Flags&SetsResult != 0
}

// SetsRegister reports whether the instruction writes a register.
func (op *Opcode) SetsRegister() bool {
	return op.Flags&SetsRegister != 0
}

// SetsWideRegister reports whether the instruction writes a register pair.
func (op *Opcode) SetsWideRegister() bool {
	return op.Flags&SetsWideRegister != 0
}
