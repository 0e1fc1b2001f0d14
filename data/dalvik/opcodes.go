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

import (
	"fmt"
	"strings"
)

// Opcodes is the instruction set visible to one Version. It is immutable once
// built, so it may be shared between goroutines without locking.
type Opcodes struct {
	Version      Version
	Experimental bool

	// direct opcode bytes
	byValue [256]*Opcode
	// lowercased name to opcode
	byName map[string]*Opcode
}

// MakeOpcodes builds the opcode tables for a packed version (see
// ResolveVersion). Experimental opcodes are only included if experimental is
// set.
func MakeOpcodes(packed uint32, experimental bool) *Opcodes {
	return BuildOpcodes(ResolveVersion(packed), experimental, Catalog)
}

// OpcodesForAPI builds the opcode tables for an API level with the default
// oat version.
func OpcodesForAPI(api int, experimental bool) *Opcodes {
	return BuildOpcodes(VersionForAPI(api), experimental, Catalog)
}

// BuildOpcodes selects the opcodes of catalog that exist at v.API. Payload
// pseudo-opcodes are never placed in the tables.
//
// A catalog where a visible opcode has a value outside [0, 255], or where two
// visible opcodes share a value or a name, is broken; BuildOpcodes panics
// rather than produce a silently wrong instruction set.
func BuildOpcodes(v Version, experimental bool, catalog []Opcode) *Opcodes {
	ops := &Opcodes{
		Version:      v,
		Experimental: experimental,
		byName:       make(map[string]*Opcode, 256),
	}
	for i := range catalog {
		op := &catalog[i]
		if op.IsPayload() {
			continue
		}
		if !op.Supports(v.API) || (op.IsExperimental() && !experimental) {
			continue
		}
		if op.Value < 0 || op.Value >= len(ops.byValue) {
			panic(fmt.Sprintf("dalvik: opcode %s has value 0x%x outside the opcode table", op.Name, op.Value))
		}
		if prev := ops.byValue[op.Value]; prev != nil {
			panic(fmt.Sprintf("dalvik: %s and %s both use value 0x%02x at %s", prev.Name, op.Name, op.Value, v))
		}
		name := strings.ToLower(op.Name)
		if prev, ok := ops.byName[name]; ok {
			panic(fmt.Sprintf("dalvik: 0x%02x and 0x%02x are both named %s at %s", prev.Value, op.Value, name, v))
		}
		ops.byValue[op.Value] = op
		ops.byName[name] = op
	}
	return ops
}

// ByName returns the visible opcode with the given name, ignoring case, or nil.
func (o *Opcodes) ByName(name string) *Opcode {
	return o.byName[strings.ToLower(name)]
}

// ByValue returns the visible opcode with the given value, or nil. The payload
// values resolve to the payload pseudo-opcodes regardless of version.
func (o *Opcodes) ByValue(value int) *Opcode {
	switch value {
	case PackedSwitchPayloadValue:
		return PackedSwitchPayload
	case SparseSwitchPayloadValue:
		return SparseSwitchPayload
	case ArrayPayloadValue:
		return ArrayPayload
	default:
		if value >= 0 && value < len(o.byValue) {
			return o.byValue[value]
		}
		return nil
	}
}

// Len is the number of visible opcodes, not counting payloads.
func (o *Opcodes) Len() int {
	return len(o.byName)
}

// All returns the visible opcodes ordered by value.
func (o *Opcodes) All() []*Opcode {
	result := make([]*Opcode, 0, len(o.byName))
	for _, op := range o.byValue {
		if op != nil {
			result = append(result, op)
		}
	}
	return result
}
