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

// OatVersionOffset is the bit offset of the oat version inside a packed
// version. The low bits carry the API level.
const OatVersionOffset = 16

const apiLevelMask = 1<<OatVersionOffset - 1

// Version identifies the platform a dex or oat file targets.
// Oat is 0 only when the caller did not supply one and the API level has no
// known default.
type Version struct {
	API int
	Oat int
}

// MakeVersion returns the Version for an API level and oat version. An oat
// version of 0 is replaced by the default for the API level, if there is one.
func MakeVersion(api, oat int) Version {
	if oat == 0 {
		oat = DefaultOatVersion(api)
	}
	return Version{API: api, Oat: oat}
}

// VersionForAPI is MakeVersion(api, 0).
func VersionForAPI(api int) Version {
	return MakeVersion(api, 0)
}

// ResolveVersion splits a packed version into its API level (low 16 bits) and
// oat version (high 16 bits), filling in the default oat version if the high
// bits are zero.
func ResolveVersion(packed uint32) Version {
	return MakeVersion(int(packed&apiLevelMask), int(packed>>OatVersionOffset))
}

// DefaultOatVersion is the oat version shipped with an API level's release,
// or 0 if it is not known.
//
// Do not edit existing entries, files already written rely on them.
func DefaultOatVersion(api int) int {
	switch api {
	case APIL:
		return 39
	case APILMR1:
		return 45
	case APIM:
		return 64
	case APIN:
		return 79
	default:
		return 0
	}
}

// Packed returns the packed form of v. ResolveVersion(v.Packed()) == v for
// every v returned by ResolveVersion.
func (v Version) Packed() uint32 {
	return uint32(v.Oat)<<OatVersionOffset | uint32(v.API)&apiLevelMask
}

func (v Version) String() string {
	return fmt.Sprintf("apiLevel=%d oatVersion=%d", v.API, v.Oat)
}
