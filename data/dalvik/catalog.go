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

// Values of the payload pseudo-opcodes. They are outside the byte range so
// they never occupy a slot of the by-value table.
const (
	PackedSwitchPayloadValue = 0x100
	SparseSwitchPayloadValue = 0x200
	ArrayPayloadValue        = 0x300
)

var allAPIs = APIRange{0, MaxAPILevel}

func since(api int) APIRange {
	return APIRange{api, MaxAPILevel}
}

func until(api int) APIRange {
	return APIRange{0, api}
}

func between(minAPI, maxAPI int) APIRange {
	return APIRange{minAPI, maxAPI}
}

// shorthand flag sets used by the table below
const (
	fc   = CanContinue
	fcr  = CanContinue | SetsRegister
	fcw  = fcr | SetsWideRegister
	ftc  = CanThrow | CanContinue
	ftcr = ftc | SetsRegister
	ftcw = ftcr | SetsWideRegister
	ftcs = ftc | SetsResult
)

// Catalog is every opcode the tools know about, across all API levels.
// Entries whose API ranges overlap never share a value or a name; Opcodes
// relies on that.
//
// Note: the same name may appear more than once when the runtime moved an
// instruction to a different value (the quickened field accessors moved in M).
var Catalog = []Opcode{
	{0x00, "nop", Format10x, RefNone, allAPIs, fc},
	{0x01, "move", Format12x, RefNone, allAPIs, fcr},
	{0x02, "move/from16", Format22x, RefNone, allAPIs, fcr},
	{0x03, "move/16", Format32x, RefNone, allAPIs, fcr},
	{0x04, "move-wide", Format12x, RefNone, allAPIs, fcw},
	{0x05, "move-wide/from16", Format22x, RefNone, allAPIs, fcw},
	{0x06, "move-wide/16", Format32x, RefNone, allAPIs, fcw},
	{0x07, "move-object", Format12x, RefNone, allAPIs, fcr},
	{0x08, "move-object/from16", Format22x, RefNone, allAPIs, fcr},
	{0x09, "move-object/16", Format32x, RefNone, allAPIs, fcr},
	{0x0a, "move-result", Format11x, RefNone, allAPIs, fcr},
	{0x0b, "move-result-wide", Format11x, RefNone, allAPIs, fcw},
	{0x0c, "move-result-object", Format11x, RefNone, allAPIs, fcr},
	{0x0d, "move-exception", Format11x, RefNone, allAPIs, fcr},
	{0x0e, "return-void", Format10x, RefNone, allAPIs, 0},
	{0x0f, "return", Format11x, RefNone, allAPIs, 0},
	{0x10, "return-wide", Format11x, RefNone, allAPIs, 0},
	{0x11, "return-object", Format11x, RefNone, allAPIs, 0},
	{0x12, "const/4", Format11n, RefNone, allAPIs, fcr},
	{0x13, "const/16", Format21s, RefNone, allAPIs, fcr},
	{0x14, "const", Format31i, RefNone, allAPIs, fcr},
	{0x15, "const/high16", Format21ih, RefNone, allAPIs, fcr},
	{0x16, "const-wide/16", Format21s, RefNone, allAPIs, fcw},
	{0x17, "const-wide/32", Format31i, RefNone, allAPIs, fcw},
	{0x18, "const-wide", Format51l, RefNone, allAPIs, fcw},
	{0x19, "const-wide/high16", Format21lh, RefNone, allAPIs, fcw},
	{0x1a, "const-string", Format21c, RefString, allAPIs, ftcr},
	{0x1b, "const-string/jumbo", Format31c, RefString, allAPIs, ftcr},
	{0x1c, "const-class", Format21c, RefType, allAPIs, ftcr},
	{0x1d, "monitor-enter", Format11x, RefNone, allAPIs, ftc},
	{0x1e, "monitor-exit", Format11x, RefNone, allAPIs, ftc},
	{0x1f, "check-cast", Format21c, RefType, allAPIs, ftcr},
	{0x20, "instance-of", Format22c, RefType, allAPIs, ftcr},
	{0x21, "array-length", Format12x, RefNone, allAPIs, ftcr},
	{0x22, "new-instance", Format21c, RefType, allAPIs, ftcr},
	{0x23, "new-array", Format22c, RefType, allAPIs, ftcr},
	{0x24, "filled-new-array", Format35c, RefType, allAPIs, ftcs},
	{0x25, "filled-new-array/range", Format3rc, RefType, allAPIs, ftcs},
	{0x26, "fill-array-data", Format31t, RefNone, allAPIs, fc},
	{0x27, "throw", Format11x, RefNone, allAPIs, CanThrow},
	{0x28, "goto", Format10t, RefNone, allAPIs, 0},
	{0x29, "goto/16", Format20t, RefNone, allAPIs, 0},
	{0x2a, "goto/32", Format30t, RefNone, allAPIs, 0},
	{0x2b, "packed-switch", Format31t, RefNone, allAPIs, fc},
	{0x2c, "sparse-switch", Format31t, RefNone, allAPIs, fc},

	{0x2d, "cmpl-float", Format23x, RefNone, allAPIs, fcr},
	{0x2e, "cmpg-float", Format23x, RefNone, allAPIs, fcr},
	{0x2f, "cmpl-double", Format23x, RefNone, allAPIs, fcr},
	{0x30, "cmpg-double", Format23x, RefNone, allAPIs, fcr},
	{0x31, "cmp-long", Format23x, RefNone, allAPIs, fcr},

	{0x32, "if-eq", Format22t, RefNone, allAPIs, fc},
	{0x33, "if-ne", Format22t, RefNone, allAPIs, fc},
	{0x34, "if-lt", Format22t, RefNone, allAPIs, fc},
	{0x35, "if-ge", Format22t, RefNone, allAPIs, fc},
	{0x36, "if-gt", Format22t, RefNone, allAPIs, fc},
	{0x37, "if-le", Format22t, RefNone, allAPIs, fc},
	{0x38, "if-eqz", Format21t, RefNone, allAPIs, fc},
	{0x39, "if-nez", Format21t, RefNone, allAPIs, fc},
	{0x3a, "if-ltz", Format21t, RefNone, allAPIs, fc},
	{0x3b, "if-gez", Format21t, RefNone, allAPIs, fc},
	{0x3c, "if-gtz", Format21t, RefNone, allAPIs, fc},
	{0x3d, "if-lez", Format21t, RefNone, allAPIs, fc},

	// 0x3e - 0x43 unused

	{0x44, "aget", Format23x, RefNone, allAPIs, ftcr},
	{0x45, "aget-wide", Format23x, RefNone, allAPIs, ftcw},
	{0x46, "aget-object", Format23x, RefNone, allAPIs, ftcr},
	{0x47, "aget-boolean", Format23x, RefNone, allAPIs, ftcr},
	{0x48, "aget-byte", Format23x, RefNone, allAPIs, ftcr},
	{0x49, "aget-char", Format23x, RefNone, allAPIs, ftcr},
	{0x4a, "aget-short", Format23x, RefNone, allAPIs, ftcr},
	{0x4b, "aput", Format23x, RefNone, allAPIs, ftc},
	{0x4c, "aput-wide", Format23x, RefNone, allAPIs, ftc},
	{0x4d, "aput-object", Format23x, RefNone, allAPIs, ftc},
	{0x4e, "aput-boolean", Format23x, RefNone, allAPIs, ftc},
	{0x4f, "aput-byte", Format23x, RefNone, allAPIs, ftc},
	{0x50, "aput-char", Format23x, RefNone, allAPIs, ftc},
	{0x51, "aput-short", Format23x, RefNone, allAPIs, ftc},

	{0x52, "iget", Format22c, RefField, allAPIs, ftcr},
	{0x53, "iget-wide", Format22c, RefField, allAPIs, ftcw},
	{0x54, "iget-object", Format22c, RefField, allAPIs, ftcr},
	{0x55, "iget-boolean", Format22c, RefField, allAPIs, ftcr},
	{0x56, "iget-byte", Format22c, RefField, allAPIs, ftcr},
	{0x57, "iget-char", Format22c, RefField, allAPIs, ftcr},
	{0x58, "iget-short", Format22c, RefField, allAPIs, ftcr},
	{0x59, "iput", Format22c, RefField, allAPIs, ftc},
	{0x5a, "iput-wide", Format22c, RefField, allAPIs, ftc},
	{0x5b, "iput-object", Format22c, RefField, allAPIs, ftc},
	{0x5c, "iput-boolean", Format22c, RefField, allAPIs, ftc},
	{0x5d, "iput-byte", Format22c, RefField, allAPIs, ftc},
	{0x5e, "iput-char", Format22c, RefField, allAPIs, ftc},
	{0x5f, "iput-short", Format22c, RefField, allAPIs, ftc},

	{0x60, "sget", Format21c, RefField, allAPIs, ftcr},
	{0x61, "sget-wide", Format21c, RefField, allAPIs, ftcw},
	{0x62, "sget-object", Format21c, RefField, allAPIs, ftcr},
	{0x63, "sget-boolean", Format21c, RefField, allAPIs, ftcr},
	{0x64, "sget-byte", Format21c, RefField, allAPIs, ftcr},
	{0x65, "sget-char", Format21c, RefField, allAPIs, ftcr},
	{0x66, "sget-short", Format21c, RefField, allAPIs, ftcr},
	{0x67, "sput", Format21c, RefField, allAPIs, ftc},
	{0x68, "sput-wide", Format21c, RefField, allAPIs, ftc},
	{0x69, "sput-object", Format21c, RefField, allAPIs, ftc},
	{0x6a, "sput-boolean", Format21c, RefField, allAPIs, ftc},
	{0x6b, "sput-byte", Format21c, RefField, allAPIs, ftc},
	{0x6c, "sput-char", Format21c, RefField, allAPIs, ftc},
	{0x6d, "sput-short", Format21c, RefField, allAPIs, ftc},

	{0x6e, "invoke-virtual", Format35c, RefMethod, allAPIs, ftcs},
	{0x6f, "invoke-super", Format35c, RefMethod, allAPIs, ftcs},
	{0x70, "invoke-direct", Format35c, RefMethod, allAPIs, ftcs},
	{0x71, "invoke-static", Format35c, RefMethod, allAPIs, ftcs},
	{0x72, "invoke-interface", Format35c, RefMethod, allAPIs, ftcs},

	// ART moved the barrier return here from 0xf1, and dropped the barrier in M
	{0x73, "return-void-barrier", Format10x, RefNone, between(APIL, APILMR1), OdexOnly},
	{0x73, "return-void-no-barrier", Format10x, RefNone, since(APIM), OdexOnly},

	{0x74, "invoke-virtual/range", Format3rc, RefMethod, allAPIs, ftcs},
	{0x75, "invoke-super/range", Format3rc, RefMethod, allAPIs, ftcs},
	{0x76, "invoke-direct/range", Format3rc, RefMethod, allAPIs, ftcs},
	{0x77, "invoke-static/range", Format3rc, RefMethod, allAPIs, ftcs},
	{0x78, "invoke-interface/range", Format3rc, RefMethod, allAPIs, ftcs},

	// 0x79 - 0x7a unused

	{0x7b, "neg-int", Format12x, RefNone, allAPIs, fcr},
	{0x7c, "not-int", Format12x, RefNone, allAPIs, fcr},
	{0x7d, "neg-long", Format12x, RefNone, allAPIs, fcw},
	{0x7e, "not-long", Format12x, RefNone, allAPIs, fcw},
	{0x7f, "neg-float", Format12x, RefNone, allAPIs, fcr},
	{0x80, "neg-double", Format12x, RefNone, allAPIs, fcw},
	{0x81, "int-to-long", Format12x, RefNone, allAPIs, fcw},
	{0x82, "int-to-float", Format12x, RefNone, allAPIs, fcr},
	{0x83, "int-to-double", Format12x, RefNone, allAPIs, fcw},
	{0x84, "long-to-int", Format12x, RefNone, allAPIs, fcr},
	{0x85, "long-to-float", Format12x, RefNone, allAPIs, fcr},
	{0x86, "long-to-double", Format12x, RefNone, allAPIs, fcw},
	{0x87, "float-to-int", Format12x, RefNone, allAPIs, fcr},
	{0x88, "float-to-long", Format12x, RefNone, allAPIs, fcw},
	{0x89, "float-to-double", Format12x, RefNone, allAPIs, fcw},
	{0x8a, "double-to-int", Format12x, RefNone, allAPIs, fcr},
	{0x8b, "double-to-long", Format12x, RefNone, allAPIs, fcw},
	{0x8c, "double-to-float", Format12x, RefNone, allAPIs, fcr},
	{0x8d, "int-to-byte", Format12x, RefNone, allAPIs, fcr},
	{0x8e, "int-to-char", Format12x, RefNone, allAPIs, fcr},
	{0x8f, "int-to-short", Format12x, RefNone, allAPIs, fcr},

	{0x90, "add-int", Format23x, RefNone, allAPIs, fcr},
	{0x91, "sub-int", Format23x, RefNone, allAPIs, fcr},
	{0x92, "mul-int", Format23x, RefNone, allAPIs, fcr},
	{0x93, "div-int", Format23x, RefNone, allAPIs, ftcr},
	{0x94, "rem-int", Format23x, RefNone, allAPIs, ftcr},
	{0x95, "and-int", Format23x, RefNone, allAPIs, fcr},
	{0x96, "or-int", Format23x, RefNone, allAPIs, fcr},
	{0x97, "xor-int", Format23x, RefNone, allAPIs, fcr},
	{0x98, "shl-int", Format23x, RefNone, allAPIs, fcr},
	{0x99, "shr-int", Format23x, RefNone, allAPIs, fcr},
	{0x9a, "ushr-int", Format23x, RefNone, allAPIs, fcr},
	{0x9b, "add-long", Format23x, RefNone, allAPIs, fcw},
	{0x9c, "sub-long", Format23x, RefNone, allAPIs, fcw},
	{0x9d, "mul-long", Format23x, RefNone, allAPIs, fcw},
	{0x9e, "div-long", Format23x, RefNone, allAPIs, ftcw},
	{0x9f, "rem-long", Format23x, RefNone, allAPIs, ftcw},
	{0xa0, "and-long", Format23x, RefNone, allAPIs, fcw},
	{0xa1, "or-long", Format23x, RefNone, allAPIs, fcw},
	{0xa2, "xor-long", Format23x, RefNone, allAPIs, fcw},
	{0xa3, "shl-long", Format23x, RefNone, allAPIs, fcw},
	{0xa4, "shr-long", Format23x, RefNone, allAPIs, fcw},
	{0xa5, "ushr-long", Format23x, RefNone, allAPIs, fcw},
	{0xa6, "add-float", Format23x, RefNone, allAPIs, fcr},
	{0xa7, "sub-float", Format23x, RefNone, allAPIs, fcr},
	{0xa8, "mul-float", Format23x, RefNone, allAPIs, fcr},
	{0xa9, "div-float", Format23x, RefNone, allAPIs, fcr},
	{0xaa, "rem-float", Format23x, RefNone, allAPIs, fcr},
	{0xab, "add-double", Format23x, RefNone, allAPIs, fcw},
	{0xac, "sub-double", Format23x, RefNone, allAPIs, fcw},
	{0xad, "mul-double", Format23x, RefNone, allAPIs, fcw},
	{0xae, "div-double", Format23x, RefNone, allAPIs, fcw},
	{0xaf, "rem-double", Format23x, RefNone, allAPIs, fcw},

	{0xb0, "add-int/2addr", Format12x, RefNone, allAPIs, fcr},
	{0xb1, "sub-int/2addr", Format12x, RefNone, allAPIs, fcr},
	{0xb2, "mul-int/2addr", Format12x, RefNone, allAPIs, fcr},
	{0xb3, "div-int/2addr", Format12x, RefNone, allAPIs, ftcr},
	{0xb4, "rem-int/2addr", Format12x, RefNone, allAPIs, ftcr},
	{0xb5, "and-int/2addr", Format12x, RefNone, allAPIs, fcr},
	{0xb6, "or-int/2addr", Format12x, RefNone, allAPIs, fcr},
	{0xb7, "xor-int/2addr", Format12x, RefNone, allAPIs, fcr},
	{0xb8, "shl-int/2addr", Format12x, RefNone, allAPIs, fcr},
	{0xb9, "shr-int/2addr", Format12x, RefNone, allAPIs, fcr},
	{0xba, "ushr-int/2addr", Format12x, RefNone, allAPIs, fcr},
	{0xbb, "add-long/2addr", Format12x, RefNone, allAPIs, fcw},
	{0xbc, "sub-long/2addr", Format12x, RefNone, allAPIs, fcw},
	{0xbd, "mul-long/2addr", Format12x, RefNone, allAPIs, fcw},
	{0xbe, "div-long/2addr", Format12x, RefNone, allAPIs, ftcw},
	{0xbf, "rem-long/2addr", Format12x, RefNone, allAPIs, ftcw},
	{0xc0, "and-long/2addr", Format12x, RefNone, allAPIs, fcw},
	{0xc1, "or-long/2addr", Format12x, RefNone, allAPIs, fcw},
	{0xc2, "xor-long/2addr", Format12x, RefNone, allAPIs, fcw},
	{0xc3, "shl-long/2addr", Format12x, RefNone, allAPIs, fcw},
	{0xc4, "shr-long/2addr", Format12x, RefNone, allAPIs, fcw},
	{0xc5, "ushr-long/2addr", Format12x, RefNone, allAPIs, fcw},
	{0xc6, "add-float/2addr", Format12x, RefNone, allAPIs, fcr},
	{0xc7, "sub-float/2addr", Format12x, RefNone, allAPIs, fcr},
	{0xc8, "mul-float/2addr", Format12x, RefNone, allAPIs, fcr},
	{0xc9, "div-float/2addr", Format12x, RefNone, allAPIs, fcr},
	{0xca, "rem-float/2addr", Format12x, RefNone, allAPIs, fcr},
	{0xcb, "add-double/2addr", Format12x, RefNone, allAPIs, fcw},
	{0xcc, "sub-double/2addr", Format12x, RefNone, allAPIs, fcw},
	{0xcd, "mul-double/2addr", Format12x, RefNone, allAPIs, fcw},
	{0xce, "div-double/2addr", Format12x, RefNone, allAPIs, fcw},
	{0xcf, "rem-double/2addr", Format12x, RefNone, allAPIs, fcw},

	{0xd0, "add-int/lit16", Format22s, RefNone, allAPIs, fcr},
	{0xd1, "rsub-int", Format22s, RefNone, allAPIs, fcr},
	{0xd2, "mul-int/lit16", Format22s, RefNone, allAPIs, fcr},
	{0xd3, "div-int/lit16", Format22s, RefNone, allAPIs, ftcr},
	{0xd4, "rem-int/lit16", Format22s, RefNone, allAPIs, ftcr},
	{0xd5, "and-int/lit16", Format22s, RefNone, allAPIs, fcr},
	{0xd6, "or-int/lit16", Format22s, RefNone, allAPIs, fcr},
	{0xd7, "xor-int/lit16", Format22s, RefNone, allAPIs, fcr},
	{0xd8, "add-int/lit8", Format22b, RefNone, allAPIs, fcr},
	{0xd9, "rsub-int/lit8", Format22b, RefNone, allAPIs, fcr},
	{0xda, "mul-int/lit8", Format22b, RefNone, allAPIs, fcr},
	{0xdb, "div-int/lit8", Format22b, RefNone, allAPIs, ftcr},
	{0xdc, "rem-int/lit8", Format22b, RefNone, allAPIs, ftcr},
	{0xdd, "and-int/lit8", Format22b, RefNone, allAPIs, fcr},
	{0xde, "or-int/lit8", Format22b, RefNone, allAPIs, fcr},
	{0xdf, "xor-int/lit8", Format22b, RefNone, allAPIs, fcr},
	{0xe0, "shl-int/lit8", Format22b, RefNone, allAPIs, fcr},
	{0xe1, "shr-int/lit8", Format22b, RefNone, allAPIs, fcr},
	{0xe2, "ushr-int/lit8", Format22b, RefNone, allAPIs, fcr},

	// Dalvik odex instructions
	{0xe3, "iget-volatile", Format22c, RefField, between(APIGingerbread, lastDalvikAPI), ftcr | OdexOnly},
	{0xe4, "iput-volatile", Format22c, RefField, between(APIGingerbread, lastDalvikAPI), ftc | OdexOnly},
	{0xe5, "sget-volatile", Format21c, RefField, between(APIGingerbread, lastDalvikAPI), ftcr | OdexOnly},
	{0xe6, "sput-volatile", Format21c, RefField, between(APIGingerbread, lastDalvikAPI), ftc | OdexOnly},
	{0xe7, "iget-object-volatile", Format22c, RefField, between(APIGingerbread, lastDalvikAPI), ftcr | OdexOnly},
	{0xe8, "iget-wide-volatile", Format22c, RefField, between(APIGingerbread, lastDalvikAPI), ftcw | OdexOnly},
	{0xe9, "iput-wide-volatile", Format22c, RefField, between(APIGingerbread, lastDalvikAPI), ftc | OdexOnly},
	{0xea, "sget-wide-volatile", Format21c, RefField, between(APIGingerbread, lastDalvikAPI), ftcw | OdexOnly},
	{0xeb, "sput-wide-volatile", Format21c, RefField, between(APIGingerbread, lastDalvikAPI), ftc | OdexOnly},
	{0xed, "throw-verification-error", Format20bc, RefNone, between(APIEclair, lastDalvikAPI), CanThrow | OdexOnly},
	{0xee, "execute-inline", Format35mi, RefNone, until(lastDalvikAPI), ftcs | OdexOnly},
	{0xef, "execute-inline/range", Format3rmi, RefNone, between(APIFroyo, lastDalvikAPI), ftcs | OdexOnly},
	{0xf0, "invoke-direct-empty", Format35c, RefMethod, until(APIIceCreamSandwich - 1), ftcs | OdexOnly},
	{0xf0, "invoke-object-init/range", Format3rc, RefMethod, between(APIIceCreamSandwich, lastDalvikAPI), ftcs | OdexOnly},
	{0xf1, "return-void-barrier", Format10x, RefNone, between(APIHoneycomb, lastDalvikAPI), OdexOnly},
	{0xf2, "iget-quick", Format22cs, RefNone, until(APILMR1), ftcr | OdexOnly},
	{0xf3, "iget-wide-quick", Format22cs, RefNone, until(APILMR1), ftcw | OdexOnly},
	{0xf4, "iget-object-quick", Format22cs, RefNone, until(APILMR1), ftcr | OdexOnly},
	{0xf5, "iput-quick", Format22cs, RefNone, until(APILMR1), ftc | OdexOnly},
	{0xf6, "iput-wide-quick", Format22cs, RefNone, until(APILMR1), ftc | OdexOnly},
	{0xf7, "iput-object-quick", Format22cs, RefNone, until(APILMR1), ftc | OdexOnly},
	{0xf8, "invoke-virtual-quick", Format35ms, RefNone, until(APILMR1), ftcs | OdexOnly},
	{0xf9, "invoke-virtual-quick/range", Format3rms, RefNone, until(APILMR1), ftcs | OdexOnly},
	{0xfa, "invoke-super-quick", Format35ms, RefNone, until(lastDalvikAPI), ftcs | OdexOnly},
	{0xfb, "invoke-super-quick/range", Format3rms, RefNone, until(lastDalvikAPI), ftcs | OdexOnly},
	{0xfc, "iput-object-volatile", Format22c, RefField, between(APIGingerbread, lastDalvikAPI), ftc | OdexOnly},
	{0xfd, "sget-object-volatile", Format21c, RefField, between(APIGingerbread, lastDalvikAPI), ftcr | OdexOnly},
	{0xfe, "sput-object-volatile", Format21c, RefField, between(APIGingerbread, lastDalvikAPI), ftc | OdexOnly},

	// ART quickened instructions
	{0xe3, "iget-quick", Format22cs, RefNone, since(APIM), ftcr | OdexOnly},
	{0xe4, "iget-wide-quick", Format22cs, RefNone, since(APIM), ftcw | OdexOnly},
	{0xe5, "iget-object-quick", Format22cs, RefNone, since(APIM), ftcr | OdexOnly},
	{0xe6, "iput-quick", Format22cs, RefNone, since(APIM), ftc | OdexOnly},
	{0xe7, "iput-wide-quick", Format22cs, RefNone, since(APIM), ftc | OdexOnly},
	{0xe8, "iput-object-quick", Format22cs, RefNone, since(APIM), ftc | OdexOnly},
	{0xe9, "invoke-virtual-quick", Format35ms, RefNone, since(APIM), ftcs | OdexOnly},
	{0xea, "invoke-virtual-quick/range", Format3rms, RefNone, since(APIM), ftcs | OdexOnly},
	{0xeb, "iput-boolean-quick", Format22cs, RefNone, since(APIM), ftc | OdexOnly},
	{0xec, "iput-byte-quick", Format22cs, RefNone, since(APIM), ftc | OdexOnly},
	{0xed, "iput-char-quick", Format22cs, RefNone, since(APIM), ftc | OdexOnly},
	{0xee, "iput-short-quick", Format22cs, RefNone, since(APIM), ftc | OdexOnly},
	{0xef, "iget-boolean-quick", Format22cs, RefNone, since(APIM), ftcr | OdexOnly},
	{0xf0, "iget-byte-quick", Format22cs, RefNone, since(APIM), ftcr | OdexOnly},
	{0xf1, "iget-char-quick", Format22cs, RefNone, since(APIM), ftcr | OdexOnly},
	{0xf2, "iget-short-quick", Format22cs, RefNone, since(APIM), ftcr | OdexOnly},

	// EXPERIMENTAL. Lambda support was only ever available behind a runtime flag.
	{0xf3, "invoke-lambda", Format25x, RefNone, between(APIN, APINMR1), ftcs | Experimental},
	{0xf5, "capture-variable", Format21c, RefString, between(APIN, APINMR1), ftc | Experimental},
	{0xf6, "create-lambda", Format21c, RefMethod, between(APIN, APINMR1), ftcr | Experimental},
	{0xf7, "liberate-variable", Format22c, RefString, between(APIN, APINMR1), ftcr | Experimental},
	{0xf8, "box-lambda", Format22x, RefNone, between(APIN, APINMR1), ftcr | Experimental},
	{0xf9, "unbox-lambda", Format22c, RefType, between(APIN, APINMR1), ftcr | Experimental},

	{0xfa, "invoke-polymorphic", Format45cc, RefMethod, since(APIO), ftcs},
	{0xfb, "invoke-polymorphic/range", Format4rcc, RefMethod, since(APIO), ftcs},
	{0xfc, "invoke-custom", Format35c, RefCallSite, since(APIO), ftcs},
	{0xfd, "invoke-custom/range", Format3rc, RefCallSite, since(APIO), ftcs},

	{PackedSwitchPayloadValue, "packed-switch-payload", FormatPackedSwitchPayload, RefNone, allAPIs, fc},
	{SparseSwitchPayloadValue, "sparse-switch-payload", FormatSparseSwitchPayload, RefNone, allAPIs, fc},
	{ArrayPayloadValue, "array-payload", FormatArrayPayload, RefNone, allAPIs, fc},
}

// The payload pseudo-opcodes. ByValue resolves their values to these no
// matter the version.
var (
	PackedSwitchPayload *Opcode
	SparseSwitchPayload *Opcode
	ArrayPayload        *Opcode
)

func init() {
	for i := range Catalog {
		op := &Catalog[i]
		if !op.IsPayload() {
			continue
		}
		switch op.Value {
		case PackedSwitchPayloadValue:
			PackedSwitchPayload = op
		case SparseSwitchPayloadValue:
			SparseSwitchPayload = op
		case ArrayPayloadValue:
			ArrayPayload = op
		}
	}
	if PackedSwitchPayload == nil || SparseSwitchPayload == nil || ArrayPayload == nil {
		panic("dalvik: catalog is missing a payload pseudo-opcode")
	}
}
