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
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yuanpeiyu/SmaliEx/test/partitiontest"
)

func TestCatalogHasNoOverlappingCollisions(t *testing.T) {
	partitiontest.PartitionTest(t)

	for i := range Catalog {
		for j := i + 1; j < len(Catalog); j++ {
			a, b := &Catalog[i], &Catalog[j]
			if !a.APIs.Overlaps(b.APIs) {
				continue
			}
			require.NotEqual(t, a.Value, b.Value, "%s and %s", a.Name, b.Name)
			require.NotEqual(t, strings.ToLower(a.Name), strings.ToLower(b.Name), "0x%02x and 0x%02x", a.Value, b.Value)
		}
	}
}

func TestCatalogBuildsAtEveryLevel(t *testing.T) {
	partitiontest.PartitionTest(t)

	for _, api := range apiLevelsUnderTest() {
		require.NotPanics(t, func() {
			OpcodesForAPI(api, false)
			OpcodesForAPI(api, true)
		}, "api %d", api)
	}
}

func TestCatalogEntries(t *testing.T) {
	partitiontest.PartitionTest(t)

	payloads := 0
	for i := range Catalog {
		op := &Catalog[i]
		require.NotEmpty(t, op.Name)
		require.LessOrEqual(t, op.MinAPI(), op.MaxAPI(), op.Name)
		require.Less(t, op.Format, invalidFormat, op.Name)
		if op.IsPayload() {
			payloads++
			require.GreaterOrEqual(t, op.Value, 0x100, op.Name)
			require.Equal(t, -1, op.Format.Size(), op.Name)
			continue
		}
		require.GreaterOrEqual(t, op.Value, 0, op.Name)
		require.Less(t, op.Value, 256, op.Name)
		require.Greater(t, op.Format.Size(), 0, op.Name)
		if op.IsExperimental() {
			require.Greater(t, op.MinAPI(), APIM, op.Name)
		}
	}
	require.Equal(t, 3, payloads)
}

func TestPayloadOpcodes(t *testing.T) {
	partitiontest.PartitionTest(t)

	require.Equal(t, "packed-switch-payload", PackedSwitchPayload.Name)
	require.Equal(t, FormatPackedSwitchPayload, PackedSwitchPayload.Format)
	require.Equal(t, "sparse-switch-payload", SparseSwitchPayload.Name)
	require.Equal(t, FormatSparseSwitchPayload, SparseSwitchPayload.Format)
	require.Equal(t, "array-payload", ArrayPayload.Name)
	require.Equal(t, FormatArrayPayload, ArrayPayload.Format)
	for _, op := range []*Opcode{PackedSwitchPayload, SparseSwitchPayload, ArrayPayload} {
		require.True(t, op.IsPayload())
		require.True(t, op.Supports(0))
		require.True(t, op.Supports(MaxAPILevel))
	}
}

func TestOpcodeFlags(t *testing.T) {
	partitiontest.PartitionTest(t)
	a := require.New(t)

	ops := OpcodesForAPI(APIM, false)

	divLong := ops.ByName("div-long")
	a.True(divLong.CanThrow())
	a.True(divLong.CanContinue())
	a.True(divLong.SetsRegister())
	a.True(divLong.SetsWideRegister())
	a.False(divLong.SetsResult())

	invoke := ops.ByName("invoke-static")
	a.True(invoke.SetsResult())
	a.Equal(RefMethod, invoke.Reference)
	a.Equal("method", invoke.Reference.String())

	ret := ops.ByName("return-void")
	a.False(ret.CanContinue())
	a.False(ret.CanThrow())

	a.True(ops.ByName("iget-quick").OdexOnly())
	a.False(ops.ByName("iget").OdexOnly())
	a.Equal("iget", ops.ByName("iget").String())
}

func TestFormats(t *testing.T) {
	partitiontest.PartitionTest(t)

	require.Equal(t, "Format10x", Format10x.String())
	require.Equal(t, "Format3rc", Format3rc.String())
	require.Equal(t, 2, Format10x.Size())
	require.Equal(t, 6, Format35c.Size())
	require.Equal(t, 10, Format51l.Size())
	require.False(t, Format31t.IsPayload())
	require.True(t, FormatArrayPayload.IsPayload())
	require.Equal(t, "Formatinvalid", invalidFormat.String())
	require.Equal(t, -1, invalidFormat.Size())
}

func TestAPIRange(t *testing.T) {
	partitiontest.PartitionTest(t)

	r := between(APIL, APIM)
	require.True(t, r.Contains(APIL))
	require.True(t, r.Contains(APIM))
	require.False(t, r.Contains(APIN))
	require.False(t, r.Contains(APIKitKat))
	require.True(t, r.Overlaps(since(APIM)))
	require.False(t, r.Overlaps(since(APIN)))
	require.True(t, r.Overlaps(until(APIL)))
	require.False(t, r.Overlaps(until(APIKitKatWatch)))
}

func TestParseAPILevel(t *testing.T) {
	partitiontest.PartitionTest(t)

	cases := map[string]int{
		"23":     23,
		" 15 ":   15,
		"M":      APIM,
		"l_mr1":  APILMR1,
		"KitKat": APIKitKat,
		"0":      0,
		"65535":  MaxAPILevel,
	}
	for in, want := range cases {
		api, err := ParseAPILevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, api, in)
	}

	for _, in := range []string{"", "-1", "65536", "Z", "marshmallow"} {
		_, err := ParseAPILevel(in)
		require.Error(t, err, in)
	}

	require.Equal(t, "M", ReleaseName(APIM))
	require.Equal(t, "", ReleaseName(DefaultAPILevel))
}
