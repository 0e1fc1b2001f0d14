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
	"bytes"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/yuanpeiyu/SmaliEx/logging"
	"github.com/yuanpeiyu/SmaliEx/test/partitiontest"
)

func TestTableCacheSharesTables(t *testing.T) {
	partitiontest.PartitionTest(t)
	a := require.New(t)

	c := makeTableCache(logging.TestingLog(t))
	m := c.get(VersionForAPI(APIM), false)
	a.Same(m, c.get(VersionForAPI(APIM), false))
	a.NotSame(m, c.get(VersionForAPI(APIM), true))
	a.NotSame(m, c.get(MakeVersion(APIM, 88), false))
	a.Equal(3, c.len())
}

func TestTableCacheLogsBuilds(t *testing.T) {
	partitiontest.PartitionTest(t)

	var buf bytes.Buffer
	log := logging.NewLogger()
	log.SetOutput(&buf)
	log.SetLevel(logging.Debug)

	c := makeTableCache(log)
	ops := c.get(VersionForAPI(APIN), true)
	require.Contains(t, buf.String(), "built opcode table")
	require.Contains(t, buf.String(), "api=24")
	require.Contains(t, buf.String(), "oat=79")
	require.Contains(t, buf.String(), "experimental=true")

	buf.Reset()
	require.Same(t, ops, c.get(VersionForAPI(APIN), true))
	require.Empty(t, buf.String())
}

func TestTableCacheCountsBuilds(t *testing.T) {
	partitiontest.PartitionTest(t)

	before := testutil.ToFloat64(opcodeTablesBuilt.WithLabelValues("false"))
	c := makeTableCache(logging.TestingLog(t))
	c.get(VersionForAPI(APIJellyBean), false)
	c.get(VersionForAPI(APIJellyBean), false)
	c.get(VersionForAPI(APIKitKat), false)
	after := testutil.ToFloat64(opcodeTablesBuilt.WithLabelValues("false"))
	require.GreaterOrEqual(t, after-before, float64(2))
}

func TestForVersionConcurrent(t *testing.T) {
	partitiontest.PartitionTest(t)

	const workers = 16
	results := make([]*Opcodes, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = ForPackedVersion(uint32(APILMR1), false)
		}(i)
	}
	wg.Wait()

	for _, ops := range results {
		require.Same(t, results[0], ops)
	}
	require.Equal(t, Version{API: APILMR1, Oat: 45}, results[0].Version)
	require.Equal(t, "return-void-barrier", results[0].ByValue(0x73).Name)
	require.Same(t, results[0], ForVersion(VersionForAPI(APILMR1), false))
}

func TestCachedTablesMatchFreshBuilds(t *testing.T) {
	partitiontest.PartitionTest(t)

	for _, api := range apiLevelsUnderTest() {
		for _, exp := range []bool{false, true} {
			cached := ForVersion(VersionForAPI(api), exp)
			fresh := OpcodesForAPI(api, exp)
			if diff := cmp.Diff(fresh.All(), cached.All()); diff != "" {
				t.Errorf("api %d experimental=%v: cached table differs (-fresh +cached):\n%s", api, exp, diff)
			}
		}
	}
}
