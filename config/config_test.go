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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yuanpeiyu/SmaliEx/data/dalvik"
	"github.com/yuanpeiyu/SmaliEx/logging"
	"github.com/yuanpeiyu/SmaliEx/test/partitiontest"
)

func TestDefaultLocal(t *testing.T) {
	partitiontest.PartitionTest(t)

	c := GetDefaultLocal()
	require.NoError(t, c.Validate())
	require.Equal(t, dalvik.DefaultAPILevel, c.APILevel)
	require.False(t, c.Experimental)
	require.Equal(t, logging.Warn, c.LogLevel())
	require.Equal(t, dalvik.Version{API: dalvik.DefaultAPILevel, Oat: 0}, c.DalvikVersion())
}

func TestSaveThenLoad(t *testing.T) {
	partitiontest.PartitionTest(t)

	dir := t.TempDir()
	c1 := GetDefaultLocal()
	c1.APILevel = dalvik.APIN
	c1.Experimental = true
	c1.BaseLoggerDebugLevel = uint32(logging.Debug)
	require.NoError(t, c1.SaveToDisk(dir))

	c2, err := LoadConfigFromDisk(dir)
	require.NoError(t, err)
	require.Equal(t, c1, c2)
	require.Equal(t, dalvik.Version{API: dalvik.APIN, Oat: 79}, c2.DalvikVersion())
}

func TestLoadMissing(t *testing.T) {
	partitiontest.PartitionTest(t)

	c, err := LoadConfigFromDisk(filepath.Join(t.TempDir(), "nothing-here"))
	require.True(t, os.IsNotExist(err))
	require.Equal(t, GetDefaultLocal(), c)
}

func TestMergeConfig(t *testing.T) {
	partitiontest.PartitionTest(t)

	path := filepath.Join(t.TempDir(), ConfigFilename)
	require.NoError(t, os.WriteFile(path, []byte(`{"APILevel": 23, "OatVersion": 88}`), 0644))

	c, err := LoadConfigFromFile(path)
	require.NoError(t, err)
	require.Equal(t, dalvik.APIM, c.APILevel)
	require.Equal(t, dalvik.Version{API: dalvik.APIM, Oat: 88}, c.DalvikVersion())
	// untouched settings keep their defaults
	require.Equal(t, GetDefaultLocal().BaseLoggerDebugLevel, c.BaseLoggerDebugLevel)
	require.Equal(t, GetDefaultLocal().Experimental, c.Experimental)
}

func TestLoadRejectsBadConfig(t *testing.T) {
	partitiontest.PartitionTest(t)

	dir := t.TempDir()
	cases := map[string]string{
		"unknown field": `{"APILevel": 23, "Colour": "blue"}`,
		"api too big":   `{"APILevel": 70000}`,
		"negative oat":  `{"OatVersion": -1}`,
		"log level":     `{"BaseLoggerDebugLevel": 9}`,
		"not json":      `APILevel=23`,
	}
	for name, body := range cases {
		path := filepath.Join(dir, name+".json")
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))
		c, err := LoadConfigFromFile(path)
		require.Error(t, err, name)
		require.Equal(t, GetDefaultLocal(), c, name)
	}
}

func TestFormatVersion(t *testing.T) {
	partitiontest.PartitionTest(t)

	v := GetCurrentVersion()
	require.Equal(t, VersionMajor, v.Major)
	require.Equal(t, VersionMinor, v.Minor)
	require.Contains(t, FormatVersion(), v.String())
	require.Equal(t, 0, convertToInt(""))
	require.Equal(t, 42, convertToInt("42"))
}
