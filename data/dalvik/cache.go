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
	"github.com/algorand/go-deadlock"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/yuanpeiyu/SmaliEx/logging"
)

var opcodeTablesBuilt = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "dalvik_opcode_tables_built_total",
	Help: "Number of per-version opcode tables built from the catalog",
}, []string{"experimental"})

func init() {
	prometheus.MustRegister(opcodeTablesBuilt)
}

type tableKey struct {
	version      Version
	experimental bool
}

// tableCache shares built Opcodes between callers asking for the same
// version. Opcodes never change after BuildOpcodes returns, so only the map
// needs the lock.
type tableCache struct {
	mu     deadlock.Mutex
	tables map[tableKey]*Opcodes
	log    logging.Logger
}

func makeTableCache(log logging.Logger) *tableCache {
	return &tableCache{
		tables: make(map[tableKey]*Opcodes),
		log:    log,
	}
}

func (c *tableCache) get(v Version, experimental bool) *Opcodes {
	key := tableKey{v, experimental}

	c.mu.Lock()
	defer c.mu.Unlock()
	if ops, ok := c.tables[key]; ok {
		return ops
	}
	ops := BuildOpcodes(v, experimental, Catalog)
	c.tables[key] = ops

	label := "false"
	if experimental {
		label = "true"
	}
	opcodeTablesBuilt.WithLabelValues(label).Inc()
	c.log.With("api", v.API).With("oat", v.Oat).With("experimental", experimental).
		Debugf("built opcode table with %d opcodes", ops.Len())
	return ops
}

func (c *tableCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tables)
}

var defaultTables = makeTableCache(logging.Base())

// ForVersion returns the shared opcode tables for v, building them on first
// use. Callers must not modify the result.
func ForVersion(v Version, experimental bool) *Opcodes {
	return defaultTables.get(v, experimental)
}

// ForPackedVersion is ForVersion(ResolveVersion(packed), experimental).
func ForPackedVersion(packed uint32, experimental bool) *Opcodes {
	return ForVersion(ResolveVersion(packed), experimental)
}
