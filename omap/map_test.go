/*
 * golibsnmp index map tests
 *
 * Copyright (c) 2024 Netcon Pro
 * Author(s):
 *  - Abdul Zagirov <zagirovaa@netcon.pro>
 *
 * This library is free software; you can redistribute it and/or
 * modify it under the terms of the GNU Lesser General Public
 * License as published by the Free Software Foundation; either
 * version 2.1 of the License, or (at your option) any later version.
 *
 * This library is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
 * Lesser General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public
 * License along with this library; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA
 * 02110-1301  USA
 */

package omap

import (
	"testing"

	"github.com/gosnmp/gosnmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netconpro/golibsnmp"
)

// ifName column, sans leading dot, as mib.Lookup would render it.
const ifNameNumeric = "1.3.6.1.2.1.31.1.1.1.1"

func testMap() *OMap {
	m := &OMap{
		IdxToName: make(map[string]string),
		NameToIdx: make(map[string]string),
		Oid:       golibsnmp.Node{Name: "ifName", Numeric: ifNameNumeric},
	}
	return m
}

func TestWalkCB(t *testing.T) {
	m := testMap()
	pdus := []gosnmp.SnmpPDU{
		{Name: "." + ifNameNumeric + ".1", Value: "ge-0/0/0"},
		{Name: "." + ifNameNumeric + ".2", Value: []byte("ge-0/0/1")},
		{Name: "." + ifNameNumeric + ".531", Value: "lo0"},
	}
	for _, pdu := range pdus {
		require.NoError(t, m.walkCB(pdu))
	}
	assert.Equal(t, "ge-0/0/0", m.IdxToName["1"])
	assert.Equal(t, "ge-0/0/1", m.IdxToName["2"])
	assert.Equal(t, "lo0", m.IdxToName["531"])
	assert.Equal(t, "1", m.NameToIdx["ge-0/0/0"])
	assert.Equal(t, "531", m.NameToIdx["lo0"])
	assert.Len(t, m.IdxToName, 3)
	assert.Len(t, m.NameToIdx, 3)
}

func TestWalkCBOverwrite(t *testing.T) {
	m := testMap()
	require.NoError(t, m.walkCB(gosnmp.SnmpPDU{Name: "." + ifNameNumeric + ".1", Value: "xe-0/0/0"}))
	require.NoError(t, m.walkCB(gosnmp.SnmpPDU{Name: "." + ifNameNumeric + ".1", Value: "xe-0/0/0"}))
	assert.Len(t, m.IdxToName, 1)
	assert.Equal(t, "1", m.NameToIdx["xe-0/0/0"])
}
