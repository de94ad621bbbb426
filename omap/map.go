/*
 * golibsnmp index map
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
	"fmt"
	"time"

	"github.com/gosnmp/gosnmp"

	"github.com/netconpro/golibsnmp"
	"github.com/netconpro/golibsnmp/mib"
)

// OMap is a two-way map of index to name, the typical case is ifIndex
// to ifName, but can be anything.
type OMap struct {
	IdxToName map[string]string
	NameToIdx map[string]string
	Oid       golibsnmp.Node // OID used to build the map, e.g.: ifName
	Timestamp time.Time      // When was the map created?
}

// BuildOMap walks the given OID (symbolic or numeric) and builds a
// fresh map from what comes back.
func BuildOMap(w golibsnmp.Walker, oid string) (*OMap, error) {
	m := &OMap{}
	var err error
	m.IdxToName = make(map[string]string)
	m.NameToIdx = make(map[string]string)
	m.Timestamp = time.Now()
	m.Oid, err = mib.Lookup(oid)
	if err != nil {
		return nil, fmt.Errorf("lookup of oid %s failed: %w", oid, err)
	}
	if m.Oid.Numeric == "" {
		return nil, fmt.Errorf("what happened with mib.Lookup? m.Oid: %#v", m.Oid)
	}
	err = w.BulkWalk("."+m.Oid.Numeric, m.walkCB)
	since := time.Since(m.Timestamp).Round(time.Millisecond * 100)
	if err == nil {
		golibsnmp.Debugf("omap built with %d elements in %s", len(m.IdxToName), since.String())
	}
	return m, err
}

func (m *OMap) walkCB(pdu gosnmp.SnmpPDU) error {
	idx := pdu.Name[len(m.Oid.Numeric)+2:]
	var ifN string
	ifN, ok := pdu.Value.(string)
	if !ok {
		ifN = string(pdu.Value.([]byte))
	}
	m.IdxToName[idx] = ifN
	m.NameToIdx[ifN] = idx
	return nil
}
