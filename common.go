/*
 * golibsnmp shared types
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
package golibsnmp

import (
	"github.com/gosnmp/gosnmp"
	"github.com/sleepinggenius2/gosmi/models"
)

// Node is a rendered SMI node, e.g.: the result of a lookup. Usually
// handled by the mib sub-package, but needs to be defined up here to
// avoid circular dependencies.
type Node struct {
	Key       string // original input key, kept for posterity
	Name      string
	Numeric   string
	Qualified string
	Type      *models.Type
	Lookedup  bool // the key was symbolic and had to be resolved
}

// Getter fetches exact OIDs, calling cb once per returned PDU. The
// session sub-package implements it on top of SNMP GET, tests implement
// it with canned data.
type Getter interface {
	Get(oids []string, cb func(pdu gosnmp.SnmpPDU) error) error
}

// Walker walks a subtree, calling cb for each PDU under the given OID.
type Walker interface {
	BulkWalk(oid string, cb func(pdu gosnmp.SnmpPDU) error) error
}

// Client is what the device sub-package needs from an SNMP session.
type Client interface {
	Getter
	Walker
	Close()
}
