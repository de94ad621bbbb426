/*
 * golibsnmp well-known OIDs
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

// Package snmp holds the well-known OIDs and value tables the device
// sub-package works with. Everything in here is static data straight
// out of SNMPv2-MIB and IF-MIB, so the device layer works without any
// MIB files on disk.
package snmp

// SNMPv2-MIB system group (1.3.6.1.2.1.1), scalars.
const (
	OIDSysDescr    = ".1.3.6.1.2.1.1.1.0"
	OIDSysUpTime   = ".1.3.6.1.2.1.1.3.0"
	OIDSysContact  = ".1.3.6.1.2.1.1.4.0"
	OIDSysName     = ".1.3.6.1.2.1.1.5.0"
	OIDSysLocation = ".1.3.6.1.2.1.1.6.0"
)

// IF-MIB ifNumber, scalar.
const OIDIfNumber = ".1.3.6.1.2.1.2.1.0"

// IF-MIB ifTable columns (1.3.6.1.2.1.2.2.1). These are column
// prefixes, append ".<ifIndex>" to address a specific interface.
const (
	OIDIfIndex           = ".1.3.6.1.2.1.2.2.1.1"
	OIDIfDescr           = ".1.3.6.1.2.1.2.2.1.2"
	OIDIfType            = ".1.3.6.1.2.1.2.2.1.3"
	OIDIfMtu             = ".1.3.6.1.2.1.2.2.1.4"
	OIDIfSpeed           = ".1.3.6.1.2.1.2.2.1.5"
	OIDIfPhysAddress     = ".1.3.6.1.2.1.2.2.1.6"
	OIDIfAdminStatus     = ".1.3.6.1.2.1.2.2.1.7"
	OIDIfOperStatus      = ".1.3.6.1.2.1.2.2.1.8"
	OIDIfLastChange      = ".1.3.6.1.2.1.2.2.1.9"
	OIDIfInOctets        = ".1.3.6.1.2.1.2.2.1.10"
	OIDIfInUcastPkts     = ".1.3.6.1.2.1.2.2.1.11"
	OIDIfInNUcastPkts    = ".1.3.6.1.2.1.2.2.1.12"
	OIDIfInDiscards      = ".1.3.6.1.2.1.2.2.1.13"
	OIDIfInErrors        = ".1.3.6.1.2.1.2.2.1.14"
	OIDIfInUnknownProtos = ".1.3.6.1.2.1.2.2.1.15"
	OIDIfOutOctets       = ".1.3.6.1.2.1.2.2.1.16"
	OIDIfOutUcastPkts    = ".1.3.6.1.2.1.2.2.1.17"
	OIDIfOutNUcastPkts   = ".1.3.6.1.2.1.2.2.1.18"
	OIDIfOutDiscards     = ".1.3.6.1.2.1.2.2.1.19"
	OIDIfOutErrors       = ".1.3.6.1.2.1.2.2.1.20"
)

// IF-MIB ifXTable columns (1.3.6.1.2.1.31.1.1.1). ifName is what the
// omap sub-package builds index maps from by default, the rest are the
// 64-bit versions of the multicast/broadcast counters.
const (
	OIDIfName             = ".1.3.6.1.2.1.31.1.1.1.1"
	OIDIfInMulticastPkts  = ".1.3.6.1.2.1.31.1.1.1.2"
	OIDIfInBroadcastPkts  = ".1.3.6.1.2.1.31.1.1.1.3"
	OIDIfOutMulticastPkts = ".1.3.6.1.2.1.31.1.1.1.4"
	OIDIfOutBroadcastPkts = ".1.3.6.1.2.1.31.1.1.1.5"
)
