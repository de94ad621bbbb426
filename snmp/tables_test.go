/*
 * golibsnmp value table tests
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

package snmp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/netconpro/golibsnmp/snmp"
)

func TestIfTypeName(t *testing.T) {
	assert.Equal(t, "ethernet-csmacd", snmp.IfTypeName(6))
	assert.Equal(t, "softwareLoopback", snmp.IfTypeName(24))
	assert.Equal(t, "voiceEM", snmp.IfTypeName(100))
	assert.Equal(t, "type-161", snmp.IfTypeName(161))
	assert.Equal(t, "type-0", snmp.IfTypeName(0))
}

func TestStateNames(t *testing.T) {
	assert.Equal(t, "up", snmp.AdminStateName(1))
	assert.Equal(t, "down", snmp.AdminStateName(2))
	assert.Equal(t, "testing", snmp.AdminStateName(3))
	assert.Equal(t, "state-4", snmp.AdminStateName(4))

	assert.Equal(t, "up", snmp.OperStateName(1))
	assert.Equal(t, "down", snmp.OperStateName(2))
	assert.Equal(t, "notPresent", snmp.OperStateName(6))
	assert.Equal(t, "lowerLayerDown", snmp.OperStateName(7))
	assert.Equal(t, "state-0", snmp.OperStateName(0))
}

func TestOidShape(t *testing.T) {
	// Scalars carry the instance, columns do not.
	assert.Equal(t, ".1.3.6.1.2.1.1.5.0", snmp.OIDSysName)
	assert.Equal(t, ".1.3.6.1.2.1.2.2.1.1", snmp.OIDIfIndex)
	assert.Equal(t, ".1.3.6.1.2.1.31.1.1.1.1", snmp.OIDIfName)
}
