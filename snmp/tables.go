/*
 * golibsnmp IF-MIB value tables
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

package snmp

import "fmt"

// AdminStates maps ifAdminStatus values. The testing(3) state
// indicates that no operational packets can be passed.
var AdminStates = map[int]string{
	1: "up",
	2: "down",
	3: "testing",
}

// OperStates maps ifOperStatus values.
var OperStates = map[int]string{
	1: "up",
	2: "down",
	3: "testing",
	4: "unknown",
	5: "dormant",
	6: "notPresent",
	7: "lowerLayerDown",
}

// IfTypes maps the IANAifType values we care about to their names. The
// registry goes on past 300, but anything beyond voiceEM is exotic
// enough that rendering the raw number is fine.
var IfTypes = map[int]string{
	1:   "other",
	2:   "regular1822",
	3:   "hdh1822",
	4:   "ddn-x25",
	5:   "rfc877-x25",
	6:   "ethernet-csmacd",
	7:   "iso88023-csmacd",
	8:   "iso88024-tokenBus",
	9:   "iso88025-tokenRing",
	10:  "iso88026-man",
	11:  "starLan",
	12:  "proteon-10Mbit",
	13:  "proteon-80Mbit",
	14:  "hyperchannel",
	15:  "fddi",
	16:  "lapb",
	17:  "sdlc",
	18:  "ds1",
	19:  "e1",
	20:  "basicISDN",
	21:  "primaryISDN",
	22:  "propPointToPointSerial",
	23:  "ppp",
	24:  "softwareLoopback",
	25:  "eon",
	26:  "ethernet-3Mbit",
	27:  "nsip",
	28:  "slip",
	29:  "ultra",
	30:  "ds3",
	31:  "sip",
	32:  "frame-relay",
	33:  "rs232",
	34:  "para",
	35:  "arcnet",
	36:  "arcnetPlus",
	37:  "atm",
	38:  "miox25",
	39:  "sonet",
	40:  "x25ple",
	41:  "iso88022llc",
	42:  "localTalk",
	43:  "smdsDxi",
	44:  "frameRelayService",
	45:  "v35",
	46:  "hssi",
	47:  "hippi",
	48:  "modem",
	49:  "aal5",
	50:  "sonetPath",
	51:  "sonetVT",
	52:  "smdsIcip",
	53:  "propVirtual",
	54:  "propMultiplexor",
	55:  "ieee80212",
	56:  "fibreChannel",
	57:  "hippiInterface",
	58:  "frameRelayInterconnect",
	59:  "aflane8023",
	60:  "aflane8025",
	61:  "cctEmul",
	62:  "fastEther",
	63:  "isdn",
	64:  "v11",
	65:  "v36",
	66:  "g703at64k",
	67:  "g703at2mb",
	68:  "qllc",
	69:  "fastEtherFX",
	70:  "channel",
	71:  "ieee80211",
	72:  "ibm370parChan",
	73:  "escon",
	74:  "dlsw",
	75:  "isdns",
	76:  "isdnu",
	77:  "lapd",
	78:  "ipSwitch",
	79:  "rsrb",
	80:  "atmLogical",
	81:  "ds0",
	82:  "ds0Bundle",
	83:  "bsc",
	84:  "async",
	85:  "cnr",
	86:  "iso88025Dtr",
	87:  "eplrs",
	88:  "arap",
	89:  "propCnls",
	90:  "hostPad",
	91:  "termPad",
	92:  "frameRelayMPI",
	93:  "x213",
	94:  "adsl",
	95:  "radsl",
	96:  "sdsl",
	97:  "vdsl",
	98:  "iso88025CRFPInt",
	99:  "myrinet",
	100: "voiceEM",
}

// IfTypeName renders an IANAifType value, falling back to the raw
// number for types outside the table.
func IfTypeName(t int) string {
	if name, ok := IfTypes[t]; ok {
		return name
	}
	return fmt.Sprintf("type-%d", t)
}

// AdminStateName renders an ifAdminStatus value.
func AdminStateName(s int) string {
	if name, ok := AdminStates[s]; ok {
		return name
	}
	return fmt.Sprintf("state-%d", s)
}

// OperStateName renders an ifOperStatus value.
func OperStateName(s int) string {
	if name, ok := OperStates[s]; ok {
		return name
	}
	return fmt.Sprintf("state-%d", s)
}
