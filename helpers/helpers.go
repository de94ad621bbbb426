/*
 * golibsnmp helpers
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

// Package helpers holds the small conversion and validation functions
// used across the project: octet/bit juggling, MAC rendering and
// bandwidth formatting.
package helpers

import (
	"encoding/hex"
	"math"
	"net"
	"strings"
)

const (
	kilo = 1024
	mega = 1024 * 1024
	giga = 1024 * 1024 * 1024
)

// Bits converts octets to bits. An octet is really just a fancy name
// for a byte.
func Bits(octets uint64) uint64 {
	return octets * 8
}

// MacFromOctets renders a raw ifPhysAddress octet string as a MAC
// address. ":" and "-" group by two hex digits, "." by four
// (AABB.CCDD.EEFF). An empty octet string renders as "".
func MacFromOctets(octets []byte, delimiter string) string {
	if len(octets) == 0 {
		return ""
	}
	step := 2
	if delimiter == "." {
		step = 4
	}
	mac := strings.ToUpper(hex.EncodeToString(octets))
	groups := make([]string, 0, len(mac)/step+1)
	for i := 0; i < len(mac); i += step {
		end := i + step
		if end > len(mac) {
			end = len(mac)
		}
		groups = append(groups, mac[i:end])
	}
	return strings.Join(groups, delimiter)
}

// Speed scales a bit/s value to the unit Unit() picks for it, rounded
// to one decimal. Values below 1 Kbit/s are returned as-is.
func Speed(bits uint64) float64 {
	b := float64(bits)
	switch {
	case bits >= giga:
		return math.Round(b/giga*10) / 10
	case bits >= mega:
		return math.Round(b/mega*10) / 10
	case bits >= kilo:
		return math.Round(b/kilo*10) / 10
	default:
		return b
	}
}

// Unit returns the unit matching what Speed() scales to.
func Unit(bits uint64) string {
	switch {
	case bits >= giga:
		return "Gbits/s"
	case bits >= mega:
		return "Mbits/s"
	case bits >= kilo:
		return "Kbits/s"
	default:
		return "Bits/s"
	}
}

// IsIPAddress reports whether s is an IPv4 address literal.
func IsIPAddress(s string) bool {
	ip := net.ParseIP(strings.TrimSpace(s))
	return ip != nil && ip.To4() != nil
}

// IsPortNumber reports whether p is a usable port number.
func IsPortNumber(p int) bool {
	return p > 0 && p <= 65535
}
