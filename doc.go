/*
 * golibsnmp documentation-dummy
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

/*
Package golibsnmp is a library and toolset for working with network
devices over SNMP v1 and v2c.

The device sub-package models a single SNMP-enabled device and exposes
the usual system-group and interface-table data. On top of that sits a
poller daemon which consumes polling orders from a broker and reports
the results using Skogul.

This root package holds configuration, logging and the handful of types
that are shared between sub-packages.
*/
package golibsnmp
