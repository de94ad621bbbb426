/*
 * golibsnmp inventory
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
Package inventory deals with inventory locking and credentials.

Credentials come from the per-host overrides in the config file, with
the configured defaults as fallback. The lock prevents two workers from
hammering the same target at the same time.
*/
package inventory

import (
	"fmt"
	"sync"

	"github.com/netconpro/golibsnmp"
)

var targets sync.Map

type Host struct {
	Address   string
	Community string
	Port      uint16
	Version   int
}

// LockHost acquires a host-level lock and relevant credentials. Must
// call h.Unlock() when done.
func LockHost(t string) (Host, error) {
	h := Host{}
	_, loaded := targets.LoadOrStore(t, 1)
	if loaded {
		return h, fmt.Errorf("target still locked, refusing to start more runs")
	}
	h.Address = t
	h.Community = golibsnmp.Config.DefaultCommunity
	h.Port = golibsnmp.Config.DefaultPort
	h.Version = golibsnmp.Config.DefaultVersion
	if hc, ok := golibsnmp.Config.Hosts[t]; ok {
		if hc.Community != "" {
			h.Community = hc.Community
		}
		if hc.Port != 0 {
			h.Port = hc.Port
		}
		if hc.Version != 0 {
			h.Version = hc.Version
		}
	}
	return h, nil
}

// Unlock releases the host-level lock.
func (h *Host) Unlock() {
	targets.Delete(h.Address)
}
