/*
 * golibsnmp snmp session
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

// Package session wraps gosnmp into the small Get/BulkWalk surface the
// rest of the project needs. A Session is tied to one target and is
// not safe for concurrent use.
package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/gosnmp/gosnmp"

	"github.com/netconpro/golibsnmp"
)

// maxOidsPerRequest is how many OIDs we stuff into a single GET before
// splitting into multiple requests. Some devices choke well before
// gosnmp.MaxOids.
const maxOidsPerRequest = 50

type Session struct {
	S         *gosnmp.GoSNMP
	Target    string
	Community string
	Port      uint16
	Version   gosnmp.SnmpVersion
}

// NewSession dials the target. Blank community, zero port and zero
// version mean the configured defaults.
func NewSession(target string, community string, port uint16, version int) (*Session, error) {
	s := Session{
		Target:    target,
		Community: community,
	}
	if s.Community == "" {
		s.Community = golibsnmp.Config.DefaultCommunity
	}
	s.Port = port
	if s.Port == 0 {
		s.Port = golibsnmp.Config.DefaultPort
	}
	if version == 0 {
		version = golibsnmp.Config.DefaultVersion
	}
	switch version {
	case 1:
		s.Version = gosnmp.Version1
	case 2:
		s.Version = gosnmp.Version2c
	default:
		return nil, fmt.Errorf("unsupported snmp version %d", version)
	}
	if err := s.init(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Session) init() error {
	gs := gosnmp.GoSNMP{
		Target:             s.Target,
		Port:               s.Port,
		Transport:          "udp",
		Community:          s.Community,
		Version:            s.Version,
		Timeout:            time.Duration(3) * time.Second,
		Retries:            1,
		ExponentialTimeout: true,
		MaxOids:            gosnmp.MaxOids,
	}
	err := gs.Connect()
	if err != nil {
		return fmt.Errorf("snmp connect: %w", err)
	}
	s.S = &gs
	return nil
}

// Close drops the underlying UDP connection.
func (s *Session) Close() {
	s.S.Conn.Close()
}

// Get uses SNMP GET to fetch precise OIDs, calling cb once per
// returned PDU. It will split into multiple requests if there are more
// OIDs than a single request comfortably carries.
func (s *Session) Get(oids []string, cb func(pdu gosnmp.SnmpPDU) error) error {
	if len(oids) < 1 {
		return fmt.Errorf("refusing to carry out GET for 0 oids")
	}
	for _, oid := range oids {
		if oid == "" || oid == "." {
			return fmt.Errorf("corrupt oid-list, blank oid among %d requested", len(oids))
		}
	}
	runs := 0
	for i := 0; i < len(oids); i += maxOidsPerRequest {
		end := i + maxOidsPerRequest
		if end > len(oids) {
			end = len(oids)
		}
		if err := s.get(oids[i:end], cb); err != nil {
			return fmt.Errorf("oid get failed: %w", err)
		}
		runs++
	}
	golibsnmp.Debugf("run for %d oids finished in %d iterations", len(oids), runs)
	return nil
}

func (s *Session) get(oids []string, cb func(pdu gosnmp.SnmpPDU) error) error {
	result, err := s.S.Get(oids)
	if err != nil {
		return fmt.Errorf("Get failed: %w", err)
	}
	if result.Error != gosnmp.NoError {
		return fmt.Errorf("response error: %s", result.Error)
	}
	for _, pdu := range result.Variables {
		if pdu.Type == gosnmp.EndOfMibView {
			return fmt.Errorf("issues with pdu (oids: %v), type: %v, pdu: %v", oids, pdu.Type, pdu)
		} else if pdu.Type == gosnmp.NoSuchObject || pdu.Type == gosnmp.NoSuchInstance {
			golibsnmp.Debugf("got no such object/no such instance when looking for oid. Ignoring. pdu: %v", pdu)
			continue
		}
		found := false
		for _, o := range oids {
			if strings.HasPrefix(pdu.Name, o) {
				found = true
				break
			}
		}
		if !found {
			golibsnmp.Logf("Invalid pdu returned? WAT: %s", pdu.Name)
			continue
		}
		if err := cb(pdu); err != nil {
			return fmt.Errorf("callback returned error: %w", err)
		}
	}
	return nil
}

// BulkWalk uses SNMP GetBulk to fetch everything under a subtree,
// calling cb for each PDU received. Running off the end of the MIB
// ends the walk, it is not an error.
func (s *Session) BulkWalk(oid string, cb func(pdu gosnmp.SnmpPDU) error) error {
	if oid == "" || oid == "." {
		return fmt.Errorf("refusing to walk blank oid")
	}
	root := oid
	current := oid
	iterations := 0
	misses := 0
	hits := 0
	for current != "" {
		iterations++
		result, err := s.S.GetBulk([]string{current}, 0, 10)
		if err != nil {
			return fmt.Errorf("GetBulk failed after %d iterations: %w", iterations, err)
		}
		if result.Error != gosnmp.NoError {
			return fmt.Errorf("response error: %s", result.Error)
		}
		current = ""
		for _, pdu := range result.Variables {
			if pdu.Type == gosnmp.EndOfMibView {
				golibsnmp.Debugf("walk of %s hit end of mib view", root)
				return nil
			}
			if pdu.Type == gosnmp.NoSuchObject || pdu.Type == gosnmp.NoSuchInstance {
				return fmt.Errorf("walk issues with pdu, type: %v", pdu.Type)
			}
			if !strings.HasPrefix(pdu.Name, root+".") {
				misses++
				continue
			}
			if err := cb(pdu); err != nil {
				return fmt.Errorf("callback returned error: %w", err)
			}
			hits++
			current = pdu.Name
		}
	}
	golibsnmp.Debugf("BulkWalk for %s done in %d iterations with %d misses and %d hits", root, iterations, misses, hits)
	return nil
}
