/*
 * golibsnmp device
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
Package device models a single SNMP-enabled network device.

Construct a Device with New, point it at a target and Connect. Connect
populates the system-group fields (name, description, contact,
location, uptime) along with the interface index list, after which the
per-interface accessors can be used. EnableAutoUpdate keeps the cached
fields fresh in the background.

SNMP v1 and v2c are supported.
*/
package device

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/gosnmp/gosnmp"

	"github.com/netconpro/golibsnmp"
	"github.com/netconpro/golibsnmp/helpers"
	"github.com/netconpro/golibsnmp/session"
	"github.com/netconpro/golibsnmp/snmp"
)

// speedCoefficient is the interface speed scale: ifSpeed reports bit/s
// and anything above this is rendered in Mb/s.
const speedCoefficient = 1000000

var (
	ErrNotConnected     = errors.New("device not connected")
	ErrUnknownInterface = errors.New("no such interface")
	ErrNoValue          = errors.New("no value returned for oid")
)

// Delimiters allowed in a rendered MAC address.
var macDelimiters = map[string]bool{
	":": true,
	"-": true,
	".": true,
}

type Device struct {
	mu        sync.RWMutex
	address   string
	community string
	port      uint16
	version   int
	client    golibsnmp.Client
	repeat    *helpers.Interval

	name        string
	description string
	contact     string
	location    string
	uptime      time.Duration
	ifNumber    int
	indexes     []int
	types       []string
	updateEvery time.Duration
}

// New returns an unconnected device with the configured default
// community, port and version. The address must be an IPv4 address.
func New(address string) (*Device, error) {
	d := &Device{
		community:   golibsnmp.Config.DefaultCommunity,
		port:        golibsnmp.Config.DefaultPort,
		version:     golibsnmp.Config.DefaultVersion,
		updateEvery: time.Duration(golibsnmp.Config.UpdateInterval),
	}
	if err := d.SetAddress(address); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Device) String() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return fmt.Sprintf(
		"Name:          %s\n"+
			"Address:       %s\n"+
			"Port:          %d\n"+
			"Community:     %s\n"+
			"Version:       %d\n",
		d.name, d.address, d.port, d.community, d.version)
}

// SetAddress changes the target address. Only IPv4 address literals
// are accepted.
func (d *Device) SetAddress(address string) error {
	if !helpers.IsIPAddress(address) {
		return fmt.Errorf("ip address %q is empty or has an incorrect format", address)
	}
	d.mu.Lock()
	d.address = address
	d.mu.Unlock()
	return nil
}

// SetCommunity changes the SNMP community.
func (d *Device) SetCommunity(community string) error {
	if community == "" {
		return fmt.Errorf("community must not be blank")
	}
	d.mu.Lock()
	d.community = community
	d.mu.Unlock()
	return nil
}

// SetPort changes the SNMP port.
func (d *Device) SetPort(port int) error {
	if !helpers.IsPortNumber(port) {
		return fmt.Errorf("port number %d is out of range", port)
	}
	d.mu.Lock()
	d.port = uint16(port)
	d.mu.Unlock()
	return nil
}

// SetVersion changes the SNMP version. Only 1 and 2 are supported.
func (d *Device) SetVersion(version int) error {
	if version != 1 && version != 2 {
		return fmt.Errorf("unsupported snmp version %d", version)
	}
	d.mu.Lock()
	d.version = version
	d.mu.Unlock()
	return nil
}

// SetUpdateInterval changes how often autoupdate refreshes the device.
// If autoupdate is already running it is restarted with the new
// interval.
func (d *Device) SetUpdateInterval(every time.Duration) error {
	if every <= 0 {
		return fmt.Errorf("update interval must be positive, got %s", every)
	}
	d.mu.Lock()
	d.updateEvery = every
	running := d.repeat != nil
	d.mu.Unlock()
	if running {
		d.DisableAutoUpdate()
		d.EnableAutoUpdate()
	}
	return nil
}

// Connect initiates the connection with the device and populates the
// device fields.
func (d *Device) Connect() error {
	d.mu.Lock()
	if d.client != nil {
		d.mu.Unlock()
		return fmt.Errorf("already connected to %s", d.address)
	}
	sess, err := session.NewSession(d.address, d.community, d.port, d.version)
	if err != nil {
		d.mu.Unlock()
		return fmt.Errorf("could not connect to device: %w", err)
	}
	d.client = sess
	d.mu.Unlock()
	if err := d.Refresh(); err != nil {
		d.Disconnect()
		return fmt.Errorf("initial refresh failed: %w", err)
	}
	return nil
}

// Disconnect stops autoupdate and drops the connection. Safe to call
// on an unconnected device.
func (d *Device) Disconnect() {
	d.DisableAutoUpdate()
	d.mu.Lock()
	if d.client != nil {
		d.client.Close()
		d.client = nil
	}
	d.mu.Unlock()
}

// Connected reports whether the device has an active session.
func (d *Device) Connected() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.client != nil
}

// EnableAutoUpdate starts refreshing the device fields in the
// background, every update interval. No-op if already running.
func (d *Device) EnableAutoUpdate() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.repeat != nil {
		return
	}
	address := d.address
	d.repeat = helpers.NewInterval(func() {
		if err := d.Refresh(); err != nil {
			golibsnmp.Errorf("autoupdate refresh of %s failed: %s", address, err)
		}
	}, d.updateEvery)
}

// DisableAutoUpdate stops the background refresh. No-op if not
// running.
func (d *Device) DisableAutoUpdate() {
	d.mu.Lock()
	repeat := d.repeat
	d.repeat = nil
	d.mu.Unlock()
	if repeat != nil {
		repeat.Stop()
	}
}

// AutoUpdate reports whether background refresh is active.
func (d *Device) AutoUpdate() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.repeat != nil
}

// Refresh populates the device fields: system group scalars in one
// request, then the interface index list and the distinct interface
// types.
func (d *Device) Refresh() error {
	d.mu.RLock()
	c := d.client
	d.mu.RUnlock()
	if c == nil {
		return ErrNotConnected
	}

	sys := make(map[string]gosnmp.SnmpPDU)
	err := c.Get([]string{
		snmp.OIDSysDescr,
		snmp.OIDSysUpTime,
		snmp.OIDSysContact,
		snmp.OIDSysName,
		snmp.OIDSysLocation,
		snmp.OIDIfNumber,
	}, func(pdu gosnmp.SnmpPDU) error {
		sys[pdu.Name] = pdu
		return nil
	})
	if err != nil {
		return fmt.Errorf("could not get device data: %w", err)
	}

	indexes := make([]int, 0, 16)
	err = c.BulkWalk(snmp.OIDIfIndex, func(pdu gosnmp.SnmpPDU) error {
		indexes = append(indexes, int(gosnmp.ToBigInt(pdu.Value).Int64()))
		return nil
	})
	if err != nil {
		return fmt.Errorf("could not get list of interface indexes: %w", err)
	}

	types, err := d.fetchTypes(c, indexes)
	if err != nil {
		return fmt.Errorf("could not get interface types: %w", err)
	}

	d.mu.Lock()
	d.description = pduString(sys[snmp.OIDSysDescr])
	d.uptime = ticksToDuration(pduUint(sys[snmp.OIDSysUpTime]))
	d.contact = pduString(sys[snmp.OIDSysContact])
	d.name = pduString(sys[snmp.OIDSysName])
	d.location = pduString(sys[snmp.OIDSysLocation])
	d.ifNumber = int(pduUint(sys[snmp.OIDIfNumber]))
	d.indexes = indexes
	d.types = types
	d.mu.Unlock()
	return nil
}

// fetchTypes grabs ifType for all indexes in one batched request and
// reduces the result to the distinct type names, in index order.
func (d *Device) fetchTypes(c golibsnmp.Getter, indexes []int) ([]string, error) {
	if len(indexes) == 0 {
		return nil, nil
	}
	oids := make([]string, 0, len(indexes))
	for _, idx := range indexes {
		oids = append(oids, snmp.OIDIfType+"."+strconv.Itoa(idx))
	}
	seen := make(map[string]bool)
	types := make([]string, 0, 8)
	err := c.Get(oids, func(pdu gosnmp.SnmpPDU) error {
		name := snmp.IfTypeName(int(gosnmp.ToBigInt(pdu.Value).Int64()))
		if !seen[name] {
			seen[name] = true
			types = append(types, name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return types, nil
}

// ---------------------------------------
// Device field accessors
// ---------------------------------------

func (d *Device) Address() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.address
}

func (d *Device) Community() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.community
}

func (d *Device) Port() uint16 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.port
}

func (d *Device) Version() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.version
}

// Name is the administratively-assigned name for this managed node,
// by convention its fully-qualified domain name.
func (d *Device) Name() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.name
}

// Description is the textual description of the entity: hardware type,
// operating-system and networking software.
func (d *Device) Description() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.description
}

// Contact identifies the contact person for this managed node.
func (d *Device) Contact() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.contact
}

// Location is the physical location of this node (e.g., "telephone
// closet, 3rd floor").
func (d *Device) Location() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.location
}

// Uptime is the time since the network management portion of the
// system was last re-initialized, as of the last refresh.
func (d *Device) Uptime() time.Duration {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.uptime
}

// NumInterfaces is the number of network interfaces present on the
// system, regardless of their current state.
func (d *Device) NumInterfaces() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.ifNumber
}

// Indexes returns a copy of the interface index list.
func (d *Device) Indexes() []int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]int, len(d.indexes))
	copy(out, d.indexes)
	return out
}

// Types returns a copy of the distinct interface type names.
func (d *Device) Types() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]string, len(d.types))
	copy(out, d.types)
	return out
}

// UpdateInterval is the autoupdate refresh interval.
func (d *Device) UpdateInterval() time.Duration {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.updateEvery
}

// ---------------------------------------
// Interface accessors
// ---------------------------------------

// IfDescription returns the textual description of the interface,
// typically manufacturer, product name and hardware/software version.
func (d *Device) IfDescription(ifIndex int) (string, error) {
	pdu, err := d.ifGet(snmp.OIDIfDescr, ifIndex)
	if err != nil {
		return "", err
	}
	return pduString(pdu), nil
}

// IfType returns the IANAifType name of the interface.
func (d *Device) IfType(ifIndex int) (string, error) {
	pdu, err := d.ifGet(snmp.OIDIfType, ifIndex)
	if err != nil {
		return "", err
	}
	return snmp.IfTypeName(int(gosnmp.ToBigInt(pdu.Value).Int64())), nil
}

// IfMtu returns the size of the largest packet which can be
// sent/received on the interface, in octets.
func (d *Device) IfMtu(ifIndex int) (int, error) {
	pdu, err := d.ifGet(snmp.OIDIfMtu, ifIndex)
	if err != nil {
		return 0, err
	}
	return int(gosnmp.ToBigInt(pdu.Value).Int64()), nil
}

// IfSpeed returns an estimate of the interface's current bandwidth.
// ifSpeed reports bit/s, values above 1 Mb/s come back scaled to Mb/s
// to match what people expect to read on a switch port.
func (d *Device) IfSpeed(ifIndex int) (uint64, error) {
	pdu, err := d.ifGet(snmp.OIDIfSpeed, ifIndex)
	if err != nil {
		return 0, err
	}
	speed := gosnmp.ToBigInt(pdu.Value).Uint64()
	if speed > speedCoefficient {
		speed /= speedCoefficient
	}
	return speed, nil
}

// IfPhysAddress returns the interface's MAC address rendered with the
// given delimiter (":", "-" or "."). Interfaces without a physical
// address (e.g., a serial line) yield an error.
func (d *Device) IfPhysAddress(ifIndex int, delimiter string) (string, error) {
	if !macDelimiters[delimiter] {
		return "", fmt.Errorf("invalid delimiter %q for physical address", delimiter)
	}
	pdu, err := d.ifGet(snmp.OIDIfPhysAddress, ifIndex)
	if err != nil {
		return "", err
	}
	var octets []byte
	switch v := pdu.Value.(type) {
	case []byte:
		octets = v
	case string:
		octets = []byte(v)
	}
	if len(octets) == 0 {
		return "", fmt.Errorf("interface %d has no physical address", ifIndex)
	}
	return helpers.MacFromOctets(octets, delimiter), nil
}

// IfAdminStatus returns the desired state of the interface.
func (d *Device) IfAdminStatus(ifIndex int) (string, error) {
	pdu, err := d.ifGet(snmp.OIDIfAdminStatus, ifIndex)
	if err != nil {
		return "", err
	}
	return snmp.AdminStateName(int(gosnmp.ToBigInt(pdu.Value).Int64())), nil
}

// IfOperStatus returns the current operational state of the interface.
func (d *Device) IfOperStatus(ifIndex int) (string, error) {
	pdu, err := d.ifGet(snmp.OIDIfOperStatus, ifIndex)
	if err != nil {
		return "", err
	}
	return snmp.OperStateName(int(gosnmp.ToBigInt(pdu.Value).Int64())), nil
}

// IfLastChange returns the sysUpTime offset at which the interface
// entered its current operational state. Zero if that was before the
// last re-initialization of the management subsystem.
func (d *Device) IfLastChange(ifIndex int) (time.Duration, error) {
	pdu, err := d.ifGet(snmp.OIDIfLastChange, ifIndex)
	if err != nil {
		return 0, err
	}
	return ticksToDuration(gosnmp.ToBigInt(pdu.Value).Uint64()), nil
}

// IfInOctets returns the total number of octets received on the
// interface, including framing characters.
func (d *Device) IfInOctets(ifIndex int) (uint64, error) {
	return d.ifCounter(snmp.OIDIfInOctets, ifIndex)
}

// IfOutOctets returns the total number of octets transmitted out of
// the interface, including framing characters.
func (d *Device) IfOutOctets(ifIndex int) (uint64, error) {
	return d.ifCounter(snmp.OIDIfOutOctets, ifIndex)
}

// IfInUnicast returns the number of delivered packets which were not
// addressed to a multicast or broadcast address.
func (d *Device) IfInUnicast(ifIndex int) (uint64, error) {
	return d.ifCounter(snmp.OIDIfInUcastPkts, ifIndex)
}

// IfOutUnicast returns the number of packets requested to be
// transmitted which were not addressed to a multicast or broadcast
// address, including those discarded or not sent.
func (d *Device) IfOutUnicast(ifIndex int) (uint64, error) {
	return d.ifCounter(snmp.OIDIfOutUcastPkts, ifIndex)
}

// IfInNonUnicast returns the number of delivered packets which were
// addressed to a multicast or broadcast address.
func (d *Device) IfInNonUnicast(ifIndex int) (uint64, error) {
	return d.ifCounter(snmp.OIDIfInNUcastPkts, ifIndex)
}

// IfOutNonUnicast returns the number of packets requested to be
// transmitted which were addressed to a multicast or broadcast
// address.
func (d *Device) IfOutNonUnicast(ifIndex int) (uint64, error) {
	return d.ifCounter(snmp.OIDIfOutNUcastPkts, ifIndex)
}

// IfInDiscards returns the number of inbound packets discarded even
// though no errors had been detected, e.g. to free up buffer space.
func (d *Device) IfInDiscards(ifIndex int) (uint64, error) {
	return d.ifCounter(snmp.OIDIfInDiscards, ifIndex)
}

// IfOutDiscards returns the number of outbound packets discarded even
// though no errors had been detected.
func (d *Device) IfOutDiscards(ifIndex int) (uint64, error) {
	return d.ifCounter(snmp.OIDIfOutDiscards, ifIndex)
}

// IfInErrors returns the number of inbound packets that contained
// errors preventing them from being deliverable.
func (d *Device) IfInErrors(ifIndex int) (uint64, error) {
	return d.ifCounter(snmp.OIDIfInErrors, ifIndex)
}

// IfOutErrors returns the number of outbound packets that could not be
// transmitted because of errors.
func (d *Device) IfOutErrors(ifIndex int) (uint64, error) {
	return d.ifCounter(snmp.OIDIfOutErrors, ifIndex)
}

// IfUnknownProtos returns the number of received packets discarded
// because of an unknown or unsupported protocol.
func (d *Device) IfUnknownProtos(ifIndex int) (uint64, error) {
	return d.ifCounter(snmp.OIDIfInUnknownProtos, ifIndex)
}

// IfInMulticast returns the number of delivered packets addressed to a
// multicast address. 64-bit version of ifInMulticastPkts.
func (d *Device) IfInMulticast(ifIndex int) (uint64, error) {
	return d.ifCounter(snmp.OIDIfInMulticastPkts, ifIndex)
}

// IfInBroadcast returns the number of delivered packets addressed to a
// broadcast address. 64-bit version of ifInBroadcastPkts.
func (d *Device) IfInBroadcast(ifIndex int) (uint64, error) {
	return d.ifCounter(snmp.OIDIfInBroadcastPkts, ifIndex)
}

// IfOutMulticast returns the number of packets requested to be
// transmitted to a multicast address. 64-bit version of
// ifOutMulticastPkts.
func (d *Device) IfOutMulticast(ifIndex int) (uint64, error) {
	return d.ifCounter(snmp.OIDIfOutMulticastPkts, ifIndex)
}

// IfOutBroadcast returns the number of packets requested to be
// transmitted to a broadcast address. 64-bit version of
// ifOutBroadcastPkts.
func (d *Device) IfOutBroadcast(ifIndex int) (uint64, error) {
	return d.ifCounter(snmp.OIDIfOutBroadcastPkts, ifIndex)
}

// ---------------------------------------
// Internals
// ---------------------------------------

// ifGet fetches a single ifTable/ifXTable cell, validating the
// interface index against the populated index list first.
func (d *Device) ifGet(column string, ifIndex int) (gosnmp.SnmpPDU, error) {
	d.mu.RLock()
	c := d.client
	known := false
	for _, idx := range d.indexes {
		if idx == ifIndex {
			known = true
			break
		}
	}
	d.mu.RUnlock()
	if c == nil {
		return gosnmp.SnmpPDU{}, ErrNotConnected
	}
	if !known {
		return gosnmp.SnmpPDU{}, fmt.Errorf("%w: %d", ErrUnknownInterface, ifIndex)
	}
	oid := column + "." + strconv.Itoa(ifIndex)
	var got *gosnmp.SnmpPDU
	err := c.Get([]string{oid}, func(pdu gosnmp.SnmpPDU) error {
		p := pdu
		got = &p
		return nil
	})
	if err != nil {
		return gosnmp.SnmpPDU{}, err
	}
	if got == nil {
		return gosnmp.SnmpPDU{}, fmt.Errorf("%w: %s", ErrNoValue, oid)
	}
	return *got, nil
}

func (d *Device) ifCounter(column string, ifIndex int) (uint64, error) {
	pdu, err := d.ifGet(column, ifIndex)
	if err != nil {
		return 0, err
	}
	return gosnmp.ToBigInt(pdu.Value).Uint64(), nil
}

func pduString(pdu gosnmp.SnmpPDU) string {
	switch v := pdu.Value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

func pduUint(pdu gosnmp.SnmpPDU) uint64 {
	if pdu.Value == nil {
		return 0
	}
	return gosnmp.ToBigInt(pdu.Value).Uint64()
}

// ticksToDuration converts SNMP TimeTicks (hundredths of a second).
func ticksToDuration(ticks uint64) time.Duration {
	return time.Duration(ticks) * time.Millisecond * 10
}
