/*
 * golibsnmp device tests
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

package device

import (
	"sync"
	"testing"
	"time"

	"github.com/gosnmp/gosnmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netconpro/golibsnmp/snmp"
)

// fakeClient serves canned PDUs so device logic can be exercised
// without a live agent.
type fakeClient struct {
	mu     sync.Mutex
	values map[string]interface{}
	walks  map[string][]gosnmp.SnmpPDU
	closed bool
}

func (f *fakeClient) Get(oids []string, cb func(pdu gosnmp.SnmpPDU) error) error {
	f.mu.Lock()
	pdus := make([]gosnmp.SnmpPDU, 0, len(oids))
	for _, oid := range oids {
		if v, ok := f.values[oid]; ok {
			pdus = append(pdus, gosnmp.SnmpPDU{Name: oid, Value: v})
		}
	}
	f.mu.Unlock()
	for _, pdu := range pdus {
		if err := cb(pdu); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeClient) BulkWalk(oid string, cb func(pdu gosnmp.SnmpPDU) error) error {
	f.mu.Lock()
	pdus := append([]gosnmp.SnmpPDU(nil), f.walks[oid]...)
	f.mu.Unlock()
	for _, pdu := range pdus {
		if err := cb(pdu); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeClient) Close() {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
}

func (f *fakeClient) set(oid string, v interface{}) {
	f.mu.Lock()
	f.values[oid] = v
	f.mu.Unlock()
}

func testDevice(t *testing.T) (*Device, *fakeClient) {
	t.Helper()
	d, err := New("192.168.10.206")
	require.NoError(t, err)
	f := &fakeClient{
		values: map[string]interface{}{
			snmp.OIDSysDescr:    []byte("test switch os v1.2"),
			snmp.OIDSysUpTime:   uint32(8675309),
			snmp.OIDSysContact:  []byte("noc@example.org"),
			snmp.OIDSysName:     []byte("sw01"),
			snmp.OIDSysLocation: []byte("telephone closet, 3rd floor"),
			snmp.OIDIfNumber:    2,

			snmp.OIDIfDescr + ".1":       []byte("GigabitEthernet0/1"),
			snmp.OIDIfType + ".1":        6,
			snmp.OIDIfType + ".2":        24,
			snmp.OIDIfMtu + ".1":         1500,
			snmp.OIDIfSpeed + ".1":       uint(1000000000),
			snmp.OIDIfSpeed + ".2":       uint(500000),
			snmp.OIDIfPhysAddress + ".1": []byte{0xd4, 0xca, 0x6d, 0x68, 0xe7, 0x6e},
			snmp.OIDIfPhysAddress + ".2": []byte{},
			snmp.OIDIfAdminStatus + ".1": 1,
			snmp.OIDIfOperStatus + ".1":  2,
			snmp.OIDIfLastChange + ".1":  uint32(500),
			snmp.OIDIfInOctets + ".1":    uint(123456),
			snmp.OIDIfOutOctets + ".1":   uint(654321),
			snmp.OIDIfInErrors + ".1":    uint(3),
		},
		walks: map[string][]gosnmp.SnmpPDU{
			snmp.OIDIfIndex: {
				{Name: snmp.OIDIfIndex + ".1", Value: 1},
				{Name: snmp.OIDIfIndex + ".2", Value: 2},
			},
		},
	}
	d.client = f
	require.NoError(t, d.Refresh())
	return d, f
}

func TestNewDefaults(t *testing.T) {
	d, err := New("127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "public", d.Community())
	assert.Equal(t, uint16(161), d.Port())
	assert.Equal(t, 2, d.Version())
	assert.False(t, d.Connected())

	_, err = New("not-an-address")
	assert.Error(t, err)
	_, err = New("192.168.0.256")
	assert.Error(t, err)
}

func TestSetters(t *testing.T) {
	d, err := New("127.0.0.1")
	require.NoError(t, err)

	assert.NoError(t, d.SetAddress("10.0.0.1"))
	assert.Equal(t, "10.0.0.1", d.Address())
	assert.Error(t, d.SetAddress(""))
	assert.Equal(t, "10.0.0.1", d.Address())

	assert.NoError(t, d.SetCommunity("secret"))
	assert.Equal(t, "secret", d.Community())
	assert.Error(t, d.SetCommunity(""))

	assert.NoError(t, d.SetPort(1161))
	assert.Equal(t, uint16(1161), d.Port())
	assert.Error(t, d.SetPort(0))
	assert.Error(t, d.SetPort(70000))

	assert.NoError(t, d.SetVersion(1))
	assert.Error(t, d.SetVersion(3))
	assert.Equal(t, 1, d.Version())

	assert.NoError(t, d.SetUpdateInterval(time.Second))
	assert.Error(t, d.SetUpdateInterval(0))
	assert.Equal(t, time.Second, d.UpdateInterval())
}

func TestRefresh(t *testing.T) {
	d, _ := testDevice(t)
	assert.Equal(t, "sw01", d.Name())
	assert.Equal(t, "test switch os v1.2", d.Description())
	assert.Equal(t, "noc@example.org", d.Contact())
	assert.Equal(t, "telephone closet, 3rd floor", d.Location())
	assert.Equal(t, time.Duration(8675309)*time.Millisecond*10, d.Uptime())
	assert.Equal(t, 2, d.NumInterfaces())
	assert.Equal(t, []int{1, 2}, d.Indexes())
	assert.Equal(t, []string{"ethernet-csmacd", "softwareLoopback"}, d.Types())
}

func TestRefreshNotConnected(t *testing.T) {
	d, err := New("127.0.0.1")
	require.NoError(t, err)
	assert.ErrorIs(t, d.Refresh(), ErrNotConnected)
	_, err = d.IfInOctets(1)
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestIfAccessors(t *testing.T) {
	d, _ := testDevice(t)

	descr, err := d.IfDescription(1)
	require.NoError(t, err)
	assert.Equal(t, "GigabitEthernet0/1", descr)

	ifType, err := d.IfType(1)
	require.NoError(t, err)
	assert.Equal(t, "ethernet-csmacd", ifType)

	mtu, err := d.IfMtu(1)
	require.NoError(t, err)
	assert.Equal(t, 1500, mtu)

	admin, err := d.IfAdminStatus(1)
	require.NoError(t, err)
	assert.Equal(t, "up", admin)

	oper, err := d.IfOperStatus(1)
	require.NoError(t, err)
	assert.Equal(t, "down", oper)

	in, err := d.IfInOctets(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(123456), in)

	out, err := d.IfOutOctets(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(654321), out)

	errs, err := d.IfInErrors(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), errs)

	change, err := d.IfLastChange(1)
	require.NoError(t, err)
	assert.Equal(t, time.Second*5, change)
}

func TestIfSpeed(t *testing.T) {
	d, _ := testDevice(t)

	// 1 Gbit/s scales down to Mb/s.
	speed, err := d.IfSpeed(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), speed)

	// Below the coefficient the raw bit/s value is returned.
	speed, err = d.IfSpeed(2)
	require.NoError(t, err)
	assert.Equal(t, uint64(500000), speed)
}

func TestIfPhysAddress(t *testing.T) {
	d, _ := testDevice(t)

	mac, err := d.IfPhysAddress(1, ":")
	require.NoError(t, err)
	assert.Equal(t, "D4:CA:6D:68:E7:6E", mac)

	mac, err = d.IfPhysAddress(1, ".")
	require.NoError(t, err)
	assert.Equal(t, "D4CA.6D68.E76E", mac)

	_, err = d.IfPhysAddress(1, "/")
	assert.Error(t, err)

	// Interface 2 has a zero-length physical address.
	_, err = d.IfPhysAddress(2, ":")
	assert.Error(t, err)
}

func TestUnknownInterface(t *testing.T) {
	d, _ := testDevice(t)
	_, err := d.IfDescription(42)
	assert.ErrorIs(t, err, ErrUnknownInterface)
	_, err = d.IfInOctets(0)
	assert.ErrorIs(t, err, ErrUnknownInterface)
}

func TestNoValue(t *testing.T) {
	d, _ := testDevice(t)
	// Interface 2 exists but has no ifDescr in the fake.
	_, err := d.IfDescription(2)
	assert.ErrorIs(t, err, ErrNoValue)
}

func TestDisconnect(t *testing.T) {
	d, f := testDevice(t)
	assert.True(t, d.Connected())
	d.Disconnect()
	assert.False(t, d.Connected())
	assert.True(t, f.closed)
	// Idempotent.
	d.Disconnect()
}

func TestAutoUpdate(t *testing.T) {
	d, f := testDevice(t)
	require.NoError(t, d.SetUpdateInterval(time.Millisecond*10))

	d.EnableAutoUpdate()
	assert.True(t, d.AutoUpdate())
	// Enabling twice must not start a second interval.
	d.EnableAutoUpdate()

	f.set(snmp.OIDSysName, []byte("sw02"))
	assert.Eventually(t, func() bool {
		return d.Name() == "sw02"
	}, time.Second, time.Millisecond*5)

	d.DisableAutoUpdate()
	assert.False(t, d.AutoUpdate())
	d.DisableAutoUpdate()
}
