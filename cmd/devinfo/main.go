/*
 * golibsnmp device info tool
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

// devinfo connects to a single device and prints the system group and
// interface summary. With -watch it samples an interface's octet
// counters once a second and prints the measured throughput instead.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/netconpro/golibsnmp"
	"github.com/netconpro/golibsnmp/device"
	"github.com/netconpro/golibsnmp/helpers"
)

func main() {
	address := flag.String("a", "", "device address (required)")
	community := flag.String("c", "", "snmp community")
	port := flag.Int("p", 0, "snmp port")
	version := flag.Int("v", 0, "snmp version (1 or 2)")
	watch := flag.Int("watch", 0, "sample throughput of the given ifIndex instead of printing a summary")
	flag.BoolVar(&golibsnmp.Config.Debug, "debug", false, "enable debug")
	flag.Parse()
	golibsnmp.Init()
	if *address == "" {
		golibsnmp.Fatalf("no device address provided, see -h")
	}
	d, err := device.New(*address)
	if err != nil {
		golibsnmp.Fatalf("bad device address: %s", err)
	}
	if *community != "" {
		if err := d.SetCommunity(*community); err != nil {
			golibsnmp.Fatalf("bad community: %s", err)
		}
	}
	if *port != 0 {
		if err := d.SetPort(*port); err != nil {
			golibsnmp.Fatalf("bad port: %s", err)
		}
	}
	if *version != 0 {
		if err := d.SetVersion(*version); err != nil {
			golibsnmp.Fatalf("bad version: %s", err)
		}
	}
	if err := d.Connect(); err != nil {
		golibsnmp.Fatalf("connect failed: %s", err)
	}
	defer d.Disconnect()

	if *watch != 0 {
		watchInterface(d, *watch)
		return
	}
	summary(d)
}

func summary(d *device.Device) {
	fmt.Print(d.String())
	fmt.Printf("Description:   %s\n", d.Description())
	fmt.Printf("Contact:       %s\n", d.Contact())
	fmt.Printf("Location:      %s\n", d.Location())
	fmt.Printf("Uptime:        %s\n", d.Uptime())
	fmt.Printf("Interfaces:    %d\n", d.NumInterfaces())
	fmt.Printf("Types:         %v\n", d.Types())
	fmt.Println()
	for _, idx := range d.Indexes() {
		descr, err := d.IfDescription(idx)
		if err != nil {
			descr = "?"
		}
		admin, err := d.IfAdminStatus(idx)
		if err != nil {
			admin = "?"
		}
		oper, err := d.IfOperStatus(idx)
		if err != nil {
			oper = "?"
		}
		speed, err := d.IfSpeed(idx)
		if err != nil {
			speed = 0
		}
		fmt.Printf("%4d %-30s admin:%-7s oper:%-7s %d\n", idx, descr, admin, oper, speed)
	}
}

// watchInterface samples the in/out octet counters once a second and
// prints the throughput of the last interval.
func watchInterface(d *device.Device, ifIndex int) {
	lastIn, err := d.IfInOctets(ifIndex)
	if err != nil {
		golibsnmp.Fatalf("can't read interface %d: %s", ifIndex, err)
	}
	lastOut, err := d.IfOutOctets(ifIndex)
	if err != nil {
		golibsnmp.Fatalf("can't read interface %d: %s", ifIndex, err)
	}
	for {
		time.Sleep(time.Second)
		in, err := d.IfInOctets(ifIndex)
		if err != nil {
			golibsnmp.Fatalf("can't read interface %d: %s", ifIndex, err)
		}
		out, err := d.IfOutOctets(ifIndex)
		if err != nil {
			golibsnmp.Fatalf("can't read interface %d: %s", ifIndex, err)
		}
		inBits := helpers.Bits(in - lastIn)
		outBits := helpers.Bits(out - lastOut)
		fmt.Printf("in: %7.1f %-6s out: %7.1f %-6s\n",
			helpers.Speed(inBits), helpers.Unit(inBits),
			helpers.Speed(outBits), helpers.Unit(outBits))
		lastIn, lastOut = in, out
	}
}
