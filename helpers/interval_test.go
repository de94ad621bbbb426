/*
 * golibsnmp interval tests
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

package helpers_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/netconpro/golibsnmp/helpers"
)

func TestInterval(t *testing.T) {
	var calls atomic.Int64
	i := helpers.NewInterval(func() {
		calls.Add(1)
	}, time.Millisecond*10)

	assert.Eventually(t, func() bool {
		return calls.Load() >= 3
	}, time.Second, time.Millisecond*5)

	i.Stop()
	stopped := calls.Load()
	time.Sleep(time.Millisecond * 50)
	assert.Equal(t, stopped, calls.Load(), "interval kept firing after Stop")
}

func TestIntervalStopTwice(t *testing.T) {
	i := helpers.NewInterval(func() {}, time.Millisecond*10)
	i.Stop()
	assert.NotPanics(t, func() { i.Stop() })
}
