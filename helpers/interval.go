/*
 * golibsnmp interval timer
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

package helpers

import (
	"sync"
	"time"
)

// Interval runs a function repeatedly with a fixed delay between
// invocations, until stopped. The function runs on its own goroutine,
// so it must be safe to call concurrently with whatever started the
// interval.
type Interval struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

// NewInterval starts running fn every d. The first invocation happens
// after the first full period, not immediately.
func NewInterval(fn func(), d time.Duration) *Interval {
	i := &Interval{
		ticker: time.NewTicker(d),
		done:   make(chan struct{}),
	}
	go func() {
		for {
			select {
			case <-i.ticker.C:
				fn()
			case <-i.done:
				return
			}
		}
	}()
	return i
}

// Stop cancels the interval and releases its goroutine. Safe to call
// more than once.
func (i *Interval) Stop() {
	i.once.Do(func() {
		i.ticker.Stop()
		close(i.done)
	})
}
