/*
 * golibsnmp mib tests
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

package mib_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netconpro/golibsnmp"
	"github.com/netconpro/golibsnmp/mib"
)

func TestLookup(t *testing.T) {
	if _, err := os.Stat(golibsnmp.Config.MibPaths[0]); err != nil {
		t.Skipf("no MIB files at %s, skipping", golibsnmp.Config.MibPaths[0])
	}
	require.NoError(t, mib.Init(golibsnmp.Config.MibModules, golibsnmp.Config.MibPaths))

	node, err := mib.Lookup("sysName")
	require.NoError(t, err)
	assert.NotNil(t, node.Type)
	assert.Equal(t, "1.3.6.1.2.1.1.5", node.Numeric)
	assert.True(t, node.Lookedup)

	node, err = mib.Lookup("sysName.123")
	require.NoError(t, err)
	assert.Equal(t, "1.3.6.1.2.1.1.5", node.Numeric)
	assert.Equal(t, "1.3.6.1.2.1.1.5.123", node.Qualified)

	node, err = mib.Lookup("1.3.6.1.2.1.1.5.543")
	require.NoError(t, err)
	assert.NotNil(t, node.Type)
	assert.Equal(t, "1.3.6.1.2.1.1.5", node.Numeric)
	assert.Equal(t, "1.3.6.1.2.1.1.5.543", node.Qualified)
	assert.False(t, node.Lookedup)

	// Second lookup of the same key comes from the cache.
	again, err := mib.Lookup("sysName")
	require.NoError(t, err)
	assert.Equal(t, "1.3.6.1.2.1.1.5", again.Numeric)
}
