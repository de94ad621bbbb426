/*
 * golibsnmp mib lookups
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

package mib

/*
Package mib handles loading MIB files and modules, and resolving
symbolic names to OIDs. While this is based on gosmi, we try to hide as
much of that as possible because it's not unlikely that it'll be
switched.

Lookups accept plain names ("sysName"), names with an instance suffix
("sysName.123"), and numeric OIDs with or without a leading dot.
*/

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/sleepinggenius2/gosmi"
	"github.com/sleepinggenius2/gosmi/types"

	"github.com/netconpro/golibsnmp"
)

// cache is an internal OID-cache for Nodes, to avoid expensive
// SMI-lookups for what is most likely very repetitive lookups. So far,
// extremely simple with no LRU or anything.
var cache sync.Map

var numericRe = regexp.MustCompile(`^\.?[0-9.]+$`)

// Init loads MIB files from disk and the given list of modules.
func Init(modules []string, paths []string) error {
	gosmi.Init()

	for _, path := range paths {
		golibsnmp.Logf("mib path added: %s", path)
		gosmi.AppendPath(path)
	}
	for _, module := range modules {
		moduleName, err := gosmi.LoadModule(module)
		if err != nil {
			return fmt.Errorf("module load failed: %w", err)
		}
		golibsnmp.Debugf("loaded SMI module %s", moduleName)
	}
	return nil
}

// Lookup resolves item to a Node. Successful lookups are cached, a
// reload of the MIB tree needs to nuke the cache.
func Lookup(item string) (golibsnmp.Node, error) {
	if chit, ok := cache.Load(item); ok {
		cast, _ := chit.(*golibsnmp.Node)
		return *cast, nil
	}
	var ret golibsnmp.Node
	ret.Key = item
	var n gosmi.SmiNode
	if numericRe.MatchString(item) {
		trimmed := strings.TrimPrefix(item, ".")
		oid, err := types.OidFromString(trimmed)
		if err != nil {
			return ret, fmt.Errorf("unable to parse OID %s: %w", item, err)
		}
		n, err = gosmi.GetNodeByOID(oid)
		if err != nil {
			return ret, fmt.Errorf("gosmi.GetNodeByOID failed: %w", err)
		}
		ret.Numeric = n.RenderNumeric()
		if trimmed != ret.Numeric {
			// Input carried an instance, keep it qualified.
			ret.Qualified = trimmed
		}
	} else {
		ret.Lookedup = true
		name, instance, hasInstance := strings.Cut(item, ".")
		var err error
		n, err = gosmi.GetNode(name)
		if err != nil {
			return ret, fmt.Errorf("gosmi.GetNode failed: %w", err)
		}
		ret.Numeric = n.RenderNumeric()
		if hasInstance {
			ret.Qualified = ret.Numeric + "." + instance
		}
	}
	ret.Name = n.Render(types.RenderName)
	ret.Type = n.Type
	cache.Store(item, &ret)
	return ret, nil
}
