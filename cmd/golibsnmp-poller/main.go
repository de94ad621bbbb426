/*
 * golibsnmp poller daemon
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

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/gosnmp/gosnmp"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sleepinggenius2/gosmi/types"
	"github.com/telenornms/skogul"
	sconfig "github.com/telenornms/skogul/config"

	"github.com/netconpro/golibsnmp"
	"github.com/netconpro/golibsnmp/inventory"
	"github.com/netconpro/golibsnmp/mib"
	"github.com/netconpro/golibsnmp/omap"
	"github.com/netconpro/golibsnmp/session"
)

// queueName is the broker queue orders arrive on.
const queueName = "golibsnmp"

// Task is tied to a single SNMP run/walk and a single host
type Task struct {
	OMap   *omap.OMap    // Engine populates uniquely for each target
	Metric skogul.Metric // New metric for each run.
	Result ResolveM
}

// Engine is semi-global state for SNMP, including a "cached" OMap map
type Engine struct {
	Skogul *sconfig.Config                  // output
	OMap   map[string]map[string]*omap.OMap // Caches/stores looked up/built omaps
}

// Init reads configuration and whatnot for the engine
func (e *Engine) Init(sc string) error {
	var err error
	e.Skogul, err = sconfig.Path(sc)
	if err != nil {
		return fmt.Errorf("skogul-config failed loading: %w", err)
	}
	if e.Skogul.Handlers[queueName] == nil {
		return fmt.Errorf("missing %s handler in skogul config", queueName)
	}
	e.OMap = make(map[string]map[string]*omap.OMap)
	err = mib.Init(golibsnmp.Config.MibModules, golibsnmp.Config.MibPaths)
	if err != nil {
		return fmt.Errorf("failed to load mibs: %w", err)
	}
	return nil
}

// GetOmap builds an omap on demand, or returns an already built one
func (e *Engine) GetOmap(target string, key string, sess *session.Session) (*omap.OMap, error) {
	if e.OMap[target][key] != nil {
		if time.Since(e.OMap[target][key].Timestamp) > time.Duration(golibsnmp.Config.MaxMapAge) {
			golibsnmp.Logf("Deleting aged out omap for %s", target)
			e.OMap[target][key] = nil
		} else {
			return e.OMap[target][key], nil
		}
	}
	o, err := omap.BuildOMap(sess, key)
	if err != nil {
		return nil, fmt.Errorf("failed to build element map: %w", err)
	}
	if e.OMap[target] == nil {
		e.OMap[target] = make(map[string]*omap.OMap)
	}
	e.OMap[target][key] = o
	return e.OMap[target][key], nil
}

// ClearOmap clears/nukes/empties the map cache for a target/key combo.
// If the key is blank, ALL maps for that target is cleared.
func (e *Engine) ClearOmap(target string, key string) error {
	if key == "" {
		golibsnmp.Logf("Deleting all maps for %s on request", target)
		delete(e.OMap, target)
		return nil
	}
	if e.OMap[target] != nil {
		golibsnmp.Logf("Deleting `%s'-map for %s on request", key, target)
		delete(e.OMap[target], key)
		return nil
	}
	golibsnmp.Logf("Map `%s' for %s not found while trying to clear cache. Nothing to do.", key, target)
	return nil
}

// oidOf renders a node as the wire-format OID the session wants,
// preferring the qualified (instance-carrying) form.
func oidOf(n golibsnmp.Node) string {
	on := n.Numeric
	if n.Qualified != "" {
		on = n.Qualified
	}
	return "." + on
}

// Run starts an SNMP session for a target and collects the ordered
// oids. If elements are given, an oid/element map is used, built on
// demand.
func (e *Engine) Run(o Order) error {
	host, err := inventory.LockHost(o.Target)
	if err != nil {
		return fmt.Errorf("unable to acquire host lock: %w", err)
	}
	defer host.Unlock()
	if o.Mode == ClearMap {
		return e.ClearOmap(o.Target, o.Key)
	}
	if len(o.Elements) > 0 && o.Key == "" {
		golibsnmp.Debugf("elements provided, but no key. Assuming ifName")
		o.Key = "ifName"
	}

	community := host.Community
	if o.Community != "" {
		community = o.Community
	}
	sess, err := session.NewSession(o.Target, community, host.Port, host.Version)
	if err != nil {
		return fmt.Errorf("session creation failed: %w", err)
	}
	defer sess.Close()
	golibsnmp.Debugf("%s - starting run", o.Target)

	if o.Mode == BuildMap {
		if o.Key == "" {
			golibsnmp.Debugf("Requested building of a map, but no key provided. Assuming ifName")
			o.Key = "ifName"
		}
		if err := e.ClearOmap(o.Target, o.Key); err != nil {
			return fmt.Errorf("unable to clear omap: %w", err)
		}
		if _, err := e.GetOmap(o.Target, o.Key, sess); err != nil {
			return fmt.Errorf("unable to build omap: %w", err)
		}
		return nil
	}

	t := Task{}
	if o.Key != "" {
		t.OMap, err = e.GetOmap(o.Target, o.Key, sess)
		if err != nil {
			return fmt.Errorf("failed to build element map: %w", err)
		}
	}

	lookedup := false
	m := make([]golibsnmp.Node, 0, len(o.Oids))
	for _, arg := range o.Oids {
		nym, err := mib.Lookup(arg)
		if err != nil {
			return fmt.Errorf("unable to look up oid: %w", err)
		}
		m = append(m, nym)
		if nym.Lookedup {
			lookedup = true
		}
	}
	if o.Result == Auto {
		if lookedup {
			t.Result = Resolve
		} else {
			t.Result = OID
		}
	} else {
		t.Result = o.Result
	}
	if len(m) < 1 {
		return fmt.Errorf("trying to start run with 0 oids?")
	}
	t.Metric.Metadata = make(map[string]interface{})
	t.Metric.Metadata["target"] = o.Target
	if o.ID != "" {
		t.Metric.Metadata["id"] = o.ID
	}
	t.Metric.Data = make(map[string]interface{})
	switch o.Mode {
	case GetElements:
		oids := make([]string, 0, len(m)*len(o.Elements))
		for _, node := range m {
			for _, element := range o.Elements {
				for name, idx := range t.OMap.NameToIdx {
					match, _ := regexp.MatchString(element, name)
					if match {
						oids = append(oids, oidOf(node)+"."+idx)
					}
				}
			}
		}
		if len(oids) < 1 {
			return fmt.Errorf("no elements matched for %s", o.Target)
		}
		err = sess.Get(oids, t.bwCB)
	case Walk:
		for _, node := range m {
			if err = sess.BulkWalk(oidOf(node), t.bwCB); err != nil {
				break
			}
		}
	case Get:
		oids := make([]string, 0, len(m))
		for _, node := range m {
			oids = append(oids, oidOf(node))
		}
		err = sess.Get(oids, t.bwCB)
	default:
		return fmt.Errorf("unsupported mode")
	}
	if err != nil {
		return fmt.Errorf("snmp get/walk failed: %w", err)
	}
	c := skogul.Container{}
	c.Metrics = append(c.Metrics, &t.Metric)

	err = e.Skogul.Handlers[queueName].Handler.TransformAndSend(&c)
	if err != nil {
		return fmt.Errorf("send failed: %w", err)
	}
	return nil
}

// saveNode stores a result
func (t *Task) saveNode(pdu gosnmp.SnmpPDU, v interface{}) error {
	if t.Result == OID {
		t.Metric.Data[pdu.Name] = v
		return nil
	}
	var name = pdu.Name
	var element = ""

	n, err := mib.Lookup(pdu.Name)
	if err != nil {
		golibsnmp.Logf("lookup failed: %s", err)
	} else {
		var trailer string
		if len(n.Numeric) >= len(pdu.Name)-1 || (n.Qualified != "" && pdu.Name == n.Qualified[1:]) {
			golibsnmp.Debugf("trailer-issues: %s vs %v", n.Numeric, pdu)
			trailer = "0"
		} else {
			trailer = pdu.Name[len(n.Numeric)+1:][1:]
			if len(trailer) > 0 {
				if t.OMap != nil && t.OMap.IdxToName[trailer] != "" {
					trailer = t.OMap.IdxToName[trailer]
				}
			}
		}
		name = n.Name
		element = trailer
	}

	if t.Metric.Data[element] == nil {
		t.Metric.Data[element] = make(map[string]interface{})
	}
	(t.Metric.Data[element].(map[string]interface{}))[name] = v
	return nil
}

// bwCB is the callback used for each PDU received during an SNMP GET
// of some sort. It just "decodes" the value and triggers storage.
//
// The decoding is a bit finnicky. We only want to use the "formatted"
// stuff for types that require rendering, while numbers should be left
// intact. And then there's OctetString where we DO want to use
// DisplayHint if present, but NOT if it isn't present, because the
// default is atrocious.
func (t *Task) bwCB(pdu gosnmp.SnmpPDU) error {
	var v interface{}
	node, err := mib.Lookup(pdu.Name)
	if err != nil {
		golibsnmp.Logf("PDU/Node lookup failed during callback: %v", err)
	}
	if node.Type == nil {
		return t.saveNode(pdu, pdu.Value)
	}
	formatted := node.Type.FormatValue(pdu.Value)
	if node.Type.BaseType == types.BaseTypeUnknown ||
		node.Type.BaseType == types.BaseTypeObjectIdentifier ||
		node.Type.BaseType == types.BaseTypeEnum ||
		node.Type.BaseType == types.BaseTypeBits ||
		node.Type.BaseType == types.BaseTypePointer {
		v = formatted.Formatted
	} else if node.Type.BaseType == types.BaseTypeOctetString {
		if node.Type.Format == "" {
			switch formatted.Raw.(type) {
			case string:
				v = formatted.Raw
			case []uint8:
				// hrSWInstalledName and friends fail to
				// render sensibly without this.
				v = string(formatted.Raw.([]uint8))
			default:
				v = formatted.Formatted
			}
		} else {
			v = formatted.Formatted
		}
	} else {
		v = pdu.Value
	}

	return t.saveNode(pdu, v)
}

// Order is the central object for kicking the poller into action. An
// order always operates on a target (a host/switch, either IP address
// or hostname) and using a mode. Depending on the mode, the poller can
// either request OIDs from the target system, build table/element maps
// or clear the map cache.
//
// OIDs can be provided either as a list of numeric IDs, or by symbolic
// names. E.g.: .1.3.6.1.2.1.1.5.0 is valid, but so is ifHCInOctets.
//
// If the Elements array is populated, an element map will be used to
// fetch oids for the matching elements. More plainly: Elements can
// match interface names and then the poller will build up GET requests
// for the provided OIDs for each index.
//
// If Key is provided, that is used as the key to build an element map.
// By default, ifName is used, making the defaults suitable for looking
// up OIDs under ifTable and ifXTable.
//
// Community is the community to use to connect to the host. Blank
// means use the inventory/configured one.
//
// ID is an optional identification which is not used by the poller at
// all, but included in the result to allow a caller to match the order
// to the result.
//
// Result determines how the result is formatted. By default, it will
// try to match the input: if numeric OIDs were used in the input,
// that's used in the output, if symbolic names were used, names are
// used in the result. Provide "oid" to leave OIDs unresolved and
// "resolve" to always attempt to resolve.
type Order struct {
	Target    string   // Host/target
	Oids      []string // OIDs, also accepts logical names (e.g.: ifName)
	Elements  []string // Elements, if GetElements mode. Elements == interfaces (could be other in the future)
	Key       string   // Map key to use for looking up elements
	Mode      Mode     // What mode to use
	Community string   `json:",omitempty"` // Community to use, blank == figure it out yourself/use default
	ID        string   `json:",omitempty"`
	Result    ResolveM // Auto (default) = resolve based on input, OID = leave OIDs unresolved, Resolve = try to resolve
	delivery  amqp.Delivery
}

func (o Order) String() string {
	return o.Target
}

type ResolveM int

const (
	Auto ResolveM = iota
	OID
	Resolve
)

func (r *ResolveM) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	s = strings.ToLower(s)
	switch s {
	case "auto":
		*r = Auto
	case "oid":
		*r = OID
	case "resolve":
		*r = Resolve
	default:
		return fmt.Errorf("invalid resolver mode: %s", s)
	}
	return nil
}

func (r ResolveM) MarshalJSON() ([]byte, error) {
	switch r {
	case Auto:
		return []byte("\"Auto\""), nil
	case OID:
		return []byte("\"OID\""), nil
	case Resolve:
		return []byte("\"Resolve\""), nil
	default:
		return []byte("\"\""), fmt.Errorf("invalid resolve mode %d", r)
	}
}

type Mode int

const (
	Walk        Mode = iota // Do a walk
	Get                     // Get just these oids
	GetElements             // Get these specific oids, but per elements
	BuildMap                // Build an OMap
	ClearMap                // Clear the OMap cache
)

func (m *Mode) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	s = strings.ToLower(s)
	switch s {
	case "walk":
		*m = Walk
	case "get":
		*m = Get
	case "getelements":
		*m = GetElements
	case "buildmap":
		*m = BuildMap
	case "clearmap":
		*m = ClearMap
	default:
		return fmt.Errorf("invalid mode: %s", s)
	}
	return nil
}

func (m Mode) MarshalJSON() ([]byte, error) {
	switch m {
	case Walk:
		return []byte("\"Walk\""), nil
	case Get:
		return []byte("\"Get\""), nil
	case GetElements:
		return []byte("\"GetElements\""), nil
	case BuildMap:
		return []byte("\"BuildMap\""), nil
	case ClearMap:
		return []byte("\"ClearMap\""), nil
	default:
		return []byte("\"\""), fmt.Errorf("invalid mode %d", m)
	}
}

func (e *Engine) Listener(c chan Order, name string) {
	golibsnmp.Debugf("Starting listener %s...", name)
	for order := range c {
		now := time.Now()
		err := e.Run(order)
		since := time.Since(now).Round(time.Millisecond * 10)
		orderDuration.Observe(time.Since(now).Seconds())
		if err != nil {
			ordersTotal.WithLabelValues("fail").Inc()
			requeue := !order.delivery.Redelivered
			golibsnmp.Logf("[%2s]: %-15s FAIL %s: %s (requeue: %v)", name, order, since.String(), err, requeue)
			if requeue {
				delayR := rand.Int() % 10
				d := time.Second*1 + time.Second*time.Duration(delayR)
				golibsnmp.Debugf("Sleeping %v before NACK/requeue", d)
				time.Sleep(d)
			}
			if err2 := order.delivery.Nack(false, requeue); err2 != nil {
				golibsnmp.Logf("NAck failed: %s", err2)
			}
		} else {
			ordersTotal.WithLabelValues("ok").Inc()
			golibsnmp.Logf("[%2s]: %-15s OK %s", name, order, since.String())
			if err2 := order.delivery.Ack(false); err2 != nil {
				golibsnmp.Logf("Ack failed: %s", err2)
			}
		}
	}
}

func main() {
	var configFile string
	flag.BoolVar(&golibsnmp.Config.Debug, "debug", false, "enable debug")
	flag.StringVar(&configFile, "f", "/etc/golibsnmp/poller.yaml", "poller config file")
	flag.Parse()
	if err := golibsnmp.ParseConfig(configFile); err != nil {
		golibsnmp.Fatalf("Couldn't parse config: %s", err)
	}
	golibsnmp.Debugf("Read config file: %s", configFile)
	golibsnmp.Init()
	e := Engine{}
	if err := e.Init(golibsnmp.Config.OutputConfig); err != nil {
		golibsnmp.Fatalf("Couldn't initialize engine: %s", err)
	}
	if golibsnmp.Config.MetricsAddr != "" {
		go serveMetrics(golibsnmp.Config.MetricsAddr)
	}
	c := make(chan Order, 0)
	for i := 0; i < golibsnmp.Config.Workers; i++ {
		go e.Listener(c, fmt.Sprintf("%d", i))
		time.Sleep(time.Microsecond * 20)
	}
	golibsnmp.Logf("Started %d workers", golibsnmp.Config.Workers)
	amURL, err := url.Parse(golibsnmp.Config.Broker)
	if err != nil {
		golibsnmp.Fatalf("Can't parse broker url: %s", err)
	}
	golibsnmp.Debugf("Connecting to broker: %v", amURL.Redacted())
	conn, err := amqp.Dial(golibsnmp.Config.Broker)
	if err != nil {
		golibsnmp.Fatalf("can't connect to broker: %s", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		golibsnmp.Fatalf("can't get channel: %s", err)
	}
	defer ch.Close()
	err = ch.Qos(golibsnmp.Config.Workers+1, 0, true)
	if err != nil {
		golibsnmp.Fatalf("can't set qos: %s", err)
	}

	q, err := ch.QueueDeclare(
		queueName, // name
		false,     // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		golibsnmp.Fatalf("can't declare queue: %s", err)
	}

	msgs, err := ch.Consume(
		q.Name, // queue
		"",     // consumer
		false,  // auto-ack
		false,  // exclusive
		false,  // no-local
		false,  // no-wait
		nil,    // args
	)
	if err != nil {
		golibsnmp.Fatalf("can't register consumer: %s", err)
	}
	golibsnmp.Logf("Listening for orders")
	for d := range msgs {
		order := Order{}
		if err := json.Unmarshal(d.Body, &order); err != nil {
			golibsnmp.Logf("order json unmarshal: %s", err)
			d.Reject(false)
			continue
		}
		order.delivery = d
		c <- order
	}
	golibsnmp.Logf("Reached the end. Connection probably dead.")
}
