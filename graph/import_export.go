/*
 * EliasDB
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/krotik/common/stringutil"
	"github.com/krotik/kinship/graph/data"
	"github.com/krotik/kinship/graph/util"
	"github.com/pkg/errors"
)

/*
ImportJSON reads a graph from a JSON object with a list of nodes and edges.
*/
func ImportJSON(in io.Reader) (*Graph, error) {

	dec := json.NewDecoder(in)
	gdata := make(map[string][]map[string]interface{})

	if err := dec.Decode(&gdata); err != nil {
		return nil, &util.GraphError{Type: util.ErrReading, Detail: errors.Wrap(err,
			"Could not decode content as object with list of nodes and edges").Error()}
	}

	b := NewBuilder()

	for _, ndata := range gdata["nodes"] {
		node := data.NewGraphNodeFromMap(ndata)

		if !stringutil.IsAlphaNumeric(node.Kind()) {
			b.errors.Add(fmt.Errorf("Node kind %v is not alphanumeric - can only contain [a-zA-Z0-9_]", node.Kind()))
			continue
		}

		switch node.Kind() {
		case data.KindPerson:
			b.AddPerson(node.Key(), node.Name(),
				ParseSex(fmt.Sprint(node.Attr(data.NodeSex))), dateAttr(node))

		case data.KindFamily:
			separated := false
			if v, ok := node.Attr(data.NodeSeparated).(bool); ok {
				separated = v
			}
			b.AddFamily(node.Key(), dateAttr(node), separated)

		default:
			b.errors.Add(fmt.Errorf("Unknown node kind %v for node %v", node.Kind(), node.Key()))
		}
	}

	for _, edata := range gdata["edges"] {
		edge := data.NewGraphEdgeFromNode(data.NewGraphNodeFromMap(edata))
		familyKey := edge.EndKeyByRole(data.RoleFamily)

		spec, ok := edgeSpecs[edge.Kind()]
		if !ok {
			b.errors.Add(fmt.Errorf("Unknown edge kind %v for edge %v", edge.Kind(), edge.Key()))
			continue
		}

		if familyKey == "" || endKind(edge, familyKey) != data.KindFamily {
			b.errors.Add(fmt.Errorf("Edge %v has no family end", edge.Key()))
			continue
		} else if res := edge.Spec(familyKey); res != spec {
			b.errors.Add(fmt.Errorf("Invalid spec %v for edge %v (expected %v)", res, edge.Key(), spec))
			continue
		}

		switch edge.Kind() {
		case data.KindPartner:
			role := RefSpouse
			if t, ok := edgeType(b, edge); ok {
				role = t
			}
			b.AddPartner(familyKey, edge.EndKeyByRole(data.RolePartner), role)

		case data.KindChild:
			childType := RefChild
			if t, ok := edgeType(b, edge); ok {
				childType = t
			}
			b.AddChild(familyKey, edge.EndKeyByRole(data.RoleChild), childType)
		}
	}

	return b.Build()
}

/*
edgeSpecs holds the valid spec of each edge kind from the view of the family.
*/
var edgeSpecs = map[string]string{
	data.KindPartner: fmt.Sprintf("%v:%v:%v:%v", data.RoleFamily, data.KindPartner, data.RolePartner, data.KindPerson),
	data.KindChild:   fmt.Sprintf("%v:%v:%v:%v", data.RoleFamily, data.KindChild, data.RoleChild, data.KindPerson),
}

/*
endKind returns the node kind of the edge end with a given key.
*/
func endKind(edge data.Edge, key string) string {
	if key == edge.End1Key() {
		return edge.End1Kind()
	}
	return edge.End2Kind()
}

/*
dateAttr returns the date attribute of a node as a string.
*/
func dateAttr(node data.Node) string {
	if d := node.Attr(data.NodeDate); d != nil {
		return fmt.Sprint(d)
	}
	return ""
}

/*
edgeType returns the reference type of an edge if it has one. Unknown types
are reported to the builder.
*/
func edgeType(b *Builder, edge data.Edge) (ReferenceType, bool) {
	t := edge.Attr(data.EdgeType)
	if t == nil {
		return RefFamily, false
	}

	rt, ok := ParseReferenceType(fmt.Sprint(t))
	if !ok {
		b.errors.Add(fmt.Errorf("Unknown reference type %v for edge %v", t, edge.Key()))
	}

	return rt, ok
}

/*
ExportJSON writes a graph as a JSON object with a list of nodes and edges.
Nodes and edges are written in a stable order.
*/
func ExportJSON(out io.Writer, g *Graph) error {
	var nodes, edges []map[string]interface{}

	for _, p := range g.order {
		node := data.NewGraphNode()
		node.SetAttr(data.NodeKey, p.id)
		node.SetAttr(data.NodeKind, data.KindPerson)
		node.SetAttr(data.NodeName, p.name)
		node.SetAttr(data.NodeSex, p.sex.String())
		if p.date != nil {
			node.SetAttr(data.NodeDate, p.date.String())
		}
		nodes = append(nodes, node.Data())
	}

	fids := make([]string, 0, len(g.families))
	for id := range g.families {
		fids = append(fids, id)
	}
	sort.Strings(fids)

	for _, id := range fids {
		f := g.families[id]

		node := data.NewGraphNode()
		node.SetAttr(data.NodeKey, f.id)
		node.SetAttr(data.NodeKind, data.KindFamily)
		if f.date != nil {
			node.SetAttr(data.NodeDate, f.date.String())
		}
		if f.separated {
			node.SetAttr(data.NodeSeparated, true)
		}
		nodes = append(nodes, node.Data())

		for _, p := range f.partners {
			role := f.roles[p.id]
			edges = append(edges, familyEdge(data.KindPartner, f, p, data.RolePartner, role).Data())
		}

		for _, c := range f.children {
			edges = append(edges, familyEdge(data.KindChild, f, c, data.RoleChild, f.childTypes[c.id]).Data())
		}
	}

	if nodes == nil {
		nodes = []map[string]interface{}{}
	}
	if edges == nil {
		edges = []map[string]interface{}{}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	err := enc.Encode(map[string]interface{}{"nodes": nodes, "edges": edges})

	return errors.Wrap(err, "Could not write graph")
}

/*
familyEdge creates an exchange edge between a family and a person.
*/
func familyEdge(kind string, f *Family, p *Person, role string, t ReferenceType) data.Edge {
	edge := data.NewGraphEdge()

	edge.SetAttr(data.NodeKey, fmt.Sprintf("%v-%v", f.id, p.id))
	edge.SetAttr(data.NodeKind, kind)
	edge.SetAttr(data.EdgeEnd1Key, f.id)
	edge.SetAttr(data.EdgeEnd1Kind, data.KindFamily)
	edge.SetAttr(data.EdgeEnd1Role, data.RoleFamily)
	edge.SetAttr(data.EdgeEnd2Key, p.id)
	edge.SetAttr(data.EdgeEnd2Kind, data.KindPerson)
	edge.SetAttr(data.EdgeEnd2Role, role)
	edge.SetAttr(data.EdgeType, t.String())

	return edge
}
