/*
 * EliasDB
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package data contains classes and functions to handle graph exchange data.

Nodes

Nodes are items in the exchange format of the person graph. A node is either a
person or a family. The graphNode object is the minimal implementation of the
Node interface. Setting a nil value to an attribute is equivalent to removing
the attribute.

Edges

Edges connect nodes. A partner edge connects a person with a family they are a
partner in, a child edge connects a person with the family they are a child of.
The graphEdge object is the minimal implementation of the Edge interface.
*/
package data

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
)

/*
Node models nodes in the exchange format
*/
type Node interface {

	/*
	   Key returns a potentially non human-readable unique key for this node.
	*/
	Key() string

	/*
	   Name returns a human-readable name for this node.
	*/
	Name() string

	/*
	   Kind returns a human-readable kind for this node.
	*/
	Kind() string

	/*
		Data returns the node data of this node.
	*/
	Data() map[string]interface{}

	/*
		Attr returns an attribute of this node.
	*/
	Attr(attr string) interface{}

	/*
		SetAttr sets an attribute of this node. Setting a nil
		value removes the attribute.
	*/
	SetAttr(attr string, val interface{})

	/*
	   String returns a string representation of this node.
	*/
	String() string
}

/*
NodeKey is the key attribute for a node
*/
const NodeKey = "key"

/*
NodeName is the name attribute for a node
*/
const NodeName = "name"

/*
NodeKind is the kind attribute for a node
*/
const NodeKind = "kind"

/*
NodeSex is the sex attribute of a person node (M, F or U)
*/
const NodeSex = "sex"

/*
NodeDate is the date attribute of a node. For persons this is the earliest
known life event, for families the date of the union. The value is a string
of the form YYYY, YYYY-MM or YYYY-MM-DD.
*/
const NodeDate = "date"

/*
NodeSeparated is the flag attribute of a family node which marks separated
or divorced partners
*/
const NodeSeparated = "separated"

/*
Known node kinds
*/
const (
	KindPerson = "person"
	KindFamily = "family"
)

/*
graphNode data structure.
*/
type graphNode struct {
	data map[string]interface{} // Data which is held by this node
}

/*
NewGraphNode creates a new Node instance.
*/
func NewGraphNode() Node {
	return &graphNode{make(map[string]interface{})}
}

/*
NewGraphNodeFromMap creates a new Node instance.
*/
func NewGraphNodeFromMap(data map[string]interface{}) Node {
	return &graphNode{data}
}

/*
Key returns a potentially non human-readable unique key for this node.
*/
func (gn *graphNode) Key() string {
	return gn.stringAttr(NodeKey)
}

/*
Kind returns a human-readable kind for this node.
*/
func (gn *graphNode) Kind() string {
	return gn.stringAttr(NodeKind)
}

/*
Data returns the node data of this node.
*/
func (gn *graphNode) Data() map[string]interface{} {
	return gn.data
}

/*
Name returns a human-readable name for this node.
*/
func (gn *graphNode) Name() string {
	return gn.stringAttr(NodeName)
}

/*
Attr returns an attribute of this node.
*/
func (gn *graphNode) Attr(attr string) interface{} {
	return gn.data[attr]
}

/*
SetAttr sets an attribute of this node. Setting a nil
value removes the attribute.
*/
func (gn *graphNode) SetAttr(attr string, val interface{}) {
	if val != nil {
		gn.data[attr] = val
	} else {
		delete(gn.data, attr)
	}
}

/*
stringAttr returns the value of an attribute as a string. Or an
empty string if it can't be represented as a string.
*/
func (gn *graphNode) stringAttr(attr string) string {
	val, found := gn.data[attr]

	if st, ok := val.(string); found && ok {
		return st
	} else if st, ok := val.(fmt.Stringer); found && ok {
		return st.String()
	} else if found && val != nil {
		return fmt.Sprint(val)
	}

	return ""
}

/*
String returns a string representation of this node.
*/
func (gn *graphNode) String() string {
	return dataToString("GraphNode", gn)
}

/*
dataToString returns a string representation of a data item.
*/
func dataToString(dataType string, gn *graphNode) string {
	var buf bytes.Buffer
	attrlist := make([]string, 0, len(gn.data))
	maxlen := 0

	for attr := range gn.data {
		attrlist = append(attrlist, attr)
		if alen := len(attr); alen > maxlen {
			maxlen = alen
		}
	}

	sort.StringSlice(attrlist).Sort()

	buf.WriteString(dataType + ":\n")

	buf.WriteString(fmt.Sprintf("    %"+
		strconv.Itoa(maxlen)+"v : %v\n", "key", gn.Key()))
	buf.WriteString(fmt.Sprintf("    %"+
		strconv.Itoa(maxlen)+"v : %v\n", "kind", gn.Kind()))

	for _, attr := range attrlist {
		if attr == NodeKey || attr == NodeKind {
			continue
		}
		buf.WriteString(fmt.Sprintf("    %"+
			strconv.Itoa(maxlen)+"v : %v\n", attr, gn.data[attr]))
	}

	return buf.String()
}
