/*
 * EliasDB
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package data

import "fmt"

/*
Edge models edges in the exchange format
*/
type Edge interface {
	Node

	/*
		End1Key returns the key of the first end of this edge.
	*/
	End1Key() string

	/*
		End1Kind returns the kind of the first end of this edge.
	*/
	End1Kind() string

	/*
		End1Role returns the role of the first end of this edge.
	*/
	End1Role() string

	/*
		End2Key returns the key of the second end of this edge.
	*/
	End2Key() string

	/*
		End2Kind returns the kind of the second end of this edge.
	*/
	End2Kind() string

	/*
		End2Role returns the role of the second end of this edge.
	*/
	End2Role() string

	/*
		Spec returns the spec for this edge from the view of a specified endpoint.
		A spec is always of the form: <End Role>:<Kind>:<End Role>:<Other node kind>
	*/
	Spec(key string) string

	/*
		EndKeyByRole returns the key of the endpoint which has a given role.
	*/
	EndKeyByRole(role string) string
}

/*
EdgeEnd1Key is the key of the first end
*/
const EdgeEnd1Key = "end1key"

/*
EdgeEnd1Kind is the kind of the first end
*/
const EdgeEnd1Kind = "end1kind"

/*
EdgeEnd1Role is the role of the first end
*/
const EdgeEnd1Role = "end1role"

/*
EdgeEnd2Key is the key of the second end
*/
const EdgeEnd2Key = "end2key"

/*
EdgeEnd2Kind is the kind of the second end
*/
const EdgeEnd2Kind = "end2kind"

/*
EdgeEnd2Role is the role of the second end
*/
const EdgeEnd2Role = "end2role"

/*
EdgeType is the attribute of an edge which holds the reference type of the
link (e.g. HUSB or ADOPTED_CHILD)
*/
const EdgeType = "type"

/*
Known edge kinds and end roles
*/
const (
	KindPartner = "partner"
	KindChild   = "child"

	RolePartner = "partner"
	RoleChild   = "child"
	RoleFamily  = "family"
)

/*
graphEdge data structure.
*/
type graphEdge struct {
	*graphNode
}

/*
NewGraphEdge creates a new Edge instance.
*/
func NewGraphEdge() Edge {
	return &graphEdge{&graphNode{make(map[string]interface{})}}
}

/*
NewGraphEdgeFromNode creates a new Edge instance.
*/
func NewGraphEdgeFromNode(node Node) Edge {
	if node == nil {
		return nil
	}
	return &graphEdge{&graphNode{node.Data()}}
}

/*
End1Key returns the key of the first end of this edge.
*/
func (ge *graphEdge) End1Key() string {
	return ge.stringAttr(EdgeEnd1Key)
}

/*
End1Kind returns the kind of the first end of this edge.
*/
func (ge *graphEdge) End1Kind() string {
	return ge.stringAttr(EdgeEnd1Kind)
}

/*
End1Role returns the role of the first end of this edge.
*/
func (ge *graphEdge) End1Role() string {
	return ge.stringAttr(EdgeEnd1Role)
}

/*
End2Key returns the key of the second end of this edge.
*/
func (ge *graphEdge) End2Key() string {
	return ge.stringAttr(EdgeEnd2Key)
}

/*
End2Kind returns the kind of the second end of this edge.
*/
func (ge *graphEdge) End2Kind() string {
	return ge.stringAttr(EdgeEnd2Kind)
}

/*
End2Role returns the role of the second end of this edge.
*/
func (ge *graphEdge) End2Role() string {
	return ge.stringAttr(EdgeEnd2Role)
}

/*
Spec returns the spec for this edge from the view of a specified endpoint.
A spec is always of the form: <End Role>:<Kind>:<End Role>:<Other node kind>
*/
func (ge *graphEdge) Spec(key string) string {
	if key == ge.End1Key() {
		return fmt.Sprintf("%s:%s:%s:%s", ge.End1Role(), ge.Kind(), ge.End2Role(), ge.End2Kind())
	} else if key == ge.End2Key() {
		return fmt.Sprintf("%s:%s:%s:%s", ge.End2Role(), ge.Kind(), ge.End1Role(), ge.End1Kind())
	}
	return ""
}

/*
EndKeyByRole returns the key of the endpoint which has a given role. Returns
an empty string if no end has the role.
*/
func (ge *graphEdge) EndKeyByRole(role string) string {
	if ge.End1Role() == role {
		return ge.End1Key()
	} else if ge.End2Role() == role {
		return ge.End2Key()
	}
	return ""
}

/*
String returns a string representation of this edge.
*/
func (ge *graphEdge) String() string {
	return dataToString("GraphEdge", ge.graphNode)
}
