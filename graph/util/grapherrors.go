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
Package util contains utility classes for the person graph.

GraphError

Models a graph related error. Low-level errors should be wrapped in a GraphError
before they are returned to a client. Clients compare the Type field against
the error variables of this package.
*/
package util

import (
	"errors"
	"fmt"
)

/*
GraphError is a graph related error
*/
type GraphError struct {
	Type   error  // Error type (to be used for equal checks)
	Detail string // Details of this error
}

/*
Error returns a human-readable string representation of this error.
*/
func (ge *GraphError) Error() string {
	if ge.Detail != "" {
		return fmt.Sprintf("GraphError: %v (%v)", ge.Type, ge.Detail)
	}

	return fmt.Sprintf("GraphError: %v", ge.Type)
}

/*
IsType checks if a given error is a GraphError of a certain type.
*/
func IsType(err error, errType error) bool {
	ge, ok := err.(*GraphError)
	return ok && ge.Type == errType
}

/*
Graph construction related error types
*/
var (
	ErrInvalidData = errors.New("Invalid data")
	ErrReading     = errors.New("Could not read graph information")
)

/*
Graph query related error types
*/
var (
	ErrNotFound          = errors.New("Person not found")
	ErrInvalidTransition = errors.New("Invalid relationship path transition")
	ErrNoRelationship    = errors.New("No relationship found")
)
