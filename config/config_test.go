/*
 * EliasDB
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"testing"
)

const testconf = "testconfig"

func TestConfig(t *testing.T) {

	Config = nil

	if res := Int(MaxTraversalDepth); res != 100 {
		t.Error("Unexpected result:", res)
		return
	}

	ioutil.WriteFile(testconf, []byte(`{
    "MaxTraversalDepth": 12,
    "LogLevel": "debug"
}`), 0644)

	defer func() {
		if err := os.Remove(testconf); err != nil {
			fmt.Print("Could not remove test config file:", err.Error())
		}
	}()

	if err := LoadConfigFile(testconf); err != nil {
		t.Error(err)
		return
	}

	if res := Int(MaxTraversalDepth); res != 12 {
		t.Error("Unexpected result:", res)
		return
	}

	if res := Str(LogLevel); res != "debug" {
		t.Error("Unexpected result:", res)
		return
	}

	if res := Str(MergePolicy); res != DefaultConfig[MergePolicy] {
		t.Error("Unexpected result:", res)
		return
	}

	LoadDefaultConfig()

	if res := Str(LogLevel); res != "info" {
		t.Error("Unexpected result:", res)
		return
	}

	Config[RelationshipCacheMaxSize] = "abc"

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Error("Parsing an invalid int should panic")
			}
		}()
		Int(RelationshipCacheMaxSize)
	}()

	Config["flag"] = "true"

	if res := Bool("flag"); !res {
		t.Error("Unexpected result:", res)
		return
	}
}
