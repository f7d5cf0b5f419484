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
Package config contains the configuration of the kinship engine.
*/
package config

import (
	"fmt"
	"strconv"

	"github.com/krotik/common/errorutil"
	"github.com/krotik/common/fileutil"
)

// Global variables
// ================

/*
DefaultConfigFile is the default config file which will be used to configure the kinship tool
*/
var DefaultConfigFile = "kinship.config.json"

/*
Known configuration options
*/
const (
	MaxTraversalDepth              = "MaxTraversalDepth"
	MergePolicy                    = "MergePolicy"
	RelationshipCacheMaxSize       = "RelationshipCacheMaxSize"
	RelationshipCacheMaxAgeSeconds = "RelationshipCacheMaxAgeSeconds"
	LogLevel                       = "LogLevel"
)

/*
DefaultConfig is the defaut configuration
*/
var DefaultConfig = map[string]interface{}{
	MaxTraversalDepth:              "100",
	MergePolicy:                    "skip-all-spouse-when-exists-any-non-spouse",
	RelationshipCacheMaxSize:       "1000",
	RelationshipCacheMaxAgeSeconds: "0",
	LogLevel:                       "info",
}

/*
Config is the actual config which is used
*/
var Config map[string]interface{}

/*
LoadConfigFile loads a given config file. If the config file does not exist it is
created with the default options.
*/
func LoadConfigFile(configfile string) error {
	var err error

	Config, err = fileutil.LoadConfig(configfile, DefaultConfig)

	return err
}

/*
LoadDefaultConfig loads the default configuration.
*/
func LoadDefaultConfig() {
	data := make(map[string]interface{})
	for k, v := range DefaultConfig {
		data[k] = v
	}

	Config = data
}

/*
ensureLoaded makes sure there is a configuration in use.
*/
func ensureLoaded() {
	if Config == nil {
		LoadDefaultConfig()
	}
}

// Helper functions
// ================

/*
Str reads a config value as a string value.
*/
func Str(key string) string {
	ensureLoaded()
	return fmt.Sprint(Config[key])
}

/*
Int reads a config value as an int value.
*/
func Int(key string) int64 {
	ensureLoaded()

	ret, err := strconv.ParseInt(fmt.Sprint(Config[key]), 10, 64)

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("Could not parse config key %v: %v", key, err))

	return ret
}

/*
Bool reads a config value as a boolean value.
*/
func Bool(key string) bool {
	ensureLoaded()

	ret, err := strconv.ParseBool(fmt.Sprint(Config[key]))

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("Could not parse config key %v: %v", key, err))

	return ret
}
