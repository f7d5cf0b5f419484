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
Kinship computes how persons of a family graph are related to each other.

The graph is read from a JSON file with a list of person and family nodes
which are connected by partner and child edges. Without a target person the
tool prints all relationships of the root person in presentation order.
With a target person it prints the closest relationship between the two.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/krotik/common/fileutil"
	"github.com/krotik/common/logutil"
	"github.com/krotik/common/stringutil"
	"github.com/krotik/kinship/config"
	"github.com/krotik/kinship/graph"
	"github.com/krotik/kinship/kinship"
)

func main() {

	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)

	graphFile := flag.String("graph", "", "JSON file with the person graph")
	rootID := flag.String("root", "", "Id of the root person")
	targetID := flag.String("target", "", "Id of a target person (optional)")
	policy := flag.String("policy", "", "Merge policy (overrides the config value)")
	configFile := flag.String("config", config.DefaultConfigFile, "Configuration file")

	showHelp := flag.Bool("help", false, "Show this help message")

	flag.Usage = func() {
		fmt.Println()
		fmt.Println(fmt.Sprintf("Usage of %s -graph <file> -root <id> [options]", os.Args[0]))
		fmt.Println()
		flag.PrintDefaults()
		fmt.Println()
	}

	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	if *showHelp || *graphFile == "" || *rootID == "" {
		flag.Usage()
		return
	}

	if err := run(os.Stdout, *graphFile, *rootID, *targetID, *policy, *configFile); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

/*
run executes a single command line invocation.
*/
func run(out io.Writer, graphFile, rootID, targetID, policy, configFile string) error {

	if ok, _ := fileutil.PathExists(configFile); ok {
		if err := config.LoadConfigFile(configFile); err != nil {
			return err
		}
	} else {
		config.LoadDefaultConfig()
	}

	if policy != "" {
		config.Config[config.MergePolicy] = policy
	}

	setupLogging(config.Str(config.LogLevel), os.Stderr)

	f, err := os.Open(graphFile)
	if err != nil {
		return err
	}
	defer f.Close()

	g, err := graph.ImportJSON(f)
	if err != nil {
		return err
	}

	e := kinship.NewEngine(g)

	if targetID != "" {
		return printRelationship(out, e, rootID, targetID)
	}

	return printTree(out, e, rootID)
}

/*
setupLogging attaches a console sink at a given log level. Debug messages of
the graph and kinship packages are only published at debug level.
*/
func setupLogging(level string, out io.Writer) {
	loglevel := logutil.StringToLoglevel(level)

	logutil.ClearLogSinks()
	logutil.GetLogger("").AddLogSink(loglevel, logutil.ConsoleFormatter(), out)

	graph.LogDebug = graph.LogNull
	kinship.LogDebug = kinship.LogNull

	if loglevel == logutil.Debug {
		graph.LogDebug = logutil.GetLogger("kinship.graph").Debug
		kinship.LogDebug = logutil.GetLogger("kinship").Debug
	}
}

/*
printRelationship prints the closest relationship between two persons.
*/
func printRelationship(out io.Writer, e *kinship.Engine, rootID, targetID string) error {

	rel, err := e.Between(rootID, targetID)
	if err != nil {
		return err
	}

	root, _ := e.Graph().Person(rootID)
	target, _ := e.Graph().Person(targetID)

	fmt.Fprintln(out, fmt.Sprintf("%v is the %v of %v",
		target, e.Describe(targetID, rel.Path), root))
	fmt.Fprintln(out, fmt.Sprintf("%v %v", rel.Classification, rel.Path))

	printFamilies(out, e.Graph(), root, target)

	return nil
}

/*
printFamilies prints the families of a root person (as child or partner)
which the target person is a member of.
*/
func printFamilies(out io.Writer, g *graph.Graph, root, target *graph.Person) {

	for _, f := range append(g.ParentFamilies(root), g.Families(root)...) {

		if !f.HasChild(target) && f.PartnerRole(target) == graph.RefFamily {
			continue
		}

		var members []string

		for _, p := range f.Partners() {
			members = append(members, fmt.Sprintf("%v %v", f.PartnerRole(p), p.ID()))
		}
		for _, c := range f.Children() {
			members = append(members, fmt.Sprintf("%v %v", f.ChildType(c), c.ID()))
		}

		fmt.Fprintln(out, fmt.Sprintf("Family %v: %v", f.ID(), strings.Join(members, ", ")))
	}
}

/*
printTree prints all relationships of a root person.
*/
func printTree(out io.Writer, e *kinship.Engine, rootID string) error {

	tree, err := e.Tree(rootID)
	if err != nil {
		return err
	}

	for _, grp := range tree.Groups {
		p, _ := e.Graph().Person(grp.TargetID)

		line := fmt.Sprintf("%4v %v: %v", grp.Index, p, e.Describe(grp.TargetID, grp.Primary))

		for _, sp := range grp.Secondary {
			line += fmt.Sprintf(", %v", e.Describe(grp.TargetID, sp))
		}

		fmt.Fprintln(out, line)
	}

	s := tree.Summary

	fmt.Fprintln(out)
	fmt.Fprintln(out, fmt.Sprintf("%v related person%v (%v)",
		s.Persons, stringutil.Plural(s.Persons), s.Generations))

	if s.Persons > 0 {
		fmt.Fprintln(out, fmt.Sprintf("Most distant: %v (%v)",
			s.MostDistantID, e.Describe(s.MostDistantID, s.MostDistant)))
	}

	return nil
}
