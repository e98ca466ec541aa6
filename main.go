package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/launchdarkly/go-datadriven/datasets"
	"github.com/launchdarkly/go-datadriven/ddtests"
	"github.com/launchdarkly/go-datadriven/framework"

	"github.com/fatih/color"
)

const defaultFetchTimeout = time.Second * 10

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	var params commandParams
	if !params.Read(args, os.Stderr) {
		return 1
	}
	if params.noColor {
		color.NoColor = true
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(os.Stdout, "", log.LstdFlags)
	}

	var suite *framework.Suite
	if params.builtin {
		suite = ddtests.NewTestSuite()
	} else {
		suite = framework.NewSuite("")
	}

	if params.dataset != "" {
		dataset, err := datasets.Load(params.dataset, params.fetchTimeout, mainDebugLogger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not load dataset: %s\n", err)
			return 1
		}
		if err := registerDryRun(suite, params.description, dataset, params.arity); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid dataset: %s\n", err)
			return 1
		}
	}

	fmt.Println()
	framework.PrintFilterDescription(os.Stdout, params.filters)

	fmt.Printf("Running %d test(s)\n", suite.Root().CountCases())

	testLogger := &ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
		ShowPassed:           params.debugAll,
	}
	config := framework.Config{
		Filter:       params.filters.AsFilter,
		AsyncTimeout: params.asyncTimeout,
	}
	results := framework.Run(suite, config, testLogger)

	fmt.Println()
	framework.PrintResults(os.Stdout, results)
	if !results.OK() {
		fmt.Println()
		fmt.Println("To run the failed tests again:")
		fmt.Printf("  %s\n", params.rerunCommand(args[0], results.Failures))
		return 1
	}
	return 0
}
