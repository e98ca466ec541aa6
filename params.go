package main

import (
	"flag"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/launchdarkly/go-datadriven/framework"

	"github.com/alessio/shellescape"
)

type commandParams struct {
	dataset      string
	description  string
	arity        int
	builtin      bool
	asyncTimeout time.Duration
	fetchTimeout time.Duration
	filters      framework.RegexFilters
	debug        bool
	debugAll     bool
	noColor      bool
}

func (c *commandParams) Read(args []string, errOut io.Writer) bool {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&c.dataset, "dataset", "", "JSON or YAML dataset file or http(s) URL to expand as a dry run")
	fs.StringVar(&c.description, "description", "", "description for the dataset's group (default: the dataset location)")
	fs.IntVar(&c.arity, "arity", -1, "declared callback arity for the dry run (default: the dataset's arity)")
	fs.BoolVar(&c.builtin, "builtin", true, "run the built-in contract suite")
	fs.DurationVar(&c.asyncTimeout, "async-timeout", framework.DefaultAsyncTimeout, "how long an asynchronous case may take")
	fs.DurationVar(&c.fetchTimeout, "fetch-timeout", defaultFetchTimeout, "how long to keep retrying a dataset URL")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "show debug output for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "show debug output for all tests")
	fs.BoolVar(&c.noColor, "no-color", false, "disable colored output")

	if err := fs.Parse(args[1:]); err != nil {
		return false
	}
	if !c.builtin && c.dataset == "" {
		fmt.Fprintln(errOut, "nothing to run: -builtin=false requires -dataset")
		fs.Usage()
		return false
	}
	if c.description == "" {
		c.description = c.dataset
	}
	return true
}

// rerunCommand builds a shell command line that runs only the failed tests again.
func (c *commandParams) rerunCommand(program string, failures []framework.TestResult) string {
	var b commandBuilder
	b.add(program)
	if c.dataset != "" {
		b.add("-dataset", c.dataset)
		if c.description != c.dataset {
			b.add("-description", c.description)
		}
		if c.arity >= 0 {
			b.add("-arity", fmt.Sprint(c.arity))
		}
	}
	if !c.builtin {
		b.add("-builtin=false")
	}
	for _, f := range failures {
		b.add("-run", "^"+regexp.QuoteMeta(f.TestID.String())+"$")
	}
	return b.String()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
