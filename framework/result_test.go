package framework

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTestID(t *testing.T) {
	id := TestID{Path: []string{"a", "b"}}
	child := id.Plus("c")
	assert.Equal(t, "a/b/c", child.String())
	assert.Equal(t, "a/b", id.String())
}

func TestTestFailureError(t *testing.T) {
	f := TestFailure{ID: TestID{Path: []string{"x", "y"}}, Err: errors.New("bad")}
	assert.Equal(t, "[x/y]: bad", f.Error())
}

func TestPrintResults(t *testing.T) {
	results := Results{
		Tests: []TestResult{
			{TestID: TestID{Path: []string{"ok"}}},
			{TestID: TestID{Path: []string{"bad"}}},
			{TestID: TestID{Path: []string{"skip"}}, Skipped: true},
		},
		Failures: []TestResult{{TestID: TestID{Path: []string{"bad"}}}},
	}
	var buf bytes.Buffer
	PrintResults(&buf, results)
	assert.Equal(t, "FAILED TESTS:\n  * bad\n\n1 passed, 1 failed, 1 skipped\n", buf.String())
}

func TestCapturedOutputDump(t *testing.T) {
	when := time.Date(2021, 3, 4, 5, 6, 7, 8000000, time.UTC)
	output := CapturedOutput{{Time: when, Message: "hi"}}
	var buf bytes.Buffer
	output.Dump(&buf, "> ")
	assert.Equal(t, "> [2021-03-04 05:06:07.008] hi\n", buf.String())
}
