package main

import (
	"github.com/launchdarkly/go-datadriven/datadriven"
	"github.com/launchdarkly/go-datadriven/framework"

	"github.com/davecgh/go-spew/spew"
)

// registerDryRun expands a user-supplied dataset into s with a callback that only records
// each variant's arguments in the debug output. A declared arity of one more than the
// dataset's makes every case asynchronous; a negative arity means "same as the dataset".
func registerDryRun(s *framework.Suite, description string, dataset datadriven.Dataset, arity int) error {
	datasetArity := 0
	if len(dataset) > 0 {
		datasetArity = dataset[0].Arity()
	}
	if arity < 0 {
		arity = datasetArity
	}
	async := arity == datasetArity+1

	_, err := datadriven.All(s, description, dataset, datadriven.WithArity(arity, func(t datadriven.T, args ...interface{}) {
		values := args
		if async {
			values = args[:len(args)-1]
			defer args[len(args)-1].(datadriven.Done)()
		}
		if ft, ok := t.(*framework.T); ok {
			ft.Debug("arguments:\n%s", spew.Sdump(values...))
		}
	}))
	return err
}
