package datadriven

const allowAsync = true

type adapterKind int

const (
	syncAdapter adapterKind = iota
	asyncAdapter
)

// caseRegistrar is the host function that registers one adapted variant.
type caseRegistrar func(r Registry, name string, bound invoker, kind adapterKind)

func registerFlat(r Registry, name string, bound invoker, kind adapterKind) {
	r.It(name, adapt(bound, kind))
}

func registerSkippedFlat(r Registry, name string, bound invoker, kind adapterKind) {
	r.XIt(name, adapt(bound, kind))
}

func registerGrouped(r Registry, name string, bound invoker, _ adapterKind) {
	r.Describe(name, func() { bound(nil, nil) })
}

func registerSkippedGrouped(r Registry, name string, bound invoker, _ adapterKind) {
	r.XDescribe(name, func() { bound(nil, nil) })
}

// All registers a group named description containing one active case per variant.
// The callback may be synchronous or asynchronous.
func All(r Registry, description string, dataset Dataset, fn Callback) (Suite, error) {
	return expand(r, registerFlat, description, dataset, fn, allowAsync)
}

// XAll is like All, but registers every case as skipped.
func XAll(r Registry, description string, dataset Dataset, fn Callback) (Suite, error) {
	return expand(r, registerSkippedFlat, description, dataset, fn, allowAsync)
}

// Using registers a group named description containing one nested group per variant. The
// callback runs as that nested group's body and registers cases of its own, so it must be
// synchronous.
func Using(r Registry, description string, dataset Dataset, fn Callback) (Suite, error) {
	return expand(r, registerGrouped, description, dataset, fn, !allowAsync)
}

// XUsing is like Using, but registers every nested group as skipped.
func XUsing(r Registry, description string, dataset Dataset, fn Callback) (Suite, error) {
	return expand(r, registerSkippedGrouped, description, dataset, fn, !allowAsync)
}

// MustAll is like All, but panics on error. It is meant for suite definitions where a bad
// dataset should abort registration visibly.
func MustAll(r Registry, description string, dataset Dataset, fn Callback) Suite {
	return must(All(r, description, dataset, fn))
}

// MustXAll is like XAll, but panics on error.
func MustXAll(r Registry, description string, dataset Dataset, fn Callback) Suite {
	return must(XAll(r, description, dataset, fn))
}

// MustUsing is like Using, but panics on error.
func MustUsing(r Registry, description string, dataset Dataset, fn Callback) Suite {
	return must(Using(r, description, dataset, fn))
}

// MustXUsing is like XUsing, but panics on error.
func MustXUsing(r Registry, description string, dataset Dataset, fn Callback) Suite {
	return must(XUsing(r, description, dataset, fn))
}

func must(s Suite, err error) Suite {
	if err != nil {
		panic(err)
	}
	return s
}

type variantCase struct {
	name  string
	bound invoker
	kind  adapterKind
}

func expand(
	r Registry,
	register caseRegistrar,
	description string,
	dataset Dataset,
	fn Callback,
	isAsyncAllowed bool,
) (Suite, error) {
	variants, err := normalize(description, dataset)
	if err != nil {
		return nil, err
	}
	if fn.err != nil {
		return nil, fn.err
	}

	cases := make([]variantCase, 0, len(variants))
	for i, args := range variants {
		kind, err := resolveAdapter(description, len(args), fn.Arity(), isAsyncAllowed)
		if err != nil {
			return nil, err
		}
		bound, err := fn.bind(description, i, args, kind == asyncAdapter)
		if err != nil {
			return nil, err
		}
		cases = append(cases, variantCase{
			name:  VariantDescription(description, i, args),
			bound: bound,
			kind:  kind,
		})
	}

	return r.Describe(description, func() {
		for _, c := range cases {
			register(r, c.name, c.bound, c.kind)
		}
	}), nil
}

// normalize returns the argument list of every element, failing at the first element whose
// arity differs from that of element 0.
func normalize(description string, dataset Dataset) ([][]interface{}, error) {
	if len(dataset) == 0 {
		return nil, ArgumentsMissingError{Description: description}
	}
	expectedArity := dataset[0].Arity()
	ret := make([][]interface{}, 0, len(dataset))
	for i, source := range dataset {
		args := source.Values()
		if len(args) != expectedArity {
			return nil, ArgumentCountMismatchError{
				Description: description,
				Expected:    expectedArity,
				Found:       len(args),
				Index:       i,
			}
		}
		ret = append(ret, args)
	}
	return ret, nil
}

// resolveAdapter decides from arity, declared and isAsyncAllowed alone whether a variant is
// adapted synchronously or asynchronously.
func resolveAdapter(description string, arity, declared int, isAsyncAllowed bool) (adapterKind, error) {
	switch {
	case declared == arity:
		return syncAdapter, nil
	case isAsyncAllowed && declared == arity+1:
		return asyncAdapter, nil
	default:
		return syncAdapter, ArgumentCountMismatchError{
			Description:     description,
			Expected:        arity,
			Index:           -1,
			Declared:        declared,
			AsyncNotAllowed: !isAsyncAllowed && declared == arity+1,
		}
	}
}

func adapt(bound invoker, kind adapterKind) TestFn {
	if kind == asyncAdapter {
		return AsyncFn(func(t T, done Done) { bound(t, done) })
	}
	return SyncFn(func(t T) { bound(t, nil) })
}
