package datasets

import (
	"errors"
	"testing"

	"github.com/launchdarkly/go-datadriven/datadriven"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	ds, err := Parse([]byte(`[1, "", [2, 4], {"name": "Aaa"}, null, [[]]]`), JSON, "test.json")
	require.NoError(t, err)
	require.Len(t, ds, 6)

	assert.Equal(t, []interface{}{float64(1)}, ds[0].Values())
	assert.Equal(t, []interface{}{""}, ds[1].Values())
	assert.True(t, ds[2].IsSequence())
	assert.Equal(t, []interface{}{float64(2), float64(4)}, ds[2].Values())
	assert.Equal(t, []interface{}{map[string]interface{}{"name": "Aaa"}}, ds[3].Values())
	assert.Equal(t, []interface{}{nil}, ds[4].Values())
	assert.True(t, ds[5].IsSequence())
	assert.Equal(t, 1, ds[5].Arity())
}

func TestParseYAML(t *testing.T) {
	doc := `
- [2, 4]
- [1, 8]
- ["a", "b"]
`
	ds, err := Parse([]byte(doc), YAML, "test.yaml")
	require.NoError(t, err)
	require.Len(t, ds, 3)
	for _, source := range ds {
		assert.Equal(t, 2, source.Arity())
	}
	assert.EqualValues(t, 2, ds[0].Values()[0])
	assert.EqualValues(t, 8, ds[1].Values()[1])
	assert.Equal(t, "b", ds[2].Values()[1])
}

func TestParsedNumbersConvertToCallbackTypes(t *testing.T) {
	for _, p := range []struct {
		format Format
		doc    string
	}{
		{JSON, `[[2, 4], [1, 8]]`},
		{YAML, "- [2, 4]\n- [1, 8]\n"},
	} {
		ds, err := Parse([]byte(p.doc), p.format, "doc")
		require.NoError(t, err)

		var sums []int
		_, err = datadriven.Using(nopRegistry{}, "sums", ds, datadriven.Func(func(x, y int) {
			sums = append(sums, x+y)
		}))
		require.NoError(t, err, "format %s", p.format)
		assert.Equal(t, []int{6, 9}, sums)
	}
}

func TestParseRejectsNonArrays(t *testing.T) {
	for _, p := range []struct {
		format Format
		doc    string
	}{
		{JSON, `{}`},
		{JSON, `[]`},
		{JSON, `"x"`},
		{YAML, `a: b`},
	} {
		_, err := Parse([]byte(p.doc), p.format, "bad dataset")
		assert.Equal(t, datadriven.ArgumentsMissingError{Description: "bad dataset"}, err, "%s %q", p.format, p.doc)
	}
}

func TestParseMalformedDocument(t *testing.T) {
	_, err := Parse([]byte(`[1,`), JSON, "broken.json")
	var fe FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, JSON, fe.Format)
	assert.Equal(t, "broken.json", fe.Source)
	assert.NotNil(t, errors.Unwrap(err))

	_, err = Parse([]byte("- [1, 2\n"), YAML, "broken.yaml")
	assert.True(t, errors.As(err, &fe))
}

func TestParseUnknownFormat(t *testing.T) {
	_, err := Parse([]byte(`[1]`), Format("toml"), "x")
	assert.Error(t, err)
}

func TestFormatForPath(t *testing.T) {
	for _, p := range []struct {
		path   string
		format Format
		known  bool
	}{
		{"a.json", JSON, true},
		{"a.JSON", JSON, true},
		{"dir/a.yaml", YAML, true},
		{"a.yml", YAML, true},
		{"http://host/data.yml?x=1", YAML, true},
		{"a.txt", JSON, false},
		{"noext", JSON, false},
	} {
		format, known := FormatForPath(p.path)
		assert.Equal(t, p.format, format, p.path)
		assert.Equal(t, p.known, known, p.path)
	}
}

type nopRegistry struct{}

func (nopRegistry) Describe(name string, body func()) datadriven.Suite {
	body()
	return name
}

func (nopRegistry) XDescribe(name string, body func()) {
	body()
}

func (nopRegistry) It(name string, fn datadriven.TestFn) {}

func (nopRegistry) XIt(name string, fn datadriven.TestFn) {}
