package datasets

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/launchdarkly/go-datadriven/datadriven"
	"github.com/launchdarkly/go-datadriven/framework"
)

const retryInterval = time.Millisecond * 100

// LoadFile reads a dataset file, choosing the format by its extension. Unrecognized
// extensions are read as JSON.
func LoadFile(path string) (datadriven.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	format, _ := FormatForPath(path)
	return Parse(data, format, path)
}

// Load reads a dataset from a local path, or with Fetch if location is an http or https URL.
func Load(location string, timeout time.Duration, logger framework.Logger) (datadriven.Dataset, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return Fetch(location, timeout, logger)
	}
	return LoadFile(location)
}

// Fetch retrieves a dataset with an HTTP GET. Connection errors are retried until timeout
// has elapsed, since the server providing the data may still be starting; an HTTP error
// status is not retried.
//
// The format comes from the response's Content-Type if it names JSON or YAML, otherwise
// from the URL's extension, otherwise JSON.
func Fetch(url string, timeout time.Duration, logger framework.Logger) (datadriven.Dataset, error) {
	if logger == nil {
		logger = framework.NullLogger()
	}
	deadline := time.Now().Add(timeout)
	for {
		resp, err := http.DefaultClient.Get(url)
		if err == nil {
			return readResponse(url, resp, logger)
		}
		if !time.Now().Before(deadline) {
			return nil, fmt.Errorf("timed out fetching dataset from %s, result of last query was: %w", url, err)
		}
		logger.Printf("Dataset request to %s failed, will retry: %s", url, err)
		time.Sleep(retryInterval)
	}
}

func readResponse(url string, resp *http.Response, logger framework.Logger) (datadriven.Dataset, error) {
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("dataset request to %s returned HTTP status %d", url, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	format := formatForResponse(url, resp.Header.Get("Content-Type"))
	logger.Printf("Fetched %d bytes of %s dataset from %s", len(data), format, url)
	return Parse(data, format, url)
}

func formatForResponse(url, contentType string) Format {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		switch {
		case mediaType == "application/json" || strings.HasSuffix(mediaType, "+json"):
			return JSON
		case strings.Contains(mediaType, "yaml"):
			return YAML
		}
	}
	format, _ := FormatForPath(url)
	return format
}
