package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/wordleglobal/glossary/internal/dictionary/wikimedia"
)

const (
	DefaultNativeURLFormat = "https://%s.wiktionary.org"
	DefaultEnglishURL      = "https://en.wiktionary.org"
	DefaultUserAgent       = "WordleGlobal/1.0"
	DefaultTimeout         = 5 * time.Second
)

type Config struct {
	// NativeURLFormat is a format string taking the Wiktionary subdomain
	NativeURLFormat string
	EnglishURL      string
	UserAgent       string
	Timeout         time.Duration
}

func DefaultConfig() Config {
	return Config{
		NativeURLFormat: DefaultNativeURLFormat,
		EnglishURL:      DefaultEnglishURL,
		UserAgent:       DefaultUserAgent,
		Timeout:         DefaultTimeout,
	}
}

func newClient(config Config) *resty.Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent)
}

// NativeReader reads page extracts through the MediaWiki action API.
type NativeReader struct {
	config Config
	client *resty.Client
}

var _ NativeSource = (*NativeReader)(nil)

func NewNativeReader(config Config) *NativeReader {
	if config.NativeURLFormat == "" {
		config.NativeURLFormat = DefaultNativeURLFormat
	}
	return &NativeReader{
		config: config,
		client: newClient(config),
	}
}

func (r *NativeReader) baseURL(subdomain string) string {
	return fmt.Sprintf(r.config.NativeURLFormat, subdomain)
}

func (r *NativeReader) PageURL(subdomain, title string) string {
	return r.baseURL(subdomain) + "/wiki/" + url.PathEscape(title)
}

func (r *NativeReader) FetchExtracts(ctx context.Context, subdomain, title string) ([]string, error) {
	res, err := r.client.R().
		EnableTrace().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"action":      "query",
			"titles":      title,
			"prop":        "extracts",
			"explaintext": "1",
			"format":      "json",
		}).
		Get(r.baseURL(subdomain) + "/w/api.php")
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
	}

	var response wikimedia.QueryResponse
	if err := json.Unmarshal(res.Body(), &response); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return response.Extracts(), nil
}

// EnglishReader reads structured definitions through the Wiktionary REST API.
type EnglishReader struct {
	config Config
	client *resty.Client
}

var _ EnglishSource = (*EnglishReader)(nil)

func NewEnglishReader(config Config) *EnglishReader {
	if config.EnglishURL == "" {
		config.EnglishURL = DefaultEnglishURL
	}
	return &EnglishReader{
		config: config,
		client: newClient(config),
	}
}

func (r *EnglishReader) PageURL(title string) string {
	return strings.TrimRight(r.config.EnglishURL, "/") + "/wiki/" + url.PathEscape(title)
}

// FetchDefinitions returns the definitions of the lowercased word. A word without an
// entry yields an empty response and no error.
func (r *EnglishReader) FetchDefinitions(ctx context.Context, word string) (wikimedia.DefinitionResponse, error) {
	endpoint := strings.TrimRight(r.config.EnglishURL, "/") +
		"/api/rest_v1/page/definition/" + url.PathEscape(strings.ToLower(word))
	res, err := r.client.R().
		EnableTrace().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w", err)
	}
	if res.StatusCode() == http.StatusNotFound {
		return wikimedia.DefinitionResponse{}, nil
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
	}

	var response wikimedia.DefinitionResponse
	if err := json.Unmarshal(res.Body(), &response); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return response, nil
}
