package sawmill

import "time"

type options struct {
	endpoint      string
	apiKey        string
	timeout       time.Duration
	messageFields []string
	staticSources []string
	storePath     string
	locale        string
}

// Option configures a Resolver.
type Option func(*options)

// WithEndpoint sets the base URL of the data-views and settings APIs.
// Default: http://localhost:5601.
func WithEndpoint(url string) Option {
	return func(o *options) {
		o.endpoint = url
	}
}

// WithAPIKey sets the Bearer token sent with every API request.
func WithAPIKey(key string) Option {
	return func(o *options) {
		o.apiKey = key
	}
}

// WithTimeout sets the HTTP timeout for API calls. Default: 30s.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithMessageFields overrides the fields tried when extracting the log
// message. Default: ["message"].
func WithMessageFields(fields ...string) Option {
	return func(o *options) {
		o.messageFields = fields
	}
}

// WithStaticSources serves the given index patterns as the log sources
// instead of fetching them from the settings API.
func WithStaticSources(patterns ...string) Option {
	return func(o *options) {
		o.staticSources = patterns
	}
}

// WithStorePath loads stored log views from the YAML file at path,
// making them available to ResolveID.
func WithStorePath(path string) Option {
	return func(o *options) {
		o.storePath = path
	}
}

// WithLocale localizes the default log view's display name for the given
// BCP 47 locale (e.g. "es-MX"). Default: English.
func WithLocale(locale string) Option {
	return func(o *options) {
		o.locale = locale
	}
}

func defaultOptions() options {
	return options{
		endpoint: "http://localhost:5601",
		timeout:  30 * time.Second,
	}
}
