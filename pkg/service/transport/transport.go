package transport

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/offboarding/pkg/domain/model"
	"github.com/secmon-lab/offboarding/pkg/utils/logging"
)

// Kind identifies a transport strategy
type Kind string

const (
	// KindDirect posts the form and inspects the response
	KindDirect Kind = "direct"
	// KindProxied posts the form in the background and never reads the
	// response. Used for spreadsheet script backends that do not expose
	// their responses to cross-origin callers.
	KindProxied Kind = "proxied"
)

func (k Kind) String() string {
	return string(k)
}

const (
	// DefaultTimeout bounds a direct post
	DefaultTimeout = 30 * time.Second
	// DefaultProxiedTimeout bounds a background proxied post
	DefaultProxiedTimeout = 30 * time.Second
)

// proxiedHosts are script hosting domains of forms-as-a-service backends
var proxiedHosts = []string{
	"script.google.com",
	"script.googleusercontent.com",
}

// Classify picks the strategy for endpoint by its host. Hosts equal to or
// under a known script hosting domain are proxied.
func Classify(endpoint string) Kind {
	u, err := url.Parse(endpoint)
	if err != nil {
		return KindDirect
	}
	host := strings.ToLower(u.Hostname())
	for _, h := range proxiedHosts {
		if host == h || strings.HasSuffix(host, "."+h) {
			return KindProxied
		}
	}
	return KindDirect
}

// Strategy delivers an encoded form to an endpoint
type Strategy interface {
	Kind() Kind
	Post(ctx context.Context, endpoint string, form url.Values) error
}

// Service submits confirmed offboarding requests
type Service interface {
	Submit(ctx context.Context, sub *model.Submission) error
	Configured() bool
	Kind() Kind
}

// Client implements Service for a single endpoint fixed at construction
type Client struct {
	endpoint       string
	httpClient     *http.Client
	proxiedTimeout time.Duration
	strategies     map[Kind]Strategy
}

var _ Service = &Client{}

// Option is a functional option for Client configuration
type Option func(*Client)

// WithHTTPClient replaces the HTTP client used by both strategies
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithProxiedTimeout sets the deadline of background proxied posts
func WithProxiedTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.proxiedTimeout = d
	}
}

// WithStrategy overrides the strategy registered for s.Kind()
func WithStrategy(s Strategy) Option {
	return func(c *Client) {
		c.strategies[s.Kind()] = s
	}
}

// New creates a client for endpoint. An empty endpoint is accepted; Submit
// then fails with ErrNotConfigured.
func New(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint:       strings.TrimSpace(endpoint),
		httpClient:     &http.Client{Timeout: DefaultTimeout},
		proxiedTimeout: DefaultProxiedTimeout,
		strategies:     make(map[Kind]Strategy),
	}
	for _, opt := range opts {
		opt(c)
	}

	if _, ok := c.strategies[KindDirect]; !ok {
		c.strategies[KindDirect] = NewDirectPost(c.httpClient)
	}
	if _, ok := c.strategies[KindProxied]; !ok {
		c.strategies[KindProxied] = NewProxiedPost(c.httpClient, c.proxiedTimeout)
	}
	return c
}

// Configured reports whether an endpoint is set
func (c *Client) Configured() bool {
	return c.endpoint != ""
}

// Kind returns the strategy the endpoint is classified into
func (c *Client) Kind() Kind {
	return Classify(c.endpoint)
}

// Submit sends sub to the endpoint. There is no retry; a failed submission
// is reported once and dropped.
func (c *Client) Submit(ctx context.Context, sub *model.Submission) error {
	if !c.Configured() {
		return goerr.Wrap(ErrNotConfigured, "cannot submit offboarding request")
	}

	kind := c.Kind()
	strategy := c.strategies[kind]

	logging.From(ctx).Info("submitting offboarding request",
		"transport", kind,
		"host", endpointHost(c.endpoint),
		"employee_id", sub.EmployeeID,
	)

	if err := strategy.Post(ctx, c.endpoint, sub.Values()); err != nil {
		return goerr.Wrap(err, "failed to submit offboarding request",
			goerr.V("transport", kind),
			goerr.V("host", endpointHost(c.endpoint)),
		)
	}
	return nil
}

// endpointHost keeps tokens in paths and query strings out of logs
func endpointHost(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil {
		return ""
	}
	return u.Host
}
