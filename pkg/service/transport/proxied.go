package transport

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/offboarding/pkg/utils/async"
	"github.com/secmon-lab/offboarding/pkg/utils/logging"
	"github.com/secmon-lab/offboarding/pkg/utils/safe"
)

// browserFormContentType is what a plain HTML form submission sends
const browserFormContentType = "application/x-www-form-urlencoded"

// ProxiedPost is fire-and-forget: Post returns nil as soon as the request
// is dispatched. The server-side outcome is never observed; failures are
// only logged.
type ProxiedPost struct {
	client  *http.Client
	timeout time.Duration
}

// NewProxiedPost creates the proxied strategy. Each background post is
// bounded by timeout.
func NewProxiedPost(client *http.Client, timeout time.Duration) *ProxiedPost {
	return &ProxiedPost{client: client, timeout: timeout}
}

func (p *ProxiedPost) Kind() Kind {
	return KindProxied
}

func (p *ProxiedPost) Post(ctx context.Context, endpoint string, form url.Values) error {
	body := form.Encode()

	async.Dispatch(ctx, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, p.timeout)
		defer cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(body))
		if err != nil {
			return goerr.Wrap(err, "failed to build proxied request")
		}
		req.Header.Set("Content-Type", browserFormContentType)

		resp, err := p.client.Do(req)
		if err != nil {
			return goerr.Wrap(err, "proxied post failed", goerr.V("host", endpointHost(endpoint)))
		}
		defer safe.Close(ctx, resp.Body)
		safe.Drain(ctx, resp.Body)

		logging.From(ctx).Debug("proxied post dispatched", "status", resp.StatusCode)
		return nil
	})

	return nil
}
