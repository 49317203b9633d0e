package transport

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/secmon-lab/offboarding/pkg/utils/safe"
)

// FormContentType is the request content type of a direct post
const FormContentType = "application/x-www-form-urlencoded;charset=UTF-8"

// maxErrorBody caps how much of a rejected response is kept
const maxErrorBody = 64 * 1024

// DirectPost posts the form and fails on network faults or non-2xx status
type DirectPost struct {
	client *http.Client
}

// NewDirectPost creates the direct strategy
func NewDirectPost(client *http.Client) *DirectPost {
	return &DirectPost{client: client}
}

func (p *DirectPost) Kind() Kind {
	return KindDirect
}

func (p *DirectPost) Post(ctx context.Context, endpoint string, form url.Values) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return &TransportError{Cause: err}
	}
	req.Header.Set("Content-Type", FormContentType)

	resp, err := p.client.Do(req)
	if err != nil {
		return &TransportError{Cause: err}
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &TransportError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	safe.Drain(ctx, resp.Body)
	return nil
}
