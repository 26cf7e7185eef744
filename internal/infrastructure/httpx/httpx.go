package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/cenkalti/backoff/v4"
)

// ErrDecode wraps response bodies that are not valid JSON for the target.
var ErrDecode = errors.New("decode response")

type StatusError struct {
	Code int
}

func (e *StatusError) Error() string { return fmt.Sprintf("status %d", e.Code) }

type Client struct {
	HTTP  *http.Client
	Token string
	// BackOff decides whether a failed attempt is repeated. Nil means a
	// single attempt.
	BackOff func() backoff.BackOff
}

func (c *Client) DoJSON(ctx context.Context, req *http.Request, out any) error {
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	req.Header.Set("Accept", "application/json")
	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	var policy backoff.BackOff = &backoff.StopBackOff{}
	if c.BackOff != nil {
		policy = c.BackOff()
	}

	op := func() error {
		resp, err := httpClient.Do(req.WithContext(ctx))
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode >= 500 {
			return &StatusError{Code: resp.StatusCode}
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(&StatusError{Code: resp.StatusCode})
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return backoff.Permanent(fmt.Errorf("%w: %v", ErrDecode, err))
		}
		return nil
	}
	return backoff.Retry(op, backoff.WithContext(policy, ctx))
}
