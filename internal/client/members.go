package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gophercloud/gophercloud"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"admintable/internal/cache"
	"admintable/internal/members"
)

// DefaultEndpoint serves the sample member list.
const DefaultEndpoint = "https://geektrust.s3-ap-southeast-1.amazonaws.com/adminui-problem/members.json"

// ErrLoadFailure matches every error returned by ListMembers.
var ErrLoadFailure = errors.New("failed to load members")

// LoadError reports a failed member fetch. It matches ErrLoadFailure and
// unwraps to the transport or schema error underneath.
type LoadError struct {
	Endpoint string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load members from %s: %v", e.Endpoint, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrLoadFailure) succeed.
func (e *LoadError) Is(target error) bool { return target == ErrLoadFailure }

// MembersClient fetches the member list from a static JSON endpoint.
type MembersClient interface {
	// ListMembers returns the whole member list, from cache when fresh.
	ListMembers(ctx context.Context) ([]members.Record, error)
	// Invalidate drops the cached list so the next call hits the network.
	Invalidate()
	Endpoint() string
}

// Options configures NewMembersClient.
type Options struct {
	Endpoint string
	Timeout  time.Duration
	CacheTTL time.Duration
	Logger   *zap.Logger
}

type membersClient struct {
	endpoint string
	http     http.Client
	cache    *cache.Cache[[]members.Record]
	group    singleflight.Group
	log      *zap.Logger
}

// NewMembersClient creates a MembersClient for opts.Endpoint.
func NewMembersClient(opts Options) (MembersClient, error) {
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	u, err := url.Parse(opts.Endpoint)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid endpoint %q", opts.Endpoint)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.Errorf("invalid endpoint %q: scheme must be http or https", opts.Endpoint)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &membersClient{
		endpoint: opts.Endpoint,
		http:     http.Client{Timeout: opts.Timeout},
		cache:    cache.New[[]members.Record](opts.CacheTTL),
		log:      opts.Logger.Named("client"),
	}, nil
}

func (c *membersClient) Endpoint() string { return c.endpoint }

// ListMembers returns the member list. Concurrent callers share one request.
// The shared request is detached from any single caller's context and is
// bounded by the client timeout instead; each caller still stops waiting when
// its own ctx is done.
func (c *membersClient) ListMembers(ctx context.Context) ([]members.Record, error) {
	if recs, ok := c.cache.Get(c.endpoint); ok {
		c.log.Debug("member list served from cache", zap.Int("count", len(recs)))
		return clone(recs), nil
	}
	if n := c.cache.PurgeExpired(); n > 0 {
		c.log.Debug("expired member lists dropped", zap.Int("purged", n), zap.Int("cached", c.cache.Len()))
	}

	fetchCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(c.endpoint, func() (interface{}, error) {
		recs, err := c.fetch(fetchCtx)
		if err != nil {
			return nil, err
		}
		c.cache.Set(c.endpoint, recs)
		return recs, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		err := &LoadError{Endpoint: c.endpoint, Err: ctx.Err()}
		c.log.Warn("member list wait abandoned", zap.Error(err))
		return nil, err
	case res = <-ch:
	}
	if res.Err != nil {
		c.log.Warn("member list fetch failed", zap.Error(res.Err))
		return nil, res.Err
	}
	recs := res.Val.([]members.Record)
	c.log.Info("member list fetched", zap.Int("count", len(recs)), zap.Bool("shared", res.Shared))
	return clone(recs), nil
}

// Invalidate drops every cached list so the next call hits the network.
func (c *membersClient) Invalidate() {
	c.cache.Clear()
}

func (c *membersClient) fetch(ctx context.Context) ([]members.Record, error) {
	provider := &gophercloud.ProviderClient{
		HTTPClient: c.http,
		Context:    ctx,
	}
	svc := &gophercloud.ServiceClient{
		ProviderClient: provider,
		Endpoint:       c.endpoint,
	}

	var body json.RawMessage
	_, err := svc.Get(c.endpoint, &body, &gophercloud.RequestOpts{
		OkCodes: []int{http.StatusOK},
	})
	if err != nil {
		return nil, &LoadError{Endpoint: c.endpoint, Err: err}
	}

	recs, err := members.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, &LoadError{Endpoint: c.endpoint, Err: err}
	}
	return recs, nil
}

func clone(recs []members.Record) []members.Record {
	out := make([]members.Record, len(recs))
	copy(out, recs)
	return out
}

// Ensure membersClient implements MembersClient.
var _ MembersClient = (*membersClient)(nil)
