package httpclient

import (
	"fmt"
	"net"
	"net/http"
	"time"
)

type Options struct {
	Timeout             time.Duration
	DialTimeout         time.Duration
	TLSHandshakeTimeout time.Duration
	MaxIdleConns        int
	IdleConnTimeout     time.Duration
	Transport           http.RoundTripper
}

type Option func(*Options)

func WithTimeout(d time.Duration) Option {
	return func(o *Options) { o.Timeout = d }
}

func WithDialTimeout(d time.Duration) Option {
	return func(o *Options) { o.DialTimeout = d }
}

func WithTLSHandshakeTimeout(d time.Duration) Option {
	return func(o *Options) { o.TLSHandshakeTimeout = d }
}

func WithMaxIdleConns(count int) Option {
	return func(o *Options) { o.MaxIdleConns = count }
}

func WithIdleConnTimeout(d time.Duration) Option {
	return func(o *Options) { o.IdleConnTimeout = d }
}

// WithTransport replaces the built transport, mostly for tests.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *Options) { o.Transport = rt }
}

// New creates an HTTP client using the provided options.
func New(opts ...Option) (*http.Client, error) {
	options := &Options{
		Timeout:             15 * time.Second,
		DialTimeout:         5 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
		MaxIdleConns:        4,
		IdleConnTimeout:     90 * time.Second,
	}

	for _, opt := range opts {
		opt(options)
	}

	if options.Timeout <= 0 {
		return nil, fmt.Errorf("invalid timeout %s: must be positive", options.Timeout)
	}

	transport := options.Transport
	if transport == nil {
		transport = &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout: options.DialTimeout,
			}).DialContext,
			TLSHandshakeTimeout: options.TLSHandshakeTimeout,
			MaxIdleConns:        options.MaxIdleConns,
			IdleConnTimeout:     options.IdleConnTimeout,
		}
	}

	return &http.Client{
		Timeout:   options.Timeout,
		Transport: transport,
	}, nil
}
