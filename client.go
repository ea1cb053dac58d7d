package main

import (
	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
)

const clientTimeoutSeconds = 30

// Doer is the slice of an HTTP client a vote transaction needs.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientFactory builds a fresh client for one transaction attempt.
type ClientFactory func(platform PlatformProfile, proxyURL string) (Doer, error)

// NewTransactionClient builds a tls-client whose TLS fingerprint matches the
// platform's browser. No cookie jar is attached: the session cookie is
// threaded by hand so a rotated session replaces the old one.
func NewTransactionClient(platform PlatformProfile, proxyURL string) (Doer, error) {
	return newClient(nil, platform, proxyURL)
}

func newClient(logger tls_client.Logger, platform PlatformProfile, proxyURL string) (tls_client.HttpClient, error) {
	if logger == nil {
		logger = tls_client.NewNoopLogger()
	}

	options := []tls_client.HttpClientOption{
		tls_client.WithTimeoutSeconds(clientTimeoutSeconds),
		tls_client.WithClientProfile(platform.TLSProfile),
		tls_client.WithRandomTLSExtensionOrder(),
	}

	if proxyURL != "" {
		options = append(options, tls_client.WithProxyUrl(proxyURL))
	}

	return tls_client.NewHttpClient(logger, options...)
}
