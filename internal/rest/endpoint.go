package rest

import (
	"net/url"
	"strings"

	"github.com/go-faster/errors"
)

// Endpoint is the URL-forming half of a request.
type Endpoint struct {
	BaseURL string
	Path    string
	Query   map[string]string
}

// URL composes BaseURL, Path and Query into an absolute URL. Path is always
// joined below the base path, so "photos" and "/photos" resolve the same way.
// Percent-escapes in Path are kept as written and dot segments are rejected.
func (e Endpoint) URL() (*url.URL, error) {
	base, err := parseBase(e.BaseURL)
	if err != nil {
		return nil, err
	}

	path := strings.TrimSpace(e.Path)
	if path != "" {
		rel, err := url.Parse(path)
		if err != nil {
			return nil, errors.Wrapf(err, "parse path %q", e.Path)
		}
		if rel.IsAbs() || rel.Host != "" {
			return nil, errors.Errorf("path %q must be relative", e.Path)
		}
		if rel.RawQuery != "" || rel.Fragment != "" {
			return nil, errors.Errorf("path %q must not carry a query or fragment", e.Path)
		}
		escaped := rel.EscapedPath()
		for _, seg := range strings.Split(escaped, "/") {
			if dec, err := url.PathUnescape(seg); err != nil || dec == "." || dec == ".." {
				return nil, errors.Errorf("path %q: invalid segment %q", e.Path, seg)
			}
		}
		joined := base.JoinPath(escaped)
		if joined.EscapedPath() == base.EscapedPath() && strings.Trim(escaped, "/") != "" {
			return nil, errors.Errorf("path %q could not be joined to %q", e.Path, base.String())
		}
		base = joined
	}

	base.RawQuery = encodeQuery(e.Query)
	return base, nil
}

func parseBase(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, errors.New("base url is empty")
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, errors.Wrapf(err, "parse base url %q", raw)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return nil, errors.Errorf("base url %q: unsupported scheme %q", raw, u.Scheme)
	}
	if u.Host == "" {
		return nil, errors.Errorf("base url %q has no host", raw)
	}
	if u.Path == "" {
		u.Path = "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

// encodeQuery returns the parameters sorted by key (url.Values.Encode order).
func encodeQuery(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}
	values := make(url.Values, len(params))
	for k, v := range params {
		values.Set(k, v)
	}
	return values.Encode()
}
