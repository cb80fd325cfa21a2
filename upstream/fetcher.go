package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"korea-realestate/auth"
	"korea-realestate/models"
	"korea-realestate/utils"
)

const (
	DefaultTimeout = 15 * time.Second
	maxBodyBytes   = 10 << 20
)

var (
	// data.go.kr gateways answer auth failures with an XML body even when JSON was requested.
	xmlAuthMsgRegexp    = regexp.MustCompile(`<returnAuthMsg>([^<]*)</returnAuthMsg>`)
	xmlReasonCodeRegexp = regexp.MustCompile(`<returnReasonCode>([^<]*)</returnReasonCode>`)
	xmlResultMsgRegexp  = regexp.MustCompile(`<resultMsg>([^<]*)</resultMsg>`)
	xmlResultCodeRegexp = regexp.MustCompile(`<resultCode>([^<]*)</resultCode>`)
)

// Fetcher performs one authenticated GET per call and decodes the JSON body.
// It never retries; callers that want resilience wrap it.
type Fetcher struct {
	client *http.Client
	logger *utils.Logger
}

// NewFetcher creates a Fetcher with the given timeout. timeout <= 0 uses
// DefaultTimeout.
func NewFetcher(timeout time.Duration, logger *utils.Logger) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// NewFetcherWithClient is used by tests to point at an httptest server.
func NewFetcherWithClient(client *http.Client, logger *utils.Logger) *Fetcher {
	return &Fetcher{client: client, logger: logger}
}

// Fetch issues the request and returns the decoded payload. Every failure is
// a *models.FetchError: transport and status failures are api_error, an
// undecodable body is parse_error.
func (f *Fetcher) Fetch(ctx context.Context, base string, params url.Values, cred auth.Credential) (any, error) {
	reqURL, err := BuildURL(base, params, cred)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, models.NewAPIError("", "build request: %v", err)
	}
	req.Header.Set("Accept", "application/json")
	if h, ok := cred.(auth.AuthorizationHeader); ok {
		req.Header.Set("Authorization", h.Value)
	}

	f.logger.Debug("[fetcher] GET %s", redact(reqURL, cred))
	start := time.Now()

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, models.NewAPIError("", "request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, models.NewAPIError("", "read response: %v", err)
	}
	f.logger.Debug("[fetcher] %d in %v (%d bytes)", resp.StatusCode, time.Since(start), len(body))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := fmt.Sprintf("HTTP %d", resp.StatusCode)
		if detail := snippet(body); detail != "" {
			msg += ": " + detail
		}
		return nil, models.NewAPIError(fmt.Sprint(resp.StatusCode), "%s", msg)
	}

	trimmed := bytes.TrimSpace(body)
	if bytes.HasPrefix(trimmed, []byte("<")) {
		return nil, xmlError(trimmed)
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, models.NewParseError("invalid JSON response: %v", err)
	}
	return payload, nil
}

// BuildURL appends params and, for service-key credentials, the serviceKey
// parameter. The key is appended outside url.Values so a key that is already
// percent-encoded is not encoded twice.
func BuildURL(base string, params url.Values, cred auth.Credential) (string, error) {
	if _, err := url.Parse(base); err != nil {
		return "", models.NewValidationError("invalid endpoint URL %q: %v", base, err)
	}

	var parts []string
	if sk, ok := cred.(auth.ServiceKey); ok {
		parts = append(parts, "serviceKey="+EncodeServiceKey(sk.Key))
	}
	if encoded := params.Encode(); encoded != "" {
		parts = append(parts, encoded)
	}
	if len(parts) == 0 {
		return base, nil
	}

	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + strings.Join(parts, "&"), nil
}

// EncodeServiceKey percent-encodes a raw key and leaves an already encoded
// key untouched.
func EncodeServiceKey(key string) string {
	if strings.Contains(key, "%") {
		if decoded, err := url.QueryUnescape(key); err == nil && decoded != key {
			return key
		}
	}
	return url.QueryEscape(key)
}

// xmlError classifies an XML body. Gateway auth failures and non-success
// result codes are api_error; anything else is an unreadable response.
func xmlError(body []byte) error {
	find := func(re *regexp.Regexp) string {
		if m := re.FindSubmatch(body); len(m) == 2 {
			return strings.TrimSpace(string(m[1]))
		}
		return ""
	}

	authMsg := find(xmlAuthMsgRegexp)
	reason := find(xmlReasonCodeRegexp)
	if authMsg != "" || reason != "" {
		if authMsg == "" {
			authMsg = "gateway rejected the request"
		}
		return models.NewAPIError(reason, "%s", authMsg)
	}

	code := find(xmlResultCodeRegexp)
	if code != "" && code != "00" && code != "000" {
		msg := find(xmlResultMsgRegexp)
		if msg == "" {
			msg = "upstream error"
		}
		return models.NewAPIError(code, "%s", msg)
	}
	return models.NewParseError("upstream returned XML instead of JSON")
}

func snippet(body []byte) string {
	s := strings.Join(strings.Fields(string(body)), " ")
	if r := []rune(s); len(r) > 200 {
		return string(r[:200]) + "..."
	}
	return s
}

func redact(u string, cred auth.Credential) string {
	if sk, ok := cred.(auth.ServiceKey); ok && sk.Key != "" {
		return strings.ReplaceAll(u, EncodeServiceKey(sk.Key), "***")
	}
	return u
}
