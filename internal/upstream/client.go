package upstream

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"l4d2stats/internal/assert"
	"l4d2stats/internal/components/telemetry"
	"l4d2stats/internal/errcode"
	"l4d2stats/lib/restyutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"github.com/titanous/json5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/time/rate"
)

const (
	report_client_do          = "client.do"
	report_client_decode_json = "client.decode-json"
)

const (
	DefaultTimeoutSeconds = 300
	DefaultUserAgent      = "Mozilla/5.0 (Windows NT 10.0; WOW64) AppleWebKit/537.36" +
		"(KHTML, like Gecko) perfectworldarena/1.0.24060811   " +
		"Chrome/80.0.3987.163" +
		"Electron/8.5.5" +
		"Safari/537.36"
)

var tracer = otel.Tracer("l4d2stats/upstream")

type Options struct {
	TimeoutSeconds int    `json:"timeout_seconds" env:"TIMEOUT_SECONDS"`
	UserAgent      string `json:"user_agent" env:"USER_AGENT"`
	// RateLimit caps requests per second across all callers of a client, 0 disables it.
	RateLimit float64 `json:"rate_limit" env:"RATE_LIMIT"`
	// BypassCloudflare wraps the transport with browser-like TLS and headers.
	BypassCloudflare bool `json:"bypass_cloudflare" env:"BYPASS_CLOUDFLARE"`
	// InsecureSkipVerify disables TLS certificate checks, some community
	// stats sites serve expired certificates.
	InsecureSkipVerify bool `json:"insecure_skip_verify" env:"INSECURE_SKIP_VERIFY"`
	// DumpDir receives a transcript of every response when set.
	DumpDir string `json:"dump_dir" env:"DUMP_DIR"`
}

type Mode int

const (
	// ModeScrape returns the raw body.
	ModeScrape Mode = iota
	// ModeJSON decodes the body and unwraps error envelopes.
	ModeJSON
)

type Request struct {
	URL     string
	Method  string
	Headers map[string]string
	Params  map[string]string
	// JSON is sent as the request body, setting it forces POST.
	JSON any
	Form map[string]string
	// Timeout overrides the client timeout for this call when non-zero.
	Timeout time.Duration
	Mode    Mode
}

// Client issues single-shot requests to the stats sites. It never retries, a
// failed call is surfaced once through the returned Outcome.
type Client struct {
	http    *resty.Client
	tel     telemetry.API
	timeout time.Duration
}

func NewClient(opts Options, tel telemetry.API) (*Client, error) {
	assert.NotNil(tel, "telemetry")
	tel = telemetry.NewScopedAPI("upstream", tel)

	if opts.TimeoutSeconds <= 0 {
		opts.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}

	httpClient := resty.New()
	httpClient.SetHeader("user-agent", opts.UserAgent)
	transport, err := httpClient.Transport()
	if err != nil {
		return nil, fmt.Errorf("http transport: %w", err)
	}
	if opts.BypassCloudflare {
		// replaces transport.TLSClientConfig, so it must run before the TLS options below
		httpClient.SetTransport(cloudflarebp.AddCloudFlareByPass(transport))
	}
	if opts.InsecureSkipVerify {
		if transport.TLSClientConfig == nil {
			transport.TLSClientConfig = &tls.Config{}
		}
		transport.TLSClientConfig.InsecureSkipVerify = true
	}

	if opts.RateLimit > 0 {
		burst := int(opts.RateLimit)
		if burst < 1 {
			burst = 1
		}
		rateLimiter := rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
		httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			return rateLimiter.Wait(req.Context())
		})
	}

	telemetry.InstrumentResty(httpClient, tel)

	if opts.DumpDir != "" {
		out, err := restyutil.NewFilesystemOutput(opts.DumpDir)
		if err != nil {
			return nil, fmt.Errorf("create dump dir: %w", err)
		}
		restyutil.Dump(httpClient, out)
	}

	return &Client{
		http:    httpClient,
		tel:     tel,
		timeout: time.Duration(opts.TimeoutSeconds) * time.Second,
	}, nil
}

// Do performs req and classifies the response.
func (c *Client) Do(ctx context.Context, req Request) Outcome {
	ctx, span := tracer.Start(ctx, "client:Do")
	defer span.End()

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	if req.JSON != nil {
		method = http.MethodPost
	}
	span.SetAttributes(
		attribute.String("url", req.URL),
		attribute.String("method", method),
	)

	timeout := c.timeout
	if req.Timeout > 0 {
		timeout = req.Timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	r := c.http.R().
		SetContext(ctx).
		SetHeaders(req.Headers).
		SetQueryParams(req.Params)
	if req.JSON != nil {
		r.SetHeader("content-type", "application/json").SetBody(req.JSON)
	}
	if len(req.Form) > 0 {
		r.SetFormData(req.Form)
	}

	res, err := r.Execute(method, req.URL)
	if err != nil {
		span.SetStatus(codes.Error, "request failed")
		span.RecordError(err)
		c.tel.ReportWarning(report_client_do, fmt.Errorf("%s %s: %w", method, req.URL, err))
		out := codeOutcome(errcode.Unreachable)
		out.Err = err
		return out
	}

	span.SetAttributes(attribute.Int("status", res.StatusCode()))
	if res.StatusCode() == http.StatusNotFound {
		return codeOutcome(errcode.NotFound)
	}

	if req.Mode != ModeJSON {
		return Outcome{Kind: KindMarkup, Markup: res.Body()}
	}
	return c.decodeJSON(res.Body())
}

func (c *Client) decodeJSON(body []byte) Outcome {
	var payload any
	err := json.Unmarshal(body, &payload)
	if err != nil {
		c.tel.ReportDebug(report_client_decode_json, "strict decode failed", err)
		err = json5.Unmarshal(body, &payload)
	}
	if err != nil {
		c.tel.ReportWarning(report_client_decode_json, fmt.Errorf("undecodable body: %w", err))
		out := codeOutcome(errcode.Undecodable)
		out.Raw = string(body)
		return out
	}

	out := unwrapEnvelope(payload)
	if out.Kind == KindCode {
		c.tel.ReportWarning(report_client_decode_json, "error envelope", int(out.Code))
	}
	return out
}

// unwrapEnvelope looks for `result.error_code`, then a non-zero top-level
// `code`. A missing or empty `result` means the payload is returned untouched.
func unwrapEnvelope(payload any) Outcome {
	whole := Outcome{Kind: KindJSON, Payload: payload}

	obj, ok := payload.(map[string]any)
	if !ok {
		return whole
	}
	result, ok := obj["result"]
	if !ok || !truthy(result) {
		return whole
	}

	if fields, ok := result.(map[string]any); ok {
		if raw, ok := fields["error_code"]; ok {
			code, ok := toCode(raw)
			if !ok {
				return codeOutcome(errcode.Undecodable)
			}
			return codeOutcome(code)
		}
	}

	code, ok := toCode(obj["code"])
	if ok && code != 0 {
		return codeOutcome(code)
	}
	return whole
}

func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		return v != ""
	case map[string]any:
		return len(v) > 0
	case []any:
		return len(v) > 0
	}
	return true
}

func toCode(value any) (errcode.Code, bool) {
	switch v := value.(type) {
	case float64:
		return errcode.Code(int(v)), true
	case int:
		return errcode.Code(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return errcode.Code(n), true
	case string:
		var n int
		_, err := fmt.Sscanf(v, "%d", &n)
		if err != nil {
			return 0, false
		}
		return errcode.Code(n), true
	}
	return 0, false
}
