package syncfeed

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/dugoutlabs/dugout/internal/domain/syncevent"
	"github.com/dugoutlabs/dugout/internal/platform/logging"
	"github.com/dugoutlabs/dugout/internal/platform/resilience"
)

var errTransient = crerr.New("sync feed transient failure")

// Config configures the outbound sync feed webhook.
type Config struct {
	URL     string
	Token   string
	Timeout time.Duration
	Breaker resilience.BreakerConfig
}

// WebhookPublisher delivers editor sync events to the feed endpoint
// other scorekeeping clients subscribe to. Delivery is best effort: the
// editor keeps its local state regardless of the outcome here.
type WebhookPublisher struct {
	client         *fasthttp.Client
	url            string
	token          string
	timeout        time.Duration
	logger         *logging.Logger
	breaker        *resilience.Breaker
	breakerEnabled bool
}

func NewWebhookPublisher(cfg Config, logger *logging.Logger) (*WebhookPublisher, error) {
	endpoint, err := validateHTTPURL(cfg.URL)
	if err != nil {
		return nil, crerr.Wrap(err, "invalid sync feed URL")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}
	breakerCfg := resilience.NormalizeBreakerConfig(cfg.Breaker)

	return &WebhookPublisher{
		client: &fasthttp.Client{
			MaxIdleConnDuration: time.Minute,
		},
		url:            endpoint,
		token:          strings.TrimSpace(cfg.Token),
		timeout:        timeout,
		logger:         logger,
		breaker:        resilience.NewBreaker(breakerCfg),
		breakerEnabled: cfg.Breaker.Enabled,
	}, nil
}

// Publish posts one event to the feed endpoint.
func (p *WebhookPublisher) Publish(ctx context.Context, evt syncevent.Event) error {
	if p.breakerEnabled {
		if err := p.breaker.Allow(); err != nil {
			p.logger.WarnContext(ctx, "sync feed breaker rejected publish",
				"state", p.breaker.State(), "kind", evt.Kind)
			return fmt.Errorf("sync feed temporarily unavailable: %w", err)
		}
	}

	body, err := sonic.Marshal(evt)
	if err != nil {
		return crerr.Wrap(err, "marshal sync event")
	}

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("syncfeed.url", p.url),
			attribute.String("syncfeed.event_kind", string(evt.Kind)),
			attribute.String("syncfeed.request_body", previewBody(body, 4096)),
		)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(p.url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("X-Sync-Event", string(evt.Kind))
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}
	req.SetBody(body)

	if err := p.client.DoTimeout(req, resp, p.timeout); err != nil {
		callErr := fmt.Errorf("%w: post sync event kind=%s url=%s: %v", errTransient, evt.Kind, p.url, err)
		p.recordResult(callErr)
		return callErr
	}

	status := resp.StatusCode()
	if status/100 != 2 {
		raw := strings.TrimSpace(previewBody(resp.Body(), 4096))
		if isRetryableStatus(status) {
			callErr := fmt.Errorf("%w: post sync event kind=%s status=%d body=%s", errTransient, evt.Kind, status, raw)
			p.recordResult(callErr)
			return callErr
		}
		callErr := fmt.Errorf("post sync event kind=%s status=%d body=%s", evt.Kind, status, raw)
		p.recordResult(callErr)
		return callErr
	}

	p.logger.InfoContext(ctx, "sync event published",
		"kind", evt.Kind, "game_id", evt.GameID, "team_id", evt.TeamID)
	p.recordResult(nil)
	return nil
}

func (p *WebhookPublisher) recordResult(err error) {
	if !p.breakerEnabled {
		return
	}
	if err == nil {
		p.breaker.RecordSuccess()
		return
	}
	if stderrors.Is(err, errTransient) {
		p.breaker.RecordFailure()
		return
	}
	// Permanent rejections say nothing about endpoint health.
	p.breaker.RecordSuccess()
}

func isRetryableStatus(status int) bool {
	return status == fasthttp.StatusRequestTimeout ||
		status == fasthttp.StatusTooManyRequests ||
		status >= fasthttp.StatusInternalServerError
}

func validateHTTPURL(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", crerr.New("value is empty")
	}
	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("%q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", crerr.Newf("%q has empty host", candidate)
	}
	return strings.TrimRight(candidate, "/"), nil
}

func previewBody(body []byte, max int) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if len(body) > max {
		_, _ = buf.Write(body[:max])
		_, _ = buf.WriteString("...(truncated)")
	} else {
		_, _ = buf.Write(body)
	}
	return buf.String()
}
