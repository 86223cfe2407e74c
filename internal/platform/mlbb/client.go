package mlbb

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rezapahlevi/go-mlbb-cli/internal/logger"
)

// Default MLBB web API endpoints.
const (
	DefaultSendVcURL   = "https://api.mobilelegends.com/base/sendVc"
	DefaultLoginURL    = "https://api.mobilelegends.com/base/login"
	DefaultBaseInfoURL = "https://sg-api.mobilelegends.com/base/getBaseInfo"

	webOrigin  = "https://www.mobilelegends.com"
	webReferer = "https://www.mobilelegends.com/"

	defaultTimeout = 30 * time.Second
)

// Config holds the client's endpoint URLs and HTTP timeout. Zero values
// fall back to the production endpoints and a 30s timeout.
type Config struct {
	SendVcURL   string
	LoginURL    string
	BaseInfoURL string
	Timeout     time.Duration
}

// Client talks to the MLBB web API. It performs the verification-code
// request, the login exchange and the authenticated profile fetch. All
// operations are single synchronous round trips with no retry logic.
type Client struct {
	http *resty.Client
	log  *logger.Logger

	sendVcURL   string
	loginURL    string
	baseInfoURL string

	// requestID identifies this run in outbound requests and log entries.
	requestID string
}

// NewClient builds a Client with the browser header set the web login page
// sends, so requests are indistinguishable from the official flow.
func NewClient(cfg Config, log *logger.Logger) *Client {
	if cfg.SendVcURL == "" {
		cfg.SendVcURL = DefaultSendVcURL
	}
	if cfg.LoginURL == "" {
		cfg.LoginURL = DefaultLoginURL
	}
	if cfg.BaseInfoURL == "" {
		cfg.BaseInfoURL = DefaultBaseInfoURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if log == nil {
		log = logger.Nop()
	}

	requestID := uuid.New().String()

	cli := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeaders(browserHeaders()).
		SetHeader("X-Request-ID", requestID)

	return &Client{
		http:        cli,
		log:         log,
		sendVcURL:   cfg.SendVcURL,
		loginURL:    cfg.LoginURL,
		baseInfoURL: cfg.BaseInfoURL,
		requestID:   requestID,
	}
}

// RequestID returns the per-run identifier attached to outbound requests.
func (c *Client) RequestID() string {
	return c.requestID
}

// browserHeaders mirrors the headers Chrome sends from the MLBB web login
// page. The service rejects requests without the Origin/Referer pair.
func browserHeaders() map[string]string {
	return map[string]string{
		"Accept":             "*/*",
		"Accept-Language":    "en-US,en;q=0.9",
		"Content-Type":       "application/x-www-form-urlencoded; charset=UTF-8",
		"Origin":             webOrigin,
		"Referer":            webReferer,
		"Sec-Ch-Ua":          `"Google Chrome";v="131", "Chromium";v="131", "Not_A Brand";v="24"`,
		"Sec-Ch-Ua-Mobile":   "?0",
		"Sec-Ch-Ua-Platform": `"Windows"`,
		"Sec-Fetch-Dest":     "empty",
		"Sec-Fetch-Mode":     "cors",
		"Sec-Fetch-Site":     "same-site",
		"User-Agent":         "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
	}
}

// decodeEnvelope parses the common {code, message, data} wrapper.
func decodeEnvelope(resp *resty.Response) (*envelope, error) {
	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, fmt.Errorf("%w: decode response envelope: %v", ErrParse, err)
	}
	return &env, nil
}

// apiError packs the response status and envelope (when one was decoded)
// into an APIError for wrapping under a sentinel.
func apiError(resp *resty.Response, env *envelope) *APIError {
	e := &APIError{StatusCode: resp.StatusCode()}
	if env != nil {
		e.Code = env.Code
		e.Message = env.Message
	}
	return e
}
