package mwapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
)

// wikitextPath 响应中唯一读取的字段路径。
const wikitextPath = "expandtemplates.wikitext"

// maxErrorBody 非 2xx 响应写入错误信息的最大字节数。
const maxErrorBody = 512

// Client 模板展开客户端，零状态，可并发使用。
type Client struct {
	endpoint   string
	httpClient *http.Client
	userAgent  string
}

// Endpoint 返回语言版本对应的 api.php 地址。
//
// 示例：Endpoint("sv") → https://sv.wikipedia.org/w/api.php
func Endpoint(lang string) string {
	return "https://" + lang + ".wikipedia.org/w/api.php"
}

// ExpandParams 返回 expandtemplates 请求的查询参数。
//
// 固定为 action、text、prop、format 四项，template 原样写入 text。
func ExpandParams(template string) url.Values {
	return url.Values{
		"action": {"expandtemplates"},
		"text":   {template},
		"prop":   {"wikitext"},
		"format": {"json"},
	}
}

// New 创建客户端。
//
// lang 为语言子域名（如 "sv"、"en"），仅在未通过 [WithEndpoint] 指定地址时必填。
func New(lang string, opts ...Option) (*Client, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	endpoint := o.endpoint
	if endpoint == "" {
		lang = strings.TrimSpace(lang)
		if lang == "" {
			return nil, errors.New("mwapi: language code is required")
		}
		endpoint = Endpoint(lang)
	}
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return nil, fmt.Errorf("mwapi: invalid endpoint %q: %w", endpoint, err)
	}

	httpClient := http.DefaultClient
	if o.httpClient != nil {
		httpClient = o.httpClient
	}
	if o.timeout > 0 {
		// 复制一份，避免修改调用方传入的 client
		c := *httpClient
		c.Timeout = o.timeout
		httpClient = &c
	}

	ua := o.userAgent
	if ua == "" {
		ua = DefaultUserAgent
	}

	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
		userAgent:  ua,
	}, nil
}

// Endpoint 返回客户端实际请求的地址。
func (c *Client) Endpoint() string {
	return c.endpoint
}

// ExpandTemplates 展开 template 并返回 wikitext。
//
// 只发送一个 GET 请求；返回的错误可用 errors.Is 匹配
// [ErrRequestFailed] 或 [ErrUnexpectedResponseShape]。
func (c *Client) ExpandTemplates(ctx context.Context, template string) (string, error) {
	if template == "" {
		return "", errors.New("mwapi: template text is required")
	}

	body, err := c.get(ctx, ExpandParams(template))
	if err != nil {
		return "", err
	}

	return ExtractWikitext(body)
}

func (c *Client) get(ctx context.Context, params url.Values) ([]byte, error) {
	reqURL := c.endpoint + "?" + params.Encode()
	if strings.Contains(c.endpoint, "?") {
		reqURL = c.endpoint + "&" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrRequestFailed, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	slog.Debug("Sending expandtemplates request", "endpoint", c.endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrRequestFailed, err)
	}

	slog.Debug("Received expandtemplates response", "status", resp.StatusCode, "bytes", len(data))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet := data
		if len(snippet) > maxErrorBody {
			snippet = snippet[:maxErrorBody]
		}

		return nil, fmt.Errorf("%w: http %d: %s", ErrRequestFailed, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	return data, nil
}

// ExtractWikitext 从 expandtemplates 响应体中读取 expandtemplates.wikitext。
//
// 响应包含 MediaWiki error 对象时，错误信息会带上其 code 与 info。
func ExtractWikitext(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("%w: body is not valid JSON", ErrUnexpectedResponseShape)
	}

	if apiErr := gjson.GetBytes(body, "error"); apiErr.Exists() {
		return "", fmt.Errorf("%w: api error %s: %s",
			ErrUnexpectedResponseShape, apiErr.Get("code").String(), apiErr.Get("info").String())
	}

	if !gjson.GetBytes(body, "expandtemplates").IsObject() {
		return "", fmt.Errorf("%w: missing key %q", ErrUnexpectedResponseShape, "expandtemplates")
	}

	res := gjson.GetBytes(body, wikitextPath)
	if !res.Exists() {
		return "", fmt.Errorf("%w: missing key %q", ErrUnexpectedResponseShape, wikitextPath)
	}
	if res.Type != gjson.String {
		return "", fmt.Errorf("%w: %s is %s, want string", ErrUnexpectedResponseShape, wikitextPath, res.Type)
	}

	return res.String(), nil
}
