package mwapi

import (
	"net/http"
	"time"
)

// DefaultUserAgent 默认 User-Agent，Wikimedia 要求客户端携带可识别的标识。
const DefaultUserAgent = "wikiexpand/1.0 (https://github.com/lwmacct/261014-go-wikiexpand)"

// options 客户端选项。
type options struct {
	endpoint   string // 覆盖由语言代码推导的地址
	httpClient *http.Client
	userAgent  string
	timeout    time.Duration // 0 表示不设置超时
}

// Option 客户端选项函数。
type Option func(*options)

// WithEndpoint 直接指定 api.php 地址，忽略语言代码推导（见 [Endpoint]）。
//
// 主要用于测试或非 wikipedia.org 的 MediaWiki 站点。
func WithEndpoint(url string) Option {
	return func(o *options) {
		o.endpoint = url
	}
}

// WithHTTPClient 使用自定义 *http.Client。
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithUserAgent 设置请求的 User-Agent，空字符串时使用 [DefaultUserAgent]。
func WithUserAgent(ua string) Option {
	return func(o *options) {
		o.userAgent = ua
	}
}

// WithTimeout 设置整个请求的超时时间。
//
// 注意：同时使用 [WithHTTPClient] 时，会覆盖该 client 的 Timeout 字段。
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}
