package mwapi

import "errors"

var (
	// ErrRequestFailed 请求未能得到 2xx 响应（网络、超时、HTTP 状态）。
	ErrRequestFailed = errors.New("mwapi: request failed")

	// ErrUnexpectedResponseShape 响应体不是预期的 JSON 结构。
	ErrUnexpectedResponseShape = errors.New("mwapi: unexpected response shape")
)
