// Package mwapi 提供 MediaWiki Action API 的模板展开客户端。
//
// 仅封装 action=expandtemplates 一个模块：构造固定参数、发送一次 GET、
// 从 JSON 响应中取出 expandtemplates.wikitext。
//
// # 快速开始
//
//	client, err := mwapi.New("sv")
//	if err != nil {
//	    return err
//	}
//	text, err := client.ExpandTemplates(ctx, "{{ordningstal|15}}")
//
// # 错误类型
//
// 所有错误都可以通过 errors.Is 归类为以下两种之一：
//   - [ErrRequestFailed] - 网络错误、上下文取消、非 2xx 状态码
//   - [ErrUnexpectedResponseShape] - 非 JSON 响应、缺少字段或 API 返回 error 对象
//
// # 请求语义
//
//  1. 每次调用只发送一个请求，不重试、不翻页
//  2. 模板文本原样透传，不做解析或校验
//  3. 未设置 [WithTimeout] 时使用 net/http 的默认行为（无超时）
package mwapi
