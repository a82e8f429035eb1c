// Package config 提供 wikiexpand 的配置管理。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - --config 指定，或按 DefaultPaths 搜索
//  3. 环境变量 - WIKIEXPAND_ 前缀
//  4. CLI flags - 仅当用户显式设置时生效
package config

import (
	"time"
)

// AppName 应用名称，用于配置文件路径与环境变量前缀。
const AppName = "wikiexpand"

// EnvPrefix 环境变量前缀。
const EnvPrefix = "WIKIEXPAND_"

// DefaultTemplate 未指定模板时展开的 wikitext。
const DefaultTemplate = "{{ordningstal|{{Stat/Sverige/Kommuner/Befolkning rank|0184}}}}"

// Config 应用配置。
type Config struct {
	Wiki WikiConfig `json:"wiki" desc:"MediaWiki API 配置"`
	Log  LogConfig  `json:"log" desc:"日志配置"`
}

// WikiConfig 模板展开请求配置。
//
//nolint:tagliatelle
type WikiConfig struct {
	Lang      string        `json:"lang" desc:"语言子域名，如 sv、en"`
	Template  string        `json:"template" desc:"待展开的 wikitext 模板"`
	APIURL    string        `json:"api-url" desc:"api.php 地址，留空时由 lang 推导"`
	UserAgent string        `json:"user-agent" desc:"请求 User-Agent"`
	Timeout   time.Duration `json:"timeout" desc:"请求超时，0 表示不限制"`
}

// LogConfig 日志配置。
type LogConfig struct {
	Level  string `json:"level" desc:"日志级别 debug/info/warn/error"`
	Format string `json:"format" desc:"日志格式 text/json"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Wiki: WikiConfig{
			Lang:     "sv",
			Template: DefaultTemplate,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}
