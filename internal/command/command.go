// Package command 提供 wikiexpand 的命令行功能。
package command

import "github.com/lwmacct/261014-go-wikiexpand/internal/config"

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()
