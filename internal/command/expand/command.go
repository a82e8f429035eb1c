// Package expand 提供模板展开命令。
package expand

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/261014-go-wikiexpand/internal/command"
)

// Command 模板展开命令
var Command = NewCommand()

// NewCommand 创建一个新的 expand 命令实例。
//
// cli.Command 在 Run 之后会保留解析状态，需要多次运行时（如测试）应各自创建。
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      "expand",
		Usage:     "展开 wikitext 模板并输出结果",
		ArgsUsage: "[lang] [template]",
		Description: "通过 MediaWiki API (action=expandtemplates) 展开模板，结果写入标准输出。\n" +
			"位置参数 lang / template 优先于 --wiki-lang / --wiki-template。",
		Action: action,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径（默认搜索 .wikiexpand.yaml 等）",
			},
			&cli.StringFlag{
				Name:    "wiki-lang",
				Aliases: []string{"l"},
				Value:   command.Defaults.Wiki.Lang,
				Usage:   "语言子域名，如 sv、en",
			},
			&cli.StringFlag{
				Name:    "wiki-template",
				Aliases: []string{"t"},
				Value:   command.Defaults.Wiki.Template,
				Usage:   "待展开的 wikitext 模板",
			},
			&cli.StringFlag{
				Name:  "wiki-api-url",
				Value: command.Defaults.Wiki.APIURL,
				Usage: "api.php 地址，留空时由 lang 推导",
			},
			&cli.StringFlag{
				Name:  "wiki-user-agent",
				Value: command.Defaults.Wiki.UserAgent,
				Usage: "请求 User-Agent",
			},
			&cli.DurationFlag{
				Name:  "wiki-timeout",
				Value: command.Defaults.Wiki.Timeout,
				Usage: "请求超时，0 表示不限制",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: command.Defaults.Log.Level,
				Usage: "日志级别 debug/info/warn/error",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Value: command.Defaults.Log.Format,
				Usage: "日志格式 text/json",
			},
		},
	}
}
