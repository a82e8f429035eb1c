// Package version 提供构建版本信息与 version 子命令。
package version

import (
	"context"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/urfave/cli/v3"
)

// AppRawName 应用名称。
const AppRawName = "wikiexpand"

// 构建时通过 -ldflags "-X" 注入。
var (
	AppVersion = ""
	GitCommit  = ""
	BuildTime  = ""
)

// GetVersion 返回版本号，未注入时回退到模块构建信息。
func GetVersion() string {
	if AppVersion != "" {
		return AppVersion
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	return "dev"
}

// Command version 子命令
var Command = &cli.Command{
	Name:  "version",
	Usage: "显示版本信息",
	Action: func(_ context.Context, cmd *cli.Command) error {
		w := cmd.Root().Writer
		_, _ = fmt.Fprintf(w, "%s %s\n", AppRawName, GetVersion())
		if GitCommit != "" {
			_, _ = fmt.Fprintf(w, "commit: %s\n", GitCommit)
		}
		if BuildTime != "" {
			_, _ = fmt.Fprintf(w, "built:  %s\n", BuildTime)
		}
		_, _ = fmt.Fprintf(w, "go:     %s\n", runtime.Version())

		return nil
	},
}
