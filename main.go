package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/261014-go-wikiexpand/internal/command/expand"
	"github.com/lwmacct/261014-go-wikiexpand/internal/version"
)

func main() {
	// 根命令即 expand，直接运行时与 `expand` 子命令行为一致
	app := expand.NewCommand()
	app.Name = version.AppRawName
	app.Usage = "MediaWiki 模板展开工具"
	app.Version = version.GetVersion()
	app.Commands = []*cli.Command{
		version.Command,
		expand.Command,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
