package main

import (
	"context"
	"log/slog"
	"os"

	app "github.com/lwmacct/261014-go-wikiexpand/internal/command/expand"
)

func main() {
	if err := app.Command.Run(context.Background(), os.Args); err != nil {
		slog.Error("模板展开失败", "error", err)
		os.Exit(1)
	}
}
