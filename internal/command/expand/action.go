package expand

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/261014-go-wikiexpand/internal/config"
	"github.com/lwmacct/261014-go-wikiexpand/pkg/mwapi"
)

func action(ctx context.Context, cmd *cli.Command) error {
	// 加载配置：默认值 → 配置文件 → 环境变量 → CLI flags
	opts := []config.Option{
		config.WithEnvPrefix(config.EnvPrefix),
		config.WithCommand(cmd),
	}
	if path := cmd.String("config"); path != "" {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("config file: %w", err)
		}
		opts = append(opts, config.WithConfigPaths(path))
	}

	cfg, err := config.Load(opts...)
	if err != nil {
		return err
	}

	// 位置参数最高优先级
	if cmd.Args().Len() > 2 {
		return fmt.Errorf("expected at most 2 arguments [lang] [template], got %d", cmd.Args().Len())
	}
	if lang := cmd.Args().Get(0); lang != "" {
		cfg.Wiki.Lang = lang
	}
	if template := cmd.Args().Get(1); template != "" {
		cfg.Wiki.Template = template
	}

	logger, err := newLogger(cmd.Root().ErrWriter, cfg.Log)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	client, err := mwapi.New(cfg.Wiki.Lang,
		mwapi.WithEndpoint(cfg.Wiki.APIURL),
		mwapi.WithUserAgent(cfg.Wiki.UserAgent),
		mwapi.WithTimeout(cfg.Wiki.Timeout),
	)
	if err != nil {
		return err
	}

	slog.Info("Expanding template", "endpoint", client.Endpoint(), "template", cfg.Wiki.Template)

	text, err := client.ExpandTemplates(ctx, cfg.Wiki.Template)
	if err != nil {
		return fmt.Errorf("expand %q: %w", cfg.Wiki.Template, err)
	}

	_, err = fmt.Fprintln(cmd.Root().Writer, text)

	return err
}

// newLogger 按配置创建写入 w 的 slog.Logger。
func newLogger(w io.Writer, cfg config.LogConfig) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(cfg.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, handlerOpts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, handlerOpts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}
}
