package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/urfave/cli/v3"
	yamlv3 "go.yaml.in/yaml/v3"
)

var durationType = reflect.TypeFor[time.Duration]()

// options 配置加载选项。
type options struct {
	cmd                 *cli.Command
	configPaths         []string
	envPrefix           string
	noTemplateExpansion bool
}

// Option 配置加载选项函数。
type Option func(*options)

// WithCommand 绑定 CLI 命令，显式设置的 flags 覆盖其他来源。
func WithCommand(cmd *cli.Command) Option {
	return func(o *options) {
		o.cmd = cmd
	}
}

// WithConfigPaths 设置配置文件搜索路径，命中首个文件即停止。
func WithConfigPaths(paths ...string) Option {
	return func(o *options) {
		o.configPaths = paths
	}
}

// WithEnvPrefix 启用环境变量覆盖，空字符串表示禁用。
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// WithoutTemplateExpansion 禁用配置文件中 ${...} 的展开。
func WithoutTemplateExpansion() Option {
	return func(o *options) {
		o.noTemplateExpansion = true
	}
}

// DefaultPaths 返回默认配置文件的搜索顺序，先命中的文件生效。
//
//  1. ./.wikiexpand.yaml
//  2. ~/.wikiexpand.yaml
//  3. /etc/wikiexpand/config.yaml
//  4. config.yaml
//  5. config/config.yaml
func DefaultPaths() []string {
	paths := []string{"." + AppName + ".yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, "."+AppName+".yaml"))
	}

	return append(paths, "/etc/"+AppName+"/config.yaml", "config.yaml", "config/config.yaml")
}

// Load 按 默认值 → 配置文件 → 环境变量 → CLI flags 的顺序合并配置。
func Load(opts ...Option) (*Config, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if len(o.configPaths) == 0 {
		o.configPaths = DefaultPaths()
	}

	defaults := DefaultConfig()
	configMap := structToMap(reflect.ValueOf(defaults))

	for _, path := range o.configPaths {
		content, err := os.ReadFile(path) //nolint:gosec // path comes from flags or fixed search list
		if err != nil {
			continue
		}

		if !o.noTemplateExpansion {
			expanded, expandErr := Expand(string(content))
			if expandErr != nil {
				return nil, fmt.Errorf("expand template in %s: %w", path, expandErr)
			}
			content = []byte(expanded)
		}

		fileMap, err := parseConfigBytes(path, content)
		if err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
		mergeMaps(configMap, fileMap)
		slog.Debug("Loaded config from file", "path", path)

		break
	}

	keys := collectKeys(reflect.TypeOf(defaults), "")

	if o.envPrefix != "" {
		for _, key := range keys {
			envKey := o.envPrefix + strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(key.path))
			if val := os.Getenv(envKey); val != "" {
				setByPath(configMap, key.path, val)
				slog.Debug("Loaded env binding", "env", envKey, "path", key.path)
			}
		}
	}

	if o.cmd != nil {
		for _, key := range keys {
			flag := strings.ReplaceAll(key.path, ".", "-")
			if !o.cmd.IsSet(flag) {
				continue
			}
			setFlagValue(o.cmd, configMap, key, flag)
		}
	}

	var cfg Config
	if err := decodeConfigMap(configMap, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// configKey 叶子配置项。
type configKey struct {
	path string
	typ  reflect.Type
}

func tagName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	return name
}

func isStructType(typ reflect.Type) bool {
	return typ.Kind() == reflect.Struct && typ != durationType
}

// collectKeys 以 json tag 递归收集叶子 key，如 wiki.api-url。
func collectKeys(typ reflect.Type, prefix string) []configKey {
	var keys []configKey
	for i := range typ.NumField() {
		field := typ.Field(i)
		name := tagName(field)
		if name == "" {
			continue
		}
		if prefix != "" {
			name = prefix + "." + name
		}
		if isStructType(field.Type) {
			keys = append(keys, collectKeys(field.Type, name)...)

			continue
		}
		keys = append(keys, configKey{path: name, typ: field.Type})
	}

	return keys
}

func setFlagValue(cmd *cli.Command, configMap map[string]any, key configKey, flag string) {
	if key.typ == durationType {
		setByPath(configMap, key.path, cmd.Duration(flag))

		return
	}

	switch key.typ.Kind() {
	case reflect.String:
		setByPath(configMap, key.path, cmd.String(flag))
	case reflect.Bool:
		setByPath(configMap, key.path, cmd.Bool(flag))
	case reflect.Int:
		setByPath(configMap, key.path, cmd.Int(flag))
	default:
		// 不支持的类型，忽略
	}
}

func structToMap(val reflect.Value) map[string]any {
	typ := val.Type()
	out := make(map[string]any, typ.NumField())
	for i := range typ.NumField() {
		field := typ.Field(i)
		name := tagName(field)
		if name == "" || field.PkgPath != "" {
			continue
		}
		if isStructType(field.Type) {
			out[name] = structToMap(val.Field(i))

			continue
		}
		out[name] = val.Field(i).Interface()
	}

	return out
}

func parseConfigBytes(path string, content []byte) (map[string]any, error) {
	var raw any
	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(content, &raw)
	} else {
		err = yamlv3.Unmarshal(content, &raw)
	}
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return map[string]any{}, nil
	}

	configMap, ok := normalizeMapKeys(raw).(map[string]any)
	if !ok {
		return nil, errors.New("config root must be object")
	}

	return configMap, nil
}

func normalizeMapKeys(val any) any {
	switch typed := val.(type) {
	case map[string]any:
		for key, value := range typed {
			typed[key] = normalizeMapKeys(value)
		}

		return typed
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[fmt.Sprintf("%v", key)] = normalizeMapKeys(value)
		}

		return out
	case []any:
		for i := range typed {
			typed[i] = normalizeMapKeys(typed[i])
		}

		return typed
	default:
		return val
	}
}

func mergeMaps(dst, src map[string]any) {
	for key, value := range src {
		if valueMap, ok := value.(map[string]any); ok {
			if dstMap, ok := dst[key].(map[string]any); ok {
				mergeMaps(dstMap, valueMap)

				continue
			}
		}
		dst[key] = value
	}
}

func setByPath(dst map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := dst
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

func decodeConfigMap(data map[string]any, out *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "json",
	})
	if err != nil {
		return err
	}

	return decoder.Decode(data)
}
