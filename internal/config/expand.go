package config

import (
	"fmt"
	"os"
	"strings"
)

// Expand 对配置文件内容执行 Shell 风格的参数展开。
//
// 支持语法：
//   - ${VAR} - 变量替换，未设置时为空
//   - ${VAR:-default} / ${VAR-default} - fallback，可嵌套
//   - ${VAR:?msg} / ${VAR?msg} - 必填校验
//   - $$ - 字面量 $
//
// 不解析 $VAR；无法识别的表达式保持原样。仅在必填校验失败时返回 error。
func Expand(text string) (string, error) {
	return expandWith(text, os.LookupEnv)
}

type lookupFunc func(string) (string, bool)

func expandWith(text string, lookup lookupFunc) (string, error) {
	if !strings.Contains(text, "$") {
		return text, nil
	}

	var buf strings.Builder
	buf.Grow(len(text))

	for i := 0; i < len(text); {
		if text[i] != '$' || i+1 >= len(text) {
			buf.WriteByte(text[i])
			i++

			continue
		}

		switch text[i+1] {
		case '$':
			buf.WriteByte('$')
			i += 2

			continue
		case '{':
		default:
			buf.WriteByte('$')
			i++

			continue
		}

		end := matchingBrace(text, i+2)
		if end == -1 {
			buf.WriteByte('$')
			i++

			continue
		}

		out, ok, err := expandExpr(text[i+2:end], lookup)
		if err != nil {
			return "", err
		}
		if ok {
			buf.WriteString(out)
		} else {
			buf.WriteString(text[i : end+1])
		}
		i = end + 1
	}

	return buf.String(), nil
}

// expandExpr 处理 ${...} 内部的表达式，ok=false 表示语法无法识别。
func expandExpr(expr string, lookup lookupFunc) (string, bool, error) {
	n := 0
	for n < len(expr) && isNameChar(expr[n], n == 0) {
		n++
	}
	if n == 0 {
		return "", false, nil
	}

	name, rest := expr[:n], expr[n:]
	val, isSet := lookup(name)
	if rest == "" {
		return val, true, nil
	}

	// ":" 前缀表示空值视同未设置
	missing := !isSet
	if rest[0] == ':' {
		missing = !isSet || val == ""
		rest = rest[1:]
	}
	if rest == "" {
		return "", false, nil
	}

	op, word := rest[0], rest[1:]
	switch op {
	case '-':
		if !missing {
			return val, true, nil
		}
		out, err := expandWith(word, lookup)
		if err != nil {
			return "", false, err
		}

		return out, true, nil
	case '?':
		if !missing {
			return val, true, nil
		}
		if word == "" {
			word = "parameter null or not set"
		}

		return "", false, fmt.Errorf("config: %s: %s", name, word)
	}

	return "", false, nil
}

func isNameChar(ch byte, first bool) bool {
	if ch == '_' || (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') {
		return true
	}

	return !first && ch >= '0' && ch <= '9'
}

func matchingBrace(text string, start int) int {
	depth := 0
	for i := start; i < len(text); i++ {
		switch {
		case text[i] == '$' && i+1 < len(text) && text[i+1] == '{':
			depth++
			i++
		case text[i] == '}':
			if depth == 0 {
				return i
			}
			depth--
		}
	}

	return -1
}
