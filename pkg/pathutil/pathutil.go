// Package pathutil 提供文件系统路径的规范化与比较工具.
// 存储与比较（唯一性、级联前缀、挂载解析）一律使用规范化后的路径.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Normalize 将路径规范化为绝对、干净、无尾部分隔符的形式.
// 路径存在时解析符号链接；不存在时仅做词法清理（可移动/云存储的路径允许暂不在线）.
// 规范化是幂等的：Normalize(Normalize(p)) == Normalize(p).
func Normalize(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("path is empty")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	abs = filepath.Clean(abs)

	// 路径实际存在时进一步解析符号链接
	if _, statErr := os.Lstat(abs); statErr == nil {
		if resolved, evalErr := filepath.EvalSymlinks(abs); evalErr == nil {
			abs = filepath.Clean(resolved)
		}
	}

	return trimTrailingSeparator(abs), nil
}

// NormalizeExisting 与 Normalize 相同，但要求路径在本机文件系统上存在.
func NormalizeExisting(path string) (string, error) {
	p, err := Normalize(path)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(p); err != nil {
		return "", fmt.Errorf("stat %s: %w", p, err)
	}

	return p, nil
}

// HasPrefix 判断 path 是否等于 prefix 或位于 prefix 之下（按路径段比较）.
// 纯子串匹配会误判 /tmp/Videos2 属于 /tmp/Video，这里要求前缀后紧跟分隔符.
func HasPrefix(path, prefix string) bool {
	if path == "" || prefix == "" {
		return false
	}

	if path == prefix {
		return true
	}

	return IsDescendant(path, prefix)
}

// IsDescendant 判断 path 是否严格位于 parent 之下.
func IsDescendant(path, parent string) bool {
	if path == "" || parent == "" || path == parent {
		return false
	}

	sep := string(filepath.Separator)
	if !strings.HasSuffix(parent, sep) {
		parent += sep
	}

	return strings.HasPrefix(path, parent)
}

// Parent 返回文件路径所在的父目录.
func Parent(path string) string {
	return trimTrailingSeparator(filepath.Dir(filepath.Clean(path)))
}

// CategoryFromPath 从路径的最后一段推导分类名：
// 下划线/连字符替换为空格并对每个单词做首字母大写，空路径或根路径归为 "Uncategorized".
func CategoryFromPath(path string) string {
	base := filepath.Base(trimTrailingSeparator(filepath.Clean(path)))
	if base == "." || base == string(filepath.Separator) || base == "" {
		return "Uncategorized"
	}

	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)

	words := strings.Fields(base)
	if len(words) == 0 {
		return "Uncategorized"
	}

	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}

	return strings.Join(words, " ")
}

// trimTrailingSeparator 去掉尾部分隔符，根路径除外.
func trimTrailingSeparator(p string) string {
	sep := string(filepath.Separator)
	for len(p) > len(sep) && strings.HasSuffix(p, sep) {
		p = strings.TrimSuffix(p, sep)
	}

	return p
}
