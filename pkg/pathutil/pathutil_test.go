package pathutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/yeisme/destvault/pkg/pathutil"
)

// TestNormalize 测试 Normalize 对尾部分隔符与相对段的清理.
func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"尾部分隔符", "/tmp/Videos/", "/tmp/Videos"},
		{"多个尾部分隔符", "/tmp/Videos///", "/tmp/Videos"},
		{"相对段", "/tmp/a/../Videos", "/tmp/Videos"},
		{"当前目录段", "/tmp/./Videos", "/tmp/Videos"},
		{"根路径", "/", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pathutil.Normalize(tt.input)
			if err != nil {
				t.Fatalf("Normalize(%q) 返回错误: %v", tt.input, err)
			}

			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, 期望 %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestNormalizeEmpty 测试空路径返回错误.
func TestNormalizeEmpty(t *testing.T) {
	for _, input := range []string{"", "   "} {
		if _, err := pathutil.Normalize(input); err == nil {
			t.Errorf("Normalize(%q) 应当返回错误", input)
		}
	}
}

// TestNormalizeIdempotent 测试规范化的幂等性.
func TestNormalizeIdempotent(t *testing.T) {
	first, err := pathutil.Normalize("/tmp/a/../Videos/")
	if err != nil {
		t.Fatalf("第一次 Normalize 失败: %v", err)
	}

	second, err := pathutil.Normalize(first)
	if err != nil {
		t.Fatalf("第二次 Normalize 失败: %v", err)
	}

	if first != second {
		t.Errorf("规范化不幂等: %q != %q", first, second)
	}
}

// TestNormalizeSymlink 测试存在的符号链接被解析到真实路径.
func TestNormalizeSymlink(t *testing.T) {
	dir := t.TempDir()

	real := filepath.Join(dir, "real")
	if err := os.Mkdir(real, 0o755); err != nil {
		t.Fatalf("创建目录失败: %v", err)
	}

	link := filepath.Join(dir, "link")
	if err := os.Symlink(real, link); err != nil {
		t.Skipf("当前环境不支持符号链接: %v", err)
	}

	got, err := pathutil.Normalize(link)
	if err != nil {
		t.Fatalf("Normalize(%q) 返回错误: %v", link, err)
	}

	want, err := pathutil.Normalize(real)
	if err != nil {
		t.Fatalf("Normalize(%q) 返回错误: %v", real, err)
	}

	if got != want {
		t.Errorf("符号链接未解析: got %q, want %q", got, want)
	}
}

// TestNormalizeExisting 测试 NormalizeExisting 要求路径真实存在.
func TestNormalizeExisting(t *testing.T) {
	dir := t.TempDir()

	if _, err := pathutil.NormalizeExisting(dir); err != nil {
		t.Errorf("NormalizeExisting(%q) 对存在的目录不应报错: %v", dir, err)
	}

	missing := filepath.Join(dir, "missing")
	if _, err := pathutil.NormalizeExisting(missing); err == nil {
		t.Errorf("NormalizeExisting(%q) 对不存在的路径应当报错", missing)
	}
}

// TestHasPrefix 测试按路径段比较的前缀判断.
func TestHasPrefix(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		prefix string
		want   bool
	}{
		{"相等", "/tmp/Videos", "/tmp/Videos", true},
		{"直接子目录", "/tmp/Videos/movies", "/tmp/Videos", true},
		{"多层子目录", "/tmp/Videos/a/b/c", "/tmp/Videos", true},
		{"同名前缀不同目录", "/tmp/Videos2", "/tmp/Video", false},
		{"兄弟目录", "/tmp/Music", "/tmp/Videos", false},
		{"方向相反", "/tmp", "/tmp/Videos", false},
		{"空路径", "", "/tmp", false},
		{"空前缀", "/tmp", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pathutil.HasPrefix(tt.path, tt.prefix); got != tt.want {
				t.Errorf("HasPrefix(%q, %q) = %v, 期望 %v", tt.path, tt.prefix, got, tt.want)
			}
		})
	}
}

// TestIsDescendant 测试严格子路径判断.
func TestIsDescendant(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		parent string
		want   bool
	}{
		{"直接子路径", "/tmp/Videos/movies", "/tmp/Videos", true},
		{"相等不算子路径", "/tmp/Videos", "/tmp/Videos", false},
		{"同名前缀不同目录", "/tmp/Videos2", "/tmp/Video", false},
		{"根路径之下", "/tmp", "/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pathutil.IsDescendant(tt.path, tt.parent); got != tt.want {
				t.Errorf("IsDescendant(%q, %q) = %v, 期望 %v", tt.path, tt.parent, got, tt.want)
			}
		})
	}
}

// TestParent 测试父目录提取.
func TestParent(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"/tmp/Videos/movie.mp4", "/tmp/Videos"},
		{"/tmp/Videos/", "/tmp"},
		{"/tmp", "/"},
	}

	for _, tt := range tests {
		if got := pathutil.Parent(tt.input); got != tt.want {
			t.Errorf("Parent(%q) = %q, 期望 %q", tt.input, got, tt.want)
		}
	}
}

// TestCategoryFromPath 测试从路径末段推导分类名.
func TestCategoryFromPath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"/tmp/Videos", "Videos"},
		{"/tmp/my_documents", "My Documents"},
		{"/tmp/tax-records", "Tax Records"},
		{"/tmp/work_in-progress", "Work In Progress"},
		{"/", "Uncategorized"},
		{"", "Uncategorized"},
		{"/tmp/Videos/", "Videos"},
	}

	for _, tt := range tests {
		if got := pathutil.CategoryFromPath(tt.input); got != tt.want {
			t.Errorf("CategoryFromPath(%q) = %q, 期望 %q", tt.input, got, tt.want)
		}
	}
}
