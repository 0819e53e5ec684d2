package rule_test

import (
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/yeisme/destvault/pkg/rule"
)

// mountRequest 用于测试 ValidateStruct.
type mountRequest struct {
	User       string `rule:"required,max=255"`
	MountPoint string `rule:"required"`
	DriveType  string `rule:"omitempty,oneof=internal usb network cloud"`
}

// TestEngine 测试 Engine 函数返回非 nil 实例.
func TestEngine(t *testing.T) {
	engine := rule.Engine()
	if engine == nil {
		t.Error("Engine() returned nil")
	}
}

// TestValidateStruct 测试 ValidateStruct 对有效和无效结构体的验证.
func TestValidateStruct(t *testing.T) {
	// 有效结构体
	valid := mountRequest{User: "alice", MountPoint: "/mnt/usb", DriveType: "usb"}

	err := rule.ValidateStruct(valid)
	if err != nil {
		t.Errorf("Expected no error for valid struct, got %v", err)
	}

	// 无效结构体：缺少 User
	missingUser := mountRequest{User: "", MountPoint: "/mnt/usb"}

	err = rule.ValidateStruct(missingUser)
	if err == nil {
		t.Error("Expected error for invalid struct (missing user), got nil")
	}

	// 无效结构体：未知的驱动器类型
	badType := mountRequest{User: "alice", MountPoint: "/mnt/usb", DriveType: "floppy"}

	err = rule.ValidateStruct(badType)
	if err == nil {
		t.Error("Expected error for invalid struct (unknown drive type), got nil")
	}
}

// TestValidateVar 测试 ValidateVar 对变量的验证.
func TestValidateVar(t *testing.T) {
	// 有效用户标识
	err := rule.ValidateVar("dev_user", "required,max=255")
	if err != nil {
		t.Errorf("Expected no error for valid user, got %v", err)
	}

	// 空用户标识
	err = rule.ValidateVar("", "required,max=255")
	if err == nil {
		t.Error("Expected error for empty user, got nil")
	}

	// 有效数字
	err = rule.ValidateVar(10, "gte=1")
	if err != nil {
		t.Errorf("Expected no error for valid number, got %v", err)
	}

	// 无效数字
	err = rule.ValidateVar(0, "gte=1")
	if err == nil {
		t.Error("Expected error for invalid number, got nil")
	}
}

// TestRegisterValidation 测试注册自定义验证.
func TestRegisterValidation(t *testing.T) {
	// 注册自定义验证：检查路径是否以分隔符开头
	err := rule.RegisterValidation("abs_path", func(fl validator.FieldLevel) bool {
		str, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}

		return len(str) > 0 && str[0] == '/'
	})
	if err != nil {
		t.Fatalf("Failed to register validation: %v", err)
	}

	// 测试绝对路径
	err = rule.ValidateVar("/mnt/usb", "abs_path")
	if err != nil {
		t.Errorf("Expected no error for absolute path, got %v", err)
	}

	// 测试相对路径
	err = rule.ValidateVar("mnt/usb", "abs_path")
	if err == nil {
		t.Error("Expected error for relative path, got nil")
	}
}

// TestRegisterAlias 测试注册别名.
func TestRegisterAlias(t *testing.T) {
	rule.RegisterAlias("user_id", "required,min=3")

	// 测试有效字符串
	err := rule.ValidateVar("abc", "user_id")
	if err != nil {
		t.Errorf("Expected no error for valid string with alias, got %v", err)
	}

	// 测试无效字符串
	err = rule.ValidateVar("ab", "user_id")
	if err == nil {
		t.Error("Expected error for invalid string with alias, got nil")
	}
}
