package apikeysvc

import (
	"strings"
	"testing"
)

func TestGenerateKey_FormatAndUniqueness(t *testing.T) {
	key1, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey không được lỗi: %v", err)
	}
	key2, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey không được lỗi: %v", err)
	}

	if !strings.HasPrefix(key1, KeyPrefix) {
		t.Errorf("Khóa phát hành phải có tiền tố %q, got %q", KeyPrefix, key1)
	}
	if len(key1) != len(KeyPrefix)+64 {
		t.Errorf("Phần thân khóa phải là 64 ký tự hex, got độ dài %d", len(key1)-len(KeyPrefix))
	}
	if key1 == key2 {
		t.Error("Hai lần sinh khóa phải cho kết quả khác nhau")
	}
}

func TestHashKey_DeterministicAndOpaque(t *testing.T) {
	key := "mbk_0123456789abcdef"

	if HashKey(key) != HashKey(key) {
		t.Error("Băm cùng một khóa phải cho cùng kết quả")
	}
	if HashKey(key) == HashKey(key+"x") {
		t.Error("Khóa khác nhau phải cho hash khác nhau")
	}
	if strings.Contains(HashKey(key), key) {
		t.Error("Hash không được chứa bản rõ của khóa")
	}
	if len(HashKey(key)) != 64 {
		t.Errorf("Hash SHA-256 hex phải dài 64 ký tự, got %d", len(HashKey(key)))
	}
}

func TestKeyPreview_ShowsOnlyPrefix(t *testing.T) {
	key := "mbk_a1b2c3d4e5f6"

	preview := KeyPreview(key)
	if preview != "mbk_a1b2…" {
		t.Errorf("Preview phải là tiền tố + 4 ký tự đầu, got %q", preview)
	}
	if strings.Contains(preview, "c3d4") {
		t.Error("Preview không được lộ phần thân khóa")
	}
}
