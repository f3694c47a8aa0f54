// Package authsvc - Test validate và match permission string với registry tĩnh.
package authsvc

import (
	"testing"
)

func TestValidatePermission_RegisteredPermission(t *testing.T) {
	if !ValidatePermission("Booking.Read") {
		t.Error("Booking.Read là quyền đã khai báo, phải hợp lệ")
	}
	if !ValidatePermission("CalendarSync.Run") {
		t.Error("CalendarSync.Run là quyền đã khai báo, phải hợp lệ")
	}
}

func TestValidatePermission_UnknownResource(t *testing.T) {
	if ValidatePermission("KhongTonTai.Read") {
		t.Error("Resource không có trong registry phải bị từ chối")
	}
	if ValidatePermission("Booking.Explode") {
		t.Error("Action không có trong registry phải bị từ chối")
	}
}

func TestValidatePermission_MalformedString(t *testing.T) {
	cases := []string{"", "Booking", ".Read", "Booking.", "..", "*.*"}
	for _, p := range cases {
		if ValidatePermission(p) {
			t.Errorf("Chuỗi không đúng định dạng %q phải bị từ chối", p)
		}
	}
}

func TestValidatePermission_InheritedPropertyNames(t *testing.T) {
	// Các tên trùng với thuộc tính kế thừa của object trong các ngôn ngữ khác
	// không bao giờ được coi là quyền hợp lệ - registry chỉ chứa khóa khai báo tường minh
	cases := []string{
		"constructor.toString",
		"Booking.constructor",
		"Booking.toString",
		"Booking.hasOwnProperty",
		"__proto__.Read",
	}
	for _, p := range cases {
		if ValidatePermission(p) {
			t.Errorf("Tên thuộc tính kế thừa %q không được coi là quyền hợp lệ", p)
		}
	}
}

func TestValidatePermissions_AllMustBeValid(t *testing.T) {
	if !ValidatePermissions([]string{"Booking.Read", "EventType.Insert"}) {
		t.Error("Danh sách toàn quyền hợp lệ phải pass")
	}
	if ValidatePermissions([]string{"Booking.Read", "KhongTonTai.Read"}) {
		t.Error("Chỉ cần một quyền không hợp lệ thì cả danh sách phải fail")
	}
	if !ValidatePermissions([]string{}) {
		t.Error("Danh sách rỗng phải pass (không có phần tử nào sai)")
	}
}

func TestPermissionMatches_FullWildcard(t *testing.T) {
	cases := []string{"Booking.Read", "anything", "", "a.b.c", "..."}
	for _, p := range cases {
		if !PermissionMatches("*.*", p) {
			t.Errorf("Pattern *.* phải khớp với mọi chuỗi, kể cả %q", p)
		}
	}
}

func TestPermissionMatches_ResourceWildcard(t *testing.T) {
	if !PermissionMatches("*.Read", "Booking.Read") {
		t.Error("*.Read phải khớp Booking.Read")
	}
	if PermissionMatches("*.Read", "Booking.Insert") {
		t.Error("*.Read không được khớp Booking.Insert")
	}
}

func TestPermissionMatches_ActionWildcard(t *testing.T) {
	if !PermissionMatches("Booking.*", "Booking.Insert") {
		t.Error("Booking.* phải khớp Booking.Insert")
	}
	if PermissionMatches("Booking.*", "EventType.Insert") {
		t.Error("Booking.* không được khớp EventType.Insert")
	}
}

func TestPermissionMatches_ExactAndMismatch(t *testing.T) {
	if !PermissionMatches("Booking.Read", "Booking.Read") {
		t.Error("Pattern trùng khớp hoàn toàn phải pass")
	}
	if PermissionMatches("Booking.Read", "Booking.Insert") {
		t.Error("Action khác nhau phải fail")
	}
	if PermissionMatches("Booking.Read", "Booking") {
		t.Error("Permission thiếu action phải fail với pattern không phải *.*")
	}
}

func TestPermissionMatches_NoRegistryValidation(t *testing.T) {
	// Match là logic chuỗi thuần túy, không kiểm tra registry
	if !PermissionMatches("KhongTonTai.*", "KhongTonTai.Read") {
		t.Error("PermissionMatches không được kiểm tra registry - pattern tự do")
	}
}

func TestCreatePermissionString(t *testing.T) {
	if got := CreatePermissionString("Booking", "Read", false); got != "Booking.Read" {
		t.Errorf("CreatePermissionString sai: got %q, want Booking.Read", got)
	}
	if got := CreatePermissionString("Booking", "Read", true); got != "custom:Booking.Read" {
		t.Errorf("CreatePermissionString với isCustom sai: got %q, want custom:Booking.Read", got)
	}
}

func TestPermissionResourceAction(t *testing.T) {
	if got := PermissionResource("Booking.Read"); got != "Booking" {
		t.Errorf("PermissionResource sai: got %q", got)
	}
	if got := PermissionAction("Booking.Read"); got != "Read" {
		t.Errorf("PermissionAction sai: got %q", got)
	}
	if got := PermissionAction("Booking"); got != "" {
		t.Errorf("PermissionAction của chuỗi thiếu action phải rỗng, got %q", got)
	}
}

func TestGetPermissionsByResource(t *testing.T) {
	perms := GetPermissionsByResource("CalendarSync")
	if len(perms) != 1 || perms[0] != "CalendarSync.Run" {
		t.Errorf("CalendarSync phải có đúng một quyền Run, got %v", perms)
	}
	if got := GetPermissionsByResource("KhongTonTai"); len(got) != 0 {
		t.Errorf("Resource không tồn tại phải trả về danh sách rỗng, got %v", got)
	}
}

func TestGetAllPermissions_ContainsRegisteredAndValid(t *testing.T) {
	perms := GetAllPermissions()
	if len(perms) == 0 {
		t.Fatal("Registry không được rỗng")
	}
	for _, p := range perms {
		if !ValidatePermission(p) {
			t.Errorf("Mọi quyền trong registry phải tự validate được, %q thì không", p)
		}
	}
}
