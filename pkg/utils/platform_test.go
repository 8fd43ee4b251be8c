//go:build !mobile

package utils

import "testing"

// TestIsMobile_Desktop 测试桌面端编译时 IsMobile() 由环境变量控制
func TestIsMobile_Desktop(t *testing.T) {
	t.Setenv("TURBORUN_MOBILE_EMULATE", "")
	if IsMobile() {
		t.Error("IsMobile() should return false on desktop")
	}

	t.Setenv("TURBORUN_MOBILE_EMULATE", "1")
	if !IsMobile() {
		t.Error("IsMobile() should honour TURBORUN_MOBILE_EMULATE")
	}
}
