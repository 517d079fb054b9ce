package util

import (
	"Wildsalt/internal/model"
	"strings"
)

// DetectDevice 根据 User-Agent 关键字粗略判断设备类型。
// 启发式判断，不保证准确；爬虫归入 unknown。
func DetectDevice(userAgent string) string {
	switch {
	case strings.Contains(userAgent, "Mobile"):
		return model.DeviceMobile
	case strings.Contains(userAgent, "Tablet"):
		return model.DeviceTablet
	case strings.Contains(userAgent, "Bot") || strings.Contains(userAgent, "bot"):
		return model.DeviceUnknown
	default:
		return model.DeviceDesktop
	}
}
