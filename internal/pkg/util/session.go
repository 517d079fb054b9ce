package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// randToken 返回 n 位随机十六进制片段
func randToken(n int) string {
	s := strings.ReplaceAll(uuid.NewString(), "-", "")
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}

// NewViewSessionID 访问事件的会话标识：时间戳 + 随机片段
func NewViewSessionID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + randToken(8)
}

// NewReactionSessionID 反应事件的会话标识：时间戳 + 随机片段 + IP 片段。
// 每次调用生成不同的值，使得同一访客的重复反应都被视为独立事件。
func NewReactionSessionID(ip string) string {
	ipFragment := strings.ReplaceAll(ip, ".", "")
	if len(ipFragment) > 8 {
		ipFragment = ipFragment[:8]
	}
	return fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), randToken(8), ipFragment)
}

// NewAltReactionSessionID 唯一索引冲突重试时使用的备用会话标识
func NewAltReactionSessionID() string {
	return fmt.Sprintf("alt-%d-%s", time.Now().UnixMilli(), randToken(6))
}

// NewAnonUserID 重试插入时使用的一次性匿名用户标识
func NewAnonUserID() string {
	return fmt.Sprintf("anon-%d", time.Now().UnixMilli())
}
