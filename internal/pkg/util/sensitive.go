package util

import "strings"

// 简单实现，正式环境应接入更完善的内容审核
var sensitiveWords = []string{
	"广告", "优惠", "促销", "打折", "代购", "私聊",
	"微信", "电报", "QQ", "加我", "联系我", "免费",
}

// ContainsSensitiveContent 评论内容敏感词检查
func ContainsSensitiveContent(content string) bool {
	lower := strings.ToLower(content)
	for _, word := range sensitiveWords {
		if strings.Contains(lower, strings.ToLower(word)) {
			return true
		}
	}
	return false
}
