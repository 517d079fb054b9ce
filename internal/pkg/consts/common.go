package consts

const (
	MimePrefixImage = "image"
	MimePrefixVideo = "video"
)

const (
	// CommentMaxLength 评论内容长度上限
	CommentMaxLength = 500
	// ViewDedupWindowMinutes 同一 IP 重复访问不计数的窗口
	ViewDedupWindowMinutes = 30
)

const (
	DefaultAuthorName  = "匿名访客"
	DefaultAuthorEmail = "guest@wildsalt.me"
)
