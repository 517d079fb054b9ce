package consts

const (
	CommentRateKey = "comment:rate:"
	TokenDenyKey   = "token:deny:"
)
