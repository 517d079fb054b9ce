package service

import (
	"errors"
	"net/http"
)

var (
	ErrParamInvalid       = errors.New("缺少必要参数")
	ErrArticleIDInvalid   = errors.New("articleId格式无效")
	ErrArticleNotFound    = errors.New("找不到指定的文章")
	ErrSlugEmpty          = errors.New("文章slug不能为空")
	ErrReactionInvalid    = errors.New("无效的反应类型")
	ErrReactionSave       = errors.New("保存反应失败")
	ErrInvalidCredentials = errors.New("用户名或密码不正确")
	ErrUnauthorized       = errors.New("未授权访问")
	ErrForbidden          = errors.New("需要管理员权限")
	ErrUserNotFound       = errors.New("用户不存在")
	ErrUsernameTaken      = errors.New("用户名已被使用")
	ErrCommentNotFound    = errors.New("评论不存在")
	ErrCommentTooLong     = errors.New("评论内容不能超过500字")
	ErrCommentSensitive   = errors.New("评论内容包含敏感词汇")
	ErrCommentRateLimited = errors.New("评论太频繁，请稍后再试")
	ErrCategoryNotFound   = errors.New("分类不存在")
	ErrCategorySlugExist  = errors.New("分类slug已存在")
	ErrMediaNotFound      = errors.New("文件不存在")
	ErrFileNotSupported   = errors.New("不支持的文件类型")
	UnExpectedError       = errors.New("系统异常，请稍后重试")
)

// ErrorMap 业务错误到 HTTP 状态码的映射
var ErrorMap = map[error]int{
	ErrParamInvalid:       http.StatusBadRequest,
	ErrArticleIDInvalid:   http.StatusBadRequest,
	ErrArticleNotFound:    http.StatusNotFound,
	ErrSlugEmpty:          http.StatusBadRequest,
	ErrReactionInvalid:    http.StatusBadRequest,
	ErrReactionSave:       http.StatusInternalServerError,
	ErrInvalidCredentials: http.StatusUnauthorized,
	ErrUnauthorized:       http.StatusUnauthorized,
	ErrForbidden:          http.StatusForbidden,
	ErrUserNotFound:       http.StatusNotFound,
	ErrUsernameTaken:      http.StatusBadRequest,
	ErrCommentNotFound:    http.StatusNotFound,
	ErrCommentTooLong:     http.StatusBadRequest,
	ErrCommentSensitive:   http.StatusBadRequest,
	ErrCommentRateLimited: http.StatusTooManyRequests,
	ErrCategoryNotFound:   http.StatusNotFound,
	ErrCategorySlugExist:  http.StatusBadRequest,
	ErrMediaNotFound:      http.StatusNotFound,
	ErrFileNotSupported:   http.StatusBadRequest,
	UnExpectedError:       http.StatusInternalServerError,
}
