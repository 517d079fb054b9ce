package service

import (
	"Wildsalt/internal/api/dto"
	"Wildsalt/internal/model"
	"Wildsalt/internal/pkg/consts"
	"Wildsalt/internal/pkg/minio"
	"Wildsalt/internal/repository"
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	log "log/slog"
	"path"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 图片缩略图最大边长
const thumbnailMaxSize = 400

type MediaService interface {
	Upload(ctx context.Context, filename, contentType string, size int64, reader io.Reader, usage string) (*model.Media, error)
	List(ctx context.Context, query *dto.ListMediaQuery) (*dto.MediaListResult, error)
	Delete(ctx context.Context, id string) error
}

type mediaServiceImpl struct {
	mediaRepo repository.MediaRepo
}

func NewMediaService(mediaRepo repository.MediaRepo) MediaService {
	return &mediaServiceImpl{
		mediaRepo: mediaRepo,
	}
}

func mediaTypeOf(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, consts.MimePrefixImage):
		return model.MediaTypeImage
	case strings.HasPrefix(contentType, consts.MimePrefixVideo):
		return model.MediaTypeVideo
	default:
		return ""
	}
}

func thumbObjectName(objectName string) string {
	return "thumbs/" + objectName
}

func (s *mediaServiceImpl) Upload(ctx context.Context, filename, contentType string, size int64, reader io.Reader, usage string) (*model.Media, error) {
	mediaType := mediaTypeOf(contentType)
	if mediaType == "" {
		return nil, ErrFileNotSupported
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("读取上传文件失败: %w", err)
	}

	ext := strings.ToLower(path.Ext(filename))
	objectName := fmt.Sprintf("%s/%s/%s%s",
		mediaType,
		time.Now().Format("2006/01"),
		strings.ReplaceAll(uuid.NewString(), "-", ""),
		ext,
	)

	if _, err = minio.UploadFile(ctx, objectName, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		return nil, fmt.Errorf("上传文件失败: %w", err)
	}

	media := &model.Media{
		Type:       mediaType,
		Name:       filename,
		URL:        minio.GetPublicURL(objectName),
		ObjectName: objectName,
		Size:       size,
		MimeType:   contentType,
		Usage:      usage,
	}

	// 图片解析尺寸并生成缩略图，失败不阻断上传
	if mediaType == model.MediaTypeImage {
		if img, _, decodeErr := image.Decode(bytes.NewReader(data)); decodeErr == nil {
			bounds := img.Bounds()
			media.Width = bounds.Dx()
			media.Height = bounds.Dy()

			thumb := imaging.Fit(img, thumbnailMaxSize, thumbnailMaxSize, imaging.Lanczos)
			var buf bytes.Buffer
			if encodeErr := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(85)); encodeErr == nil {
				thumbName := thumbObjectName(objectName)
				if _, upErr := minio.UploadFile(ctx, thumbName, &buf, int64(buf.Len()), "image/jpeg"); upErr == nil {
					media.ThumbnailURL = minio.GetPublicURL(thumbName)
				} else {
					log.WarnContext(ctx, "上传缩略图失败", "object", thumbName, "error", upErr)
				}
			}
		} else {
			log.WarnContext(ctx, "解析图片失败", "filename", filename, "error", decodeErr)
		}
	}

	if err = s.mediaRepo.Create(ctx, media); err != nil {
		// 落库失败回收已上传的对象
		if delErr := minio.DeleteFile(ctx, objectName); delErr != nil {
			log.WarnContext(ctx, "回收上传对象失败", "object", objectName, "error", delErr)
		}
		return nil, fmt.Errorf("保存媒体记录失败: %w", err)
	}

	return media, nil
}

func (s *mediaServiceImpl) List(ctx context.Context, query *dto.ListMediaQuery) (*dto.MediaListResult, error) {
	items, total, err := s.mediaRepo.List(ctx, query.Type, query.Page, query.Limit)
	if err != nil {
		return nil, fmt.Errorf("查询媒体列表失败: %w", err)
	}
	if items == nil {
		items = make([]*model.Media, 0)
	}
	return &dto.MediaListResult{
		Media:      items,
		Pagination: dto.NewPagination(query.Page, query.Limit, total),
	}, nil
}

func (s *mediaServiceImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrParamInvalid
	}
	media, err := s.mediaRepo.GetByID(ctx, oid)
	if err != nil {
		return fmt.Errorf("查询媒体失败: %w", err)
	}
	if media == nil {
		return ErrMediaNotFound
	}

	if err = s.mediaRepo.Delete(ctx, oid); err != nil {
		return fmt.Errorf("删除媒体记录失败: %w", err)
	}

	// 对象清理失败只记日志
	if err = minio.DeleteFile(ctx, media.ObjectName); err != nil {
		log.WarnContext(ctx, "删除存储对象失败", "object", media.ObjectName, "error", err)
	}
	if media.ThumbnailURL != "" {
		if err = minio.DeleteFile(ctx, thumbObjectName(media.ObjectName)); err != nil {
			log.WarnContext(ctx, "删除缩略图对象失败", "object", media.ObjectName, "error", err)
		}
	}
	return nil
}
