package service

import (
	"Wildsalt/internal/api/dto"
	"Wildsalt/internal/repository"
	"context"
	"fmt"
)

type SettingService interface {
	// GetAll 返回 key -> value 的扁平映射
	GetAll(ctx context.Context) (map[string]string, error)
	Update(ctx context.Context, d *dto.UpdateSettingsDTO) (map[string]string, error)
}

type settingServiceImpl struct {
	settingRepo repository.SettingRepo
}

func NewSettingService(settingRepo repository.SettingRepo) SettingService {
	return &settingServiceImpl{
		settingRepo: settingRepo,
	}
}

func (s *settingServiceImpl) GetAll(ctx context.Context) (map[string]string, error) {
	settings, err := s.settingRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询站点设置失败: %w", err)
	}
	result := make(map[string]string, len(settings))
	for _, setting := range settings {
		result[setting.Key] = setting.Value
	}
	return result, nil
}

func (s *settingServiceImpl) Update(ctx context.Context, d *dto.UpdateSettingsDTO) (map[string]string, error) {
	if len(d.Settings) == 0 {
		return nil, ErrParamInvalid
	}
	for key, value := range d.Settings {
		if key == "" {
			return nil, ErrParamInvalid
		}
		if err := s.settingRepo.Upsert(ctx, key, value, d.Group); err != nil {
			return nil, fmt.Errorf("保存设置失败: %w", err)
		}
	}
	return s.GetAll(ctx)
}
