package dto

// UpdateSettingsDTO 批量写入站点设置，key -> value
type UpdateSettingsDTO struct {
	Settings map[string]string `json:"settings" binding:"required"`
	Group    string            `json:"group"`
}
