package dto

type CreateCategoryDTO struct {
	Name        string `json:"name" binding:"required" validate:"min=1,max=50"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ParentID    string `json:"parentId"`
	Order       int    `json:"order"`
	Image       string `json:"image"`
	IsFeatured  bool   `json:"isFeatured"`
}

type UpdateCategoryDTO struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=50"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
	Image       *string `json:"image"`
	IsFeatured  *bool   `json:"isFeatured"`
}
