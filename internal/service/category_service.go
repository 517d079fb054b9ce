package service

import (
	"Wildsalt/internal/api/dto"
	"Wildsalt/internal/model"
	"Wildsalt/internal/pkg/util"
	"Wildsalt/internal/repository"
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CategoryService interface {
	ListAll(ctx context.Context) ([]*model.Category, error)
	Create(ctx context.Context, d *dto.CreateCategoryDTO) (*model.Category, error)
	Update(ctx context.Context, id string, d *dto.UpdateCategoryDTO) (*model.Category, error)
	Delete(ctx context.Context, id string) error
}

type categoryServiceImpl struct {
	categoryRepo repository.CategoryRepo
}

func NewCategoryService(categoryRepo repository.CategoryRepo) CategoryService {
	return &categoryServiceImpl{
		categoryRepo: categoryRepo,
	}
}

func (s *categoryServiceImpl) ListAll(ctx context.Context) ([]*model.Category, error) {
	categories, err := s.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询分类列表失败: %w", err)
	}
	if categories == nil {
		categories = make([]*model.Category, 0)
	}
	return categories, nil
}

func (s *categoryServiceImpl) Create(ctx context.Context, d *dto.CreateCategoryDTO) (*model.Category, error) {
	slug := d.Slug
	if slug == "" {
		slug = util.Slugify(d.Name)
	}
	if slug == "" {
		return nil, ErrSlugEmpty
	}

	exists, err := s.categoryRepo.SlugExists(ctx, slug, nil)
	if err != nil {
		return nil, fmt.Errorf("查询分类slug失败: %w", err)
	}
	if exists {
		return nil, ErrCategorySlugExist
	}

	category := &model.Category{
		Name:        d.Name,
		Slug:        slug,
		Description: d.Description,
		Order:       d.Order,
		Image:       d.Image,
		IsFeatured:  d.IsFeatured,
	}
	if d.ParentID != "" {
		pid, err := primitive.ObjectIDFromHex(d.ParentID)
		if err != nil {
			return nil, ErrParamInvalid
		}
		category.ParentID = &pid
	}

	if err = s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("创建分类失败: %w", err)
	}
	return category, nil
}

func (s *categoryServiceImpl) Update(ctx context.Context, id string, d *dto.UpdateCategoryDTO) (*model.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrParamInvalid
	}
	category, err := s.categoryRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("查询分类失败: %w", err)
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	update := bson.M{}
	if d.Name != nil {
		update["name"] = *d.Name
	}
	if d.Slug != nil && *d.Slug != category.Slug {
		exists, err := s.categoryRepo.SlugExists(ctx, *d.Slug, &oid)
		if err != nil {
			return nil, fmt.Errorf("查询分类slug失败: %w", err)
		}
		if exists {
			return nil, ErrCategorySlugExist
		}
		update["slug"] = *d.Slug
	}
	if d.Description != nil {
		update["description"] = *d.Description
	}
	if d.Order != nil {
		update["order"] = *d.Order
	}
	if d.Image != nil {
		update["image"] = *d.Image
	}
	if d.IsFeatured != nil {
		update["isFeatured"] = *d.IsFeatured
	}

	if len(update) > 0 {
		if err = s.categoryRepo.Update(ctx, oid, update); err != nil {
			return nil, fmt.Errorf("更新分类失败: %w", err)
		}
	}

	updated, err := s.categoryRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("查询分类失败: %w", err)
	}
	return updated, nil
}

func (s *categoryServiceImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrParamInvalid
	}
	category, err := s.categoryRepo.GetByID(ctx, oid)
	if err != nil {
		return fmt.Errorf("查询分类失败: %w", err)
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	return s.categoryRepo.Delete(ctx, oid)
}
