package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"courseforge_backend/internal/model"
	"courseforge_backend/internal/repository"
	"courseforge_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const catalogCacheTTL = 60 * time.Second

// CatalogService serves the public, unauthenticated course listing.
// The first page of the unfiltered catalog is cached in Redis briefly;
// filtered or paginated queries always hit the database.
type CatalogService struct {
	CourseRepo *repository.CourseRepository
	Redis      *redis.Client
}

func NewCatalogService(courseRepo *repository.CourseRepository, rdb *redis.Client) *CatalogService {
	return &CatalogService{
		CourseRepo: courseRepo,
		Redis:      rdb,
	}
}

type CatalogPage struct {
	Courses []model.Course `json:"courses"`
	Total   int64          `json:"total"`
	Limit   int            `json:"limit"`
	Skip    int            `json:"skip"`
}

func (s *CatalogService) ListPublished(ctx context.Context, categoryID uint, limit, skip int) (*CatalogPage, error) {
	cacheable := s.Redis != nil && categoryID == 0 && skip == 0

	cacheKey := fmt.Sprintf("catalog:published:%d", limit)
	if cacheable {
		if val, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var page CatalogPage
			if err := json.Unmarshal([]byte(val), &page); err == nil {
				return &page, nil
			}
		}
	}

	courses, total, err := s.CourseRepo.ListPublished(categoryID, limit, skip)
	if err != nil {
		return nil, err
	}

	// Published listings never expose password hashes; strip the loaded
	// instructor down to display fields.
	for i := range courses {
		if courses[i].Instructor != nil {
			courses[i].Instructor = &model.User{
				BaseModel: courses[i].Instructor.BaseModel,
				FirstName: courses[i].Instructor.FirstName,
				LastName:  courses[i].Instructor.LastName,
			}
		}
	}

	page := &CatalogPage{Courses: courses, Total: total, Limit: limit, Skip: skip}

	if cacheable {
		if data, err := json.Marshal(page); err == nil {
			if err := s.Redis.Set(ctx, cacheKey, data, catalogCacheTTL).Err(); err != nil {
				logger.Log.Warn("catalog cache write failed", zap.Error(err))
			}
		}
	}

	return page, nil
}
