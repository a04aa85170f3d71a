package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"easyway/internal/domain"
	"easyway/internal/dto"
	"easyway/internal/logger"
	"easyway/internal/repository"
	"easyway/internal/util"

	"go.uber.org/zap"
)

const maxResourceSize = 50 * 1024 * 1024

// ResourceService manages uploaded study artifacts: the remote object plus
// its metadata row.
type ResourceService interface {
	UploadResource(ctx context.Context, req *dto.UploadResourceRequest, file *multipart.FileHeader) (*dto.ResourceResponse, error)
	ListResources(ctx context.Context, filters *dto.ResourceFilters) ([]dto.ResourceResponse, error)
	GetResource(ctx context.Context, resourceID string) (*dto.ResourceResponse, error)
	DeleteResource(ctx context.Context, resourceID string) error
}

type resourceServiceImpl struct {
	resourceRepo repository.ResourceRepository
	storage      domain.ObjectStorage
}

// NewResourceService creates a new instance of the resource service.
func NewResourceService(resourceRepo repository.ResourceRepository, storage domain.ObjectStorage) ResourceService {
	return &resourceServiceImpl{resourceRepo: resourceRepo, storage: storage}
}

func toResourceResponse(r *domain.Resource) *dto.ResourceResponse {
	return &dto.ResourceResponse{
		ID:          r.ID,
		Title:       r.Title,
		Subject:     r.Subject,
		Course:      r.Course,
		Topic:       r.Topic,
		Type:        string(r.Type),
		Description: r.Description,
		URL:         r.URL,
		CreatedAt:   r.CreatedAt,
	}
}

// UploadResource stages the multipart file to a temp path, pushes it to
// object storage, and records the metadata row. The temp file is always
// removed.
func (s *resourceServiceImpl) UploadResource(ctx context.Context, req *dto.UploadResourceRequest, file *multipart.FileHeader) (*dto.ResourceResponse, error) {
	if file == nil {
		return nil, domain.NewInvalidInputError("file is required")
	}
	if file.Size > maxResourceSize {
		return nil, domain.NewInvalidInputError("file exceeds the 50MB limit")
	}

	resource := &domain.Resource{
		ID:          util.NewULID(),
		Title:       req.Title,
		Subject:     req.Subject,
		Course:      req.Course,
		Topic:       req.Topic,
		Type:        domain.ResourceType(req.Type),
		Description: req.Description,
	}
	if err := resource.Validate(); err != nil {
		return nil, err
	}

	localPath, err := s.stageFile(file)
	if err != nil {
		return nil, domain.NewInternalError("failed to stage upload", err)
	}
	defer func() {
		if err := os.Remove(localPath); err != nil {
			logger.Get().Warn("failed to remove staged upload", zap.String("path", localPath), zap.Error(err))
		}
	}()

	objectKey := fmt.Sprintf("resources/%s/%s/%s%s",
		resource.Type, time.Now().Format("2006/01"), resource.ID, filepath.Ext(file.Filename))

	url, err := s.storage.Put(ctx, objectKey, localPath, file.Header.Get("Content-Type"))
	if err != nil {
		return nil, domain.NewStorageError("failed to upload file", err)
	}
	resource.URL = url
	resource.ObjectKey = objectKey

	if err := s.resourceRepo.CreateResource(ctx, resource); err != nil {
		// the metadata row is the source of truth; without it the object is
		// unreachable, so clean it up
		if delErr := s.storage.Delete(ctx, objectKey); delErr != nil {
			logger.Get().Error("failed to remove object after metadata failure",
				zap.String("object_key", objectKey), zap.Error(delErr))
		}
		return nil, domain.NewInternalError("failed to save resource", err)
	}

	logger.Get().Info("Resource uploaded",
		zap.String("resourceID", resource.ID),
		zap.String("object_key", objectKey),
		zap.Int64("size", file.Size))
	return toResourceResponse(resource), nil
}

func (s *resourceServiceImpl) stageFile(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "easyway-upload-*")
	if err != nil {
		return "", err
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, src); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

// ListResources returns resources matching the optional filters.
func (s *resourceServiceImpl) ListResources(ctx context.Context, filters *dto.ResourceFilters) ([]dto.ResourceResponse, error) {
	filter := repository.ResourceFilter{}
	if filters != nil {
		filter.Subject = filters.Subject
		filter.Type = filters.Type
	}
	resources, err := s.resourceRepo.ListResources(ctx, filter)
	if err != nil {
		return nil, domain.NewInternalError("failed to list resources", err)
	}
	responses := make([]dto.ResourceResponse, 0, len(resources))
	for _, r := range resources {
		responses = append(responses, *toResourceResponse(r))
	}
	return responses, nil
}

// GetResource returns one resource.
func (s *resourceServiceImpl) GetResource(ctx context.Context, resourceID string) (*dto.ResourceResponse, error) {
	resource, err := s.resourceRepo.GetResourceByID(ctx, resourceID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get resource", err)
	}
	if resource == nil {
		return nil, domain.NewNotFoundError("resource not found")
	}
	return toResourceResponse(resource), nil
}

// DeleteResource removes the metadata row first and the remote object
// second. If the remote delete fails the orphan object is logged, never
// surfaced: the resource is already gone from every listing.
func (s *resourceServiceImpl) DeleteResource(ctx context.Context, resourceID string) error {
	resource, err := s.resourceRepo.GetResourceByID(ctx, resourceID)
	if err != nil {
		return domain.NewInternalError("failed to get resource", err)
	}
	if resource == nil {
		return domain.NewNotFoundError("resource not found")
	}

	if err := s.resourceRepo.DeleteResource(ctx, resourceID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NewNotFoundError("resource not found")
		}
		return domain.NewInternalError("failed to delete resource", err)
	}

	if err := s.storage.Delete(ctx, resource.ObjectKey); err != nil {
		logger.Get().Error("orphaned object left in storage",
			zap.String("resourceID", resourceID),
			zap.String("object_key", resource.ObjectKey),
			zap.Error(err))
	}
	return nil
}
