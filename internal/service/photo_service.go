package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/mdejong/Flip-Budget-Backend/internal/model"
	"github.com/mdejong/Flip-Budget-Backend/internal/repository"
)

// PhotoService handles project photo uploads. Metadata lives in the
// database; image bytes are written to the configured storage directory
// under a generated name so uploads cannot collide or escape the directory.
type PhotoService struct {
	photoRepo   *repository.PhotoRepository
	projectRepo *repository.ProjectRepository
	storageDir  string
}

// NewPhotoService creates a new PhotoService storing images under storageDir.
func NewPhotoService(photoRepo *repository.PhotoRepository, projectRepo *repository.ProjectRepository, storageDir string) *PhotoService {
	return &PhotoService{
		photoRepo:   photoRepo,
		projectRepo: projectRepo,
		storageDir:  storageDir,
	}
}

// GetPhotos retrieves a project's photo records, newest first.
func (s *PhotoService) GetPhotos(projectID string) ([]model.Photo, error) {
	if _, err := s.projectRepo.GetProjectOnID(projectID); err != nil {
		return nil, err
	}
	return s.photoRepo.GetPhotosOnProjectID(projectID)
}

// GetPhoto retrieves a single photo record by ID.
func (s *PhotoService) GetPhoto(photoID string) (model.Photo, error) {
	return s.photoRepo.GetPhotoOnID(photoID)
}

// SavePhoto stores an uploaded image and records its metadata. The file is
// written under a UUID-based name; the original filename survives only as
// metadata.
func (s *PhotoService) SavePhoto(projectID, caption, phase string, header *multipart.FileHeader) (model.Photo, error) {
	if _, err := s.projectRepo.GetProjectOnID(projectID); err != nil {
		return model.Photo{}, err
	}

	src, err := header.Open()
	if err != nil {
		return model.Photo{}, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(s.storageDir, 0o755); err != nil {
		return model.Photo{}, fmt.Errorf("failed to create photo directory: %w", err)
	}

	photo := model.Photo{
		ID:           uuid.New().String(),
		ProjectID:    projectID,
		Caption:      caption,
		Phase:        phase,
		OriginalName: filepath.Base(header.Filename),
		ContentType:  header.Header.Get("Content-Type"),
	}
	photo.StoredName = photo.ID + filepath.Ext(photo.OriginalName)

	dst, err := os.Create(filepath.Join(s.storageDir, photo.StoredName))
	if err != nil {
		return model.Photo{}, fmt.Errorf("failed to create photo file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(dst.Name())
		return model.Photo{}, fmt.Errorf("failed to write photo file: %w", err)
	}
	photo.SizeBytes = size

	if err := s.photoRepo.CreatePhoto(photo); err != nil {
		os.Remove(dst.Name())
		return model.Photo{}, err
	}

	return s.photoRepo.GetPhotoOnID(photo.ID)
}

// OpenPhotoFile opens the stored image for a photo record. The caller is
// responsible for closing the returned file.
func (s *PhotoService) OpenPhotoFile(photoID string) (model.Photo, *os.File, error) {
	photo, err := s.photoRepo.GetPhotoOnID(photoID)
	if err != nil {
		return model.Photo{}, nil, err
	}

	f, err := os.Open(filepath.Join(s.storageDir, photo.StoredName))
	if err != nil {
		return model.Photo{}, nil, fmt.Errorf("failed to open photo file: %w", err)
	}

	return photo, f, nil
}

// DeletePhoto removes a photo record and its file on disk. A missing file
// does not block deleting the record.
func (s *PhotoService) DeletePhoto(photoID string) error {
	photo, err := s.photoRepo.GetPhotoOnID(photoID)
	if err != nil {
		return err
	}

	if err := s.photoRepo.DeletePhoto(photoID); err != nil {
		return err
	}

	if err := os.Remove(filepath.Join(s.storageDir, photo.StoredName)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove photo file: %w", err)
	}

	return nil
}
