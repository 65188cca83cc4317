package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/mdejong/Flip-Budget-Backend/internal/api/request"
	"github.com/mdejong/Flip-Budget-Backend/internal/model"
	"github.com/mdejong/Flip-Budget-Backend/internal/repository"
)

// NoteService handles project note business logic operations.
type NoteService struct {
	noteRepo    *repository.NoteRepository
	projectRepo *repository.ProjectRepository
}

// NewNoteService creates a new NoteService with the provided repository dependencies.
func NewNoteService(noteRepo *repository.NoteRepository, projectRepo *repository.ProjectRepository) *NoteService {
	return &NoteService{
		noteRepo:    noteRepo,
		projectRepo: projectRepo,
	}
}

// GetNotes retrieves a project's notes, newest first.
func (s *NoteService) GetNotes(projectID string) ([]model.Note, error) {
	if _, err := s.projectRepo.GetProjectOnID(projectID); err != nil {
		return nil, err
	}
	return s.noteRepo.GetNotesOnProjectID(projectID)
}

// GetNote retrieves a single note by ID.
func (s *NoteService) GetNote(noteID string) (model.Note, error) {
	return s.noteRepo.GetNoteOnID(noteID)
}

// CreateNote adds a note to a project.
func (s *NoteService) CreateNote(projectID string, req request.CreateNoteRequest) (model.Note, error) {
	if _, err := s.projectRepo.GetProjectOnID(projectID); err != nil {
		return model.Note{}, err
	}

	note := model.Note{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Title:     req.Title,
		Body:      req.Body,
	}

	if err := s.noteRepo.CreateNote(note); err != nil {
		return model.Note{}, err
	}

	note.CreatedAt = time.Now().UTC()
	note.UpdatedAt = note.CreatedAt

	return note, nil
}

// UpdateNote applies a partial update to a note.
func (s *NoteService) UpdateNote(noteID string, req request.UpdateNoteRequest) (model.Note, error) {
	note, err := s.noteRepo.GetNoteOnID(noteID)
	if err != nil {
		return model.Note{}, err
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Body != nil {
		note.Body = *req.Body
	}

	if err := s.noteRepo.UpdateNote(note); err != nil {
		return model.Note{}, err
	}

	return s.noteRepo.GetNoteOnID(noteID)
}

// DeleteNote removes a note.
func (s *NoteService) DeleteNote(noteID string) error {
	return s.noteRepo.DeleteNote(noteID)
}
