package document

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrNotDocumentOwner = errors.New("not the document owner")

// Storage is the object-store contract (R2 in production).
type Storage interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type Service struct {
	repo    Repository
	storage Storage
}

func NewService(repo Repository, storage Storage) *Service {
	return &Service{repo: repo, storage: storage}
}

// UploadDocument archives the original file to R2, scrapes its text,
// and persists the document record.
func (s *Service) UploadDocument(
	ctx context.Context,
	userID string,
	header *multipart.FileHeader,
) (*MenuDocument, error) {

	if err := ValidateFileExtension(header.Filename); err != nil {
		return nil, err
	}
	if header.Size > MaxUploadBytes {
		return nil, errors.New("file exceeds 10MB limit")
	}

	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxUploadBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxUploadBytes {
		return nil, errors.New("file exceeds 10MB limit")
	}

	text, err := ExtractText(header.Filename, data)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	key := fmt.Sprintf("documents/%s/%s%s", userID, uuid.New().String(), ext)
	contentType := header.Header.Get("Content-Type")

	if s.storage != nil {
		if _, err := s.storage.Upload(ctx, key, strings.NewReader(string(data)), contentType); err != nil {
			return nil, err
		}
	}

	doc := &MenuDocument{
		UserID:        userID,
		Filename:      header.Filename,
		ContentType:   contentType,
		ObjectKey:     key,
		ExtractedText: text,
		CharCount:     len(text),
	}

	if err := s.repo.Save(ctx, doc); err != nil {
		return nil, err
	}

	log.Printf("DOC_UPLOADED id=%s user=%s file=%s chars=%d", doc.ID, userID, doc.Filename, doc.CharCount)
	return doc, nil
}

// GetOwned fetches a document and verifies ownership.
func (s *Service) GetOwned(ctx context.Context, id, userID string) (*MenuDocument, error) {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc.UserID != userID {
		return nil, ErrNotDocumentOwner
	}
	return doc, nil
}

func (s *Service) ListMine(ctx context.Context, userID string) ([]MenuDocument, error) {
	return s.repo.ListByUser(ctx, userID)
}
