package generation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/rogulenkoko/MenuCraft-sub000/internal/document"
	"github.com/rogulenkoko/MenuCraft-sub000/internal/llm"
	"github.com/rogulenkoko/MenuCraft-sub000/internal/profile"
	"github.com/rogulenkoko/MenuCraft-sub000/internal/restaurant"
)

var (
	ErrNoSource           = errors.New("menu_text or document_id is required")
	ErrNotGenerationOwner = errors.New("not the generation owner")
	ErrVariantOutOfRange  = errors.New("variant index out of range")
)

// CreditLedger is the slice of profile.Service the generator needs.
type CreditLedger interface {
	HasCredits(ctx context.Context, userID string) (bool, error)
	SpendCredit(ctx context.Context, userID string) (int, error)
	RequireActivated(ctx context.Context, userID string) error
}

type DocumentReader interface {
	GetOwned(ctx context.Context, id, userID string) (*document.MenuDocument, error)
}

type RestaurantReader interface {
	GetOwned(ctx context.Context, id, ownerID string) (*restaurant.Restaurant, error)
}

type Storage interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type Service struct {
	repo        Repository
	credits     CreditLedger
	documents   DocumentReader
	restaurants RestaurantReader
	client      llm.Client
	storage     Storage
}

func NewService(
	repo Repository,
	credits CreditLedger,
	documents DocumentReader,
	restaurants RestaurantReader,
	client llm.Client,
	storage Storage,
) *Service {
	return &Service{
		repo:        repo,
		credits:     credits,
		documents:   documents,
		restaurants: restaurants,
		client:      client,
		storage:     storage,
	}
}

type GenerateRequest struct {
	MenuName     string          `json:"menu_name"`
	MenuText     string          `json:"menu_text"`
	DocumentID   string          `json:"document_id"`
	RestaurantID string          `json:"restaurant_id"`
	VariantCount int             `json:"variant_count"`
	Style        llm.StyleParams `json:"style"`
}

// Generate runs the whole design flow: resolve source text, check
// credits, prompt the model per variant, archive the HTML, spend one
// credit, persist. The conditional decrement is the authoritative
// credit check; the up-front read only avoids paying for LLM calls
// that could never be served.
func (s *Service) Generate(ctx context.Context, userID string, req GenerateRequest) (*Generation, error) {
	sourceText, docID, err := s.resolveSource(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	ok, err := s.credits.HasCredits(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, profile.ErrInsufficientCredits
	}

	var restCtx *llm.RestaurantContext
	var restID *string
	if req.RestaurantID != "" {
		rest, err := s.restaurants.GetOwned(ctx, req.RestaurantID, userID)
		if err != nil {
			return nil, err
		}
		restID = &rest.ID
		restCtx = &llm.RestaurantContext{
			Name:        rest.Name,
			City:        rest.City,
			CuisineType: rest.CuisineType,
			Description: rest.ShortDescription,
		}
	}

	variantCount := req.VariantCount
	if variantCount < 1 {
		variantCount = 1
	}
	if variantCount > 3 {
		variantCount = 3
	}

	menuName := req.MenuName
	if menuName == "" {
		menuName = "Menu"
	}

	g := &Generation{
		ID:           uuid.New().String(),
		UserID:       userID,
		RestaurantID: restID,
		DocumentID:   docID,
		MenuName:     menuName,
		SourceText:   sourceText,
		Style:        req.Style,
	}

	var variants []string
	for i := 0; i < variantCount; i++ {
		prompt := llm.BuildMenuDesignPrompt(sourceText, req.Style, restCtx, i)

		html, err := s.client.GenerateDesign(ctx, prompt)
		if err != nil {
			log.Printf("GEN_VARIANT_FAILED user=%s variant=%d err=%v", userID, i, err)
			continue
		}
		variants = append(variants, html)
	}

	if len(variants) == 0 {
		msg := "design generation failed"
		g.Status = StatusFailed
		g.Error = &msg
		if saveErr := s.repo.Save(ctx, g); saveErr != nil {
			log.Printf("GEN_SAVE_FAILED user=%s err=%v", userID, saveErr)
		}
		return nil, errors.New(msg)
	}

	g.HTMLVariants = variants
	g.DesignURLs = s.archiveVariants(ctx, userID, g)

	// Spend last so a provider failure never costs a credit.
	if _, err := s.credits.SpendCredit(ctx, userID); err != nil {
		return nil, err
	}

	g.Status = StatusCompleted
	if err := s.repo.Save(ctx, g); err != nil {
		return nil, err
	}

	log.Printf("GEN_DONE id=%s user=%s variants=%d", g.ID, userID, len(variants))
	return g, nil
}

func (s *Service) resolveSource(ctx context.Context, userID string, req GenerateRequest) (string, *string, error) {
	if req.DocumentID != "" {
		doc, err := s.documents.GetOwned(ctx, req.DocumentID, userID)
		if err != nil {
			return "", nil, err
		}
		return doc.ExtractedText, &doc.ID, nil
	}

	if strings.TrimSpace(req.MenuText) == "" {
		return "", nil, ErrNoSource
	}

	return document.CleanMenuText(req.MenuText), nil, nil
}

// archiveVariants uploads each HTML variant to object storage.
// Best-effort: a storage failure must not waste the LLM output.
func (s *Service) archiveVariants(ctx context.Context, userID string, g *Generation) []string {
	if s.storage == nil {
		return nil
	}

	var urls []string
	for i, html := range g.HTMLVariants {
		key := fmt.Sprintf("designs/%s/%s/variant-%d.html", userID, g.ID, i)

		url, err := s.storage.Upload(ctx, key, strings.NewReader(html), "text/html")
		if err != nil {
			log.Printf("GEN_ARCHIVE_FAILED user=%s variant=%d err=%v", userID, i, err)
			continue
		}
		urls = append(urls, url)
	}
	return urls
}

func (s *Service) GetOwned(ctx context.Context, id, userID string) (*Generation, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g.UserID != userID {
		return nil, ErrNotGenerationOwner
	}
	return g, nil
}

func (s *Service) ListMine(ctx context.Context, userID string) ([]Summary, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Recent(ctx context.Context, limit int) ([]Summary, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.repo.Recent(ctx, limit)
}

// DownloadVariant returns one HTML variant, gated on activation.
func (s *Service) DownloadVariant(ctx context.Context, id, userID string, variant int) (string, string, error) {
	if err := s.credits.RequireActivated(ctx, userID); err != nil {
		return "", "", err
	}

	g, err := s.GetOwned(ctx, id, userID)
	if err != nil {
		return "", "", err
	}

	if variant < 0 || variant >= len(g.HTMLVariants) {
		return "", "", ErrVariantOutOfRange
	}

	filename := fmt.Sprintf("%s-variant-%d.html", strings.ReplaceAll(g.MenuName, " ", "-"), variant+1)
	return g.HTMLVariants[variant], filename, nil
}
