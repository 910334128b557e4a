package generation

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rogulenkoko/MenuCraft-sub000/internal/llm"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Save(ctx context.Context, g *Generation) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}

	styleJSON, err := json.Marshal(g.Style)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO menu_generations
			(id, user_id, restaurant_id, document_id, menu_name,
			 source_text, style, html_variants, design_urls, status, error)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, g.ID, g.UserID, g.RestaurantID, g.DocumentID, g.MenuName,
		g.SourceText, styleJSON, g.HTMLVariants, g.DesignURLs, g.Status, g.Error)

	return err
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Generation, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, restaurant_id, document_id, menu_name,
		       source_text, style, html_variants, design_urls,
		       status, error, created_at
		FROM menu_generations
		WHERE id = $1
	`, id)

	g := &Generation{}
	var styleJSON []byte
	if err := row.Scan(
		&g.ID, &g.UserID, &g.RestaurantID, &g.DocumentID, &g.MenuName,
		&g.SourceText, &styleJSON, &g.HTMLVariants, &g.DesignURLs,
		&g.Status, &g.Error, &g.CreatedAt,
	); err != nil {
		return nil, errors.New("generation not found")
	}

	var style llm.StyleParams
	if err := json.Unmarshal(styleJSON, &style); err == nil {
		g.Style = style
	}

	return g, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]Summary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, menu_name, status, cardinality(html_variants), created_at
		FROM menu_generations
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSummaries(rows)
}

func (r *PostgresRepository) Recent(ctx context.Context, limit int) ([]Summary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, menu_name, status, cardinality(html_variants), created_at
		FROM menu_generations
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSummaries(rows)
}

type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanSummaries(rows pgxRows) ([]Summary, error) {
	var out []Summary
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.ID, &s.MenuName, &s.Status, &s.VariantCount, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
