package document

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Save(ctx context.Context, doc *MenuDocument) error {
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO menu_documents
			(id, user_id, filename, content_type, object_key, extracted_text, char_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, doc.ID, doc.UserID, doc.Filename, doc.ContentType,
		doc.ObjectKey, doc.ExtractedText, doc.CharCount)

	return err
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*MenuDocument, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, filename, content_type, object_key,
		       extracted_text, char_count, created_at
		FROM menu_documents
		WHERE id = $1
	`, id)

	doc := &MenuDocument{}
	if err := row.Scan(
		&doc.ID, &doc.UserID, &doc.Filename, &doc.ContentType,
		&doc.ObjectKey, &doc.ExtractedText, &doc.CharCount, &doc.CreatedAt,
	); err != nil {
		return nil, errors.New("document not found")
	}
	return doc, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]MenuDocument, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, filename, content_type, object_key,
		       extracted_text, char_count, created_at
		FROM menu_documents
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []MenuDocument
	for rows.Next() {
		var doc MenuDocument
		if err := rows.Scan(
			&doc.ID, &doc.UserID, &doc.Filename, &doc.ContentType,
			&doc.ObjectKey, &doc.ExtractedText, &doc.CharCount, &doc.CreatedAt,
		); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}
