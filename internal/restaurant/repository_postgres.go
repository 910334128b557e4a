package restaurant

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

func (r *PostgresRepository) Create(ctx context.Context, rest *Restaurant) error {
	if rest.ID == "" {
		rest.ID = uuid.New().String()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO restaurants (id, owner_id, name, city, cuisine_type, short_description)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, rest.ID, rest.OwnerID, rest.Name, rest.City, rest.CuisineType, rest.ShortDescription)

	return err
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]Restaurant, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, owner_id, name, city, cuisine_type, short_description, created_at
		FROM restaurants
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []Restaurant
	for rows.Next() {
		var rest Restaurant
		if err := rows.Scan(
			&rest.ID, &rest.OwnerID, &rest.Name, &rest.City,
			&rest.CuisineType, &rest.ShortDescription, &rest.CreatedAt,
		); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Restaurant, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, owner_id, name, city, cuisine_type, short_description, created_at
		FROM restaurants
		WHERE id = $1
	`, id)

	rest := &Restaurant{}
	if err := row.Scan(
		&rest.ID, &rest.OwnerID, &rest.Name, &rest.City,
		&rest.CuisineType, &rest.ShortDescription, &rest.CreatedAt,
	); err != nil {
		return nil, errors.New("restaurant not found")
	}
	return rest, nil
}
