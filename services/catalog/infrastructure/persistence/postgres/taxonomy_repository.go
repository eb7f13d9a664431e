package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Lilith-exe/LilysCloset/pkg/database"
	catalogdomain "github.com/Lilith-exe/LilysCloset/services/catalog/domain"
	"github.com/Lilith-exe/LilysCloset/services/catalog/domain/models"
)

// TaxonomyRepository implements repositories.TaxonomyRepository against
// PostgreSQL. The per-tag category scope list is stored as a JSONB array.
type TaxonomyRepository struct {
	db *database.Database
}

// NewTaxonomyRepository returns a TaxonomyRepository backed by the given pool.
func NewTaxonomyRepository(db *database.Database) *TaxonomyRepository {
	return &TaxonomyRepository{db: db}
}

// CreateTagCategory persists a new tag category. Returns ErrTagCategoryExists
// on duplicate name.
func (r *TaxonomyRepository) CreateTagCategory(ctx context.Context, tc *models.TagCategory) error {
	_, err := r.db.DB().ExecContext(ctx, `
		INSERT INTO catalog_tag_categories (id, name, created_at)
		VALUES ($1, $2, $3)`,
		tc.ID, tc.Name, tc.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return catalogdomain.ErrTagCategoryExists
		}
		return fmt.Errorf("insert tag category: %w", err)
	}
	return nil
}

// ListTagCategories retrieves all tag categories ordered by name ascending.
func (r *TaxonomyRepository) ListTagCategories(ctx context.Context) ([]*models.TagCategory, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT id, name, created_at
		FROM catalog_tag_categories ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("query tag categories: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	tcs := make([]*models.TagCategory, 0)
	for rows.Next() {
		var tc models.TagCategory
		if err := rows.Scan(&tc.ID, &tc.Name, &tc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tag category: %w", err)
		}
		tcs = append(tcs, &tc)
	}
	return tcs, rows.Err()
}

// GetTagCategory retrieves a tag category by ID. Returns ErrTagCategoryNotFound
// when absent.
func (r *TaxonomyRepository) GetTagCategory(ctx context.Context, id uuid.UUID) (*models.TagCategory, error) {
	var tc models.TagCategory
	err := r.db.DB().QueryRowContext(ctx, `
		SELECT id, name, created_at
		FROM catalog_tag_categories WHERE id = $1`, id).
		Scan(&tc.ID, &tc.Name, &tc.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogdomain.ErrTagCategoryNotFound
		}
		return nil, fmt.Errorf("query tag category: %w", err)
	}
	return &tc, nil
}

// DeleteTagCategory removes a tag category permanently.
func (r *TaxonomyRepository) DeleteTagCategory(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx,
		`DELETE FROM catalog_tag_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tag category: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("delete tag category: %w", err)
	} else if n == 0 {
		return catalogdomain.ErrTagCategoryNotFound
	}
	return nil
}

// CreateTag persists a new tag. Returns ErrTagExists when the (name, tag_type)
// pair already exists.
func (r *TaxonomyRepository) CreateTag(ctx context.Context, t *models.Tag) error {
	categories, err := json.Marshal(t.Categories)
	if err != nil {
		return fmt.Errorf("marshal tag categories: %w", err)
	}

	_, err = r.db.DB().ExecContext(ctx, `
		INSERT INTO catalog_tags (id, name, tag_type, categories, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		t.ID, t.Name, t.TagType, categories, t.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return catalogdomain.ErrTagExists
		}
		return fmt.Errorf("insert tag: %w", err)
	}
	return nil
}

// ListTags retrieves all tags ordered by tag_type ascending.
func (r *TaxonomyRepository) ListTags(ctx context.Context) ([]*models.Tag, error) {
	return r.queryTags(ctx, `
		SELECT id, name, tag_type, categories, created_at
		FROM catalog_tags ORDER BY tag_type ASC, name ASC`)
}

// ListTagsByType retrieves tags with the exact tag_type, ordered by name ascending.
func (r *TaxonomyRepository) ListTagsByType(ctx context.Context, tagType string) ([]*models.Tag, error) {
	return r.queryTags(ctx, `
		SELECT id, name, tag_type, categories, created_at
		FROM catalog_tags WHERE tag_type = $1 ORDER BY name ASC`, tagType)
}

// DeleteTag removes a tag permanently.
func (r *TaxonomyRepository) DeleteTag(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx,
		`DELETE FROM catalog_tags WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("delete tag: %w", err)
	} else if n == 0 {
		return catalogdomain.ErrTagNotFound
	}
	return nil
}

func (r *TaxonomyRepository) queryTags(ctx context.Context, query string, args ...any) ([]*models.Tag, error) {
	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tags: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	tags := make([]*models.Tag, 0)
	for rows.Next() {
		var (
			t          models.Tag
			categories []byte
		)
		if err := rows.Scan(&t.ID, &t.Name, &t.TagType, &categories, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		t.Categories = []string{}
		if len(categories) > 0 {
			if err := json.Unmarshal(categories, &t.Categories); err != nil {
				return nil, fmt.Errorf("unmarshal tag categories: %w", err)
			}
		}
		tags = append(tags, &t)
	}
	return tags, rows.Err()
}
