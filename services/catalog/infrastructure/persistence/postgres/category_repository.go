package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Lilith-exe/LilysCloset/pkg/database"
	catalogdomain "github.com/Lilith-exe/LilysCloset/services/catalog/domain"
	"github.com/Lilith-exe/LilysCloset/services/catalog/domain/models"
)

// pgUniqueViolation is the Postgres error code for unique constraint violations.
const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// CategoryRepository implements repositories.CategoryRepository against
// PostgreSQL. Name uniqueness is byte-for-byte (plain unique index, no case
// folding), so "Accessories" and "accessories" can coexist.
type CategoryRepository struct {
	db *database.Database
}

// NewCategoryRepository returns a CategoryRepository backed by the given pool.
func NewCategoryRepository(db *database.Database) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create persists a new category. Returns ErrCategoryExists on duplicate name.
func (r *CategoryRepository) Create(ctx context.Context, c *models.Category) error {
	_, err := r.db.DB().ExecContext(ctx, `
		INSERT INTO catalog_categories (id, name, custom_icon, created_at)
		VALUES ($1, $2, $3, $4)`,
		c.ID, c.Name, c.CustomIcon, c.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return catalogdomain.ErrCategoryExists
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// List retrieves all categories ordered by name ascending.
func (r *CategoryRepository) List(ctx context.Context) ([]*models.Category, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT id, name, custom_icon, created_at
		FROM catalog_categories ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	cats := make([]*models.Category, 0)
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CustomIcon, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		cats = append(cats, &c)
	}
	return cats, rows.Err()
}

// UpdateIcon sets or clears the custom icon and returns the updated category.
// Returns ErrCategoryNotFound when absent.
func (r *CategoryRepository) UpdateIcon(ctx context.Context, id uuid.UUID, icon string) (*models.Category, error) {
	var c models.Category
	err := r.db.DB().QueryRowContext(ctx, `
		UPDATE catalog_categories SET custom_icon = $2 WHERE id = $1
		RETURNING id, name, custom_icon, created_at`, id, icon,
	).Scan(&c.ID, &c.Name, &c.CustomIcon, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, catalogdomain.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update category icon: %w", err)
	}
	return &c, nil
}

// Delete removes a category permanently. Items referencing the category keep
// their denormalized name; orphaning is allowed.
func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx,
		`DELETE FROM catalog_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("delete category: %w", err)
	} else if n == 0 {
		return catalogdomain.ErrCategoryNotFound
	}
	return nil
}

// SubcategoryRepository implements repositories.SubcategoryRepository against
// PostgreSQL. Uniqueness holds per (name, parent_category) pair.
type SubcategoryRepository struct {
	db *database.Database
}

// NewSubcategoryRepository returns a SubcategoryRepository backed by the given pool.
func NewSubcategoryRepository(db *database.Database) *SubcategoryRepository {
	return &SubcategoryRepository{db: db}
}

// Create persists a new subcategory. Returns ErrSubcategoryExists when the
// (name, parent_category) pair already exists.
func (r *SubcategoryRepository) Create(ctx context.Context, s *models.Subcategory) error {
	_, err := r.db.DB().ExecContext(ctx, `
		INSERT INTO catalog_subcategories (id, name, parent_category, custom_icon, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		s.ID, s.Name, s.ParentCategory, s.CustomIcon, s.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return catalogdomain.ErrSubcategoryExists
		}
		return fmt.Errorf("insert subcategory: %w", err)
	}
	return nil
}

// ListByParent retrieves subcategories whose parent_category exactly equals
// parent, ordered by name ascending. The match is byte-exact — no case folding.
func (r *SubcategoryRepository) ListByParent(ctx context.Context, parent string) ([]*models.Subcategory, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT id, name, parent_category, custom_icon, created_at
		FROM catalog_subcategories WHERE parent_category = $1 ORDER BY name ASC`, parent)
	if err != nil {
		return nil, fmt.Errorf("query subcategories: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	subs := make([]*models.Subcategory, 0)
	for rows.Next() {
		var s models.Subcategory
		if err := rows.Scan(&s.ID, &s.Name, &s.ParentCategory, &s.CustomIcon, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan subcategory: %w", err)
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}

// UpdateIcon sets or clears the custom icon and returns the updated
// subcategory. Returns ErrSubcategoryNotFound when absent.
func (r *SubcategoryRepository) UpdateIcon(ctx context.Context, id uuid.UUID, icon string) (*models.Subcategory, error) {
	var s models.Subcategory
	err := r.db.DB().QueryRowContext(ctx, `
		UPDATE catalog_subcategories SET custom_icon = $2 WHERE id = $1
		RETURNING id, name, parent_category, custom_icon, created_at`, id, icon,
	).Scan(&s.ID, &s.Name, &s.ParentCategory, &s.CustomIcon, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, catalogdomain.ErrSubcategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update subcategory icon: %w", err)
	}
	return &s, nil
}

// Delete removes a subcategory permanently; no cascade to items.
func (r *SubcategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx,
		`DELETE FROM catalog_subcategories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete subcategory: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("delete subcategory: %w", err)
	} else if n == 0 {
		return catalogdomain.ErrSubcategoryNotFound
	}
	return nil
}
