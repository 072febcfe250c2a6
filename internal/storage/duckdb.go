// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/recipevault/internal/models"
	"github.com/tomtom215/recipevault/internal/similarity"
)

const backendDuckDB = "duckdb"

// MemoryPath opens a DuckDB database that lives only as long as the store.
const MemoryPath = ":memory:"

// schemaTimeout bounds schema creation.
const schemaTimeout = 60 * time.Second

// DuckDBStore persists recipes, usage events and cached similarities in
// DuckDB. JSON-shaped fields are stored as TEXT so no extension is needed.
type DuckDBStore struct {
	conn   *sql.DB
	logger zerolog.Logger
	now    func() time.Time
}

// NewDuckDBStore opens (creating if needed) the database at path and
// initializes the schema. Use MemoryPath for a throwaway database.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewDuckDBStore(path string, logger zerolog.Logger) (*DuckDBStore, error) {
	if path == "" {
		path = MemoryPath
	}

	if path != MemoryPath {
		if dir := filepath.Dir(path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
			}
		}
	}

	// Extensions are never needed; disabling autoload avoids network access.
	connStr := path + "?autoinstall_known_extensions=false&autoload_known_extensions=false"

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &DuckDBStore{
		conn:   conn,
		logger: logger.With().Str("component", "storage").Str("backend", backendDuckDB).Logger(),
		now:    time.Now,
	}

	if err := s.createSchema(); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	s.logger.Info().Str("path", path).Msg("DuckDB store opened")
	return s, nil
}

func (s *DuckDBStore) createSchema() error {
	ctx, cancel := context.WithTimeout(context.Background(), schemaTimeout)
	defer cancel()

	queries := []string{
		`CREATE SEQUENCE IF NOT EXISTS recipes_id_seq START 1`,
		`CREATE TABLE IF NOT EXISTS recipes (
			id BIGINT PRIMARY KEY DEFAULT nextval('recipes_id_seq'),
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			ingredients TEXT NOT NULL DEFAULT '[]',
			instructions TEXT NOT NULL DEFAULT '[]',
			tips TEXT NOT NULL DEFAULT '[]',
			cuisine_type TEXT NOT NULL DEFAULT '',
			difficulty TEXT NOT NULL DEFAULT '',
			total_time_minutes INTEGER NOT NULL DEFAULT 0,
			prep_time_minutes INTEGER NOT NULL DEFAULT 0,
			cook_time_minutes INTEGER NOT NULL DEFAULT 0,
			servings INTEGER NOT NULL DEFAULT 0,
			image_url TEXT NOT NULL DEFAULT '',
			meal_types TEXT NOT NULL DEFAULT '[]',
			dietary_tags TEXT NOT NULL DEFAULT '[]',
			editors_pick BOOLEAN NOT NULL DEFAULT false,
			text_blob TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS usage_events (
			recipe_id BIGINT NOT NULL,
			used_at TIMESTAMP NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_usage_events_recipe ON usage_events(recipe_id)`,
		`CREATE TABLE IF NOT EXISTS recipe_similarity (
			recipe_id BIGINT NOT NULL,
			other_recipe_id BIGINT NOT NULL,
			score DOUBLE NOT NULL,
			explanation TEXT NOT NULL DEFAULT '',
			computed_at TIMESTAMP NOT NULL,
			PRIMARY KEY (recipe_id, other_recipe_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_recipe_similarity_other ON recipe_similarity(other_recipe_id)`,
	}

	for _, query := range queries {
		if _, err := s.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}
	return nil
}

const recipeColumns = `id, title, description, ingredients, instructions, tips,
	cuisine_type, difficulty, total_time_minutes, prep_time_minutes, cook_time_minutes,
	servings, image_url, meal_types, dietary_tags, editors_pick, text_blob,
	created_at, updated_at`

// ListRecipes returns recipes matching filter ordered by ID. Cuisine and
// difficulty are matched in SQL; the remaining criteria are applied with
// RecipeFilter.Matches so both backends agree.
func (s *DuckDBStore) ListRecipes(ctx context.Context, filter models.RecipeFilter) (recipes []*models.Recipe, err error) {
	defer observe(backendDuckDB, "list_recipes", time.Now(), &err)

	var (
		where []string
		args  []any
	)
	if c := strings.TrimSpace(filter.Cuisine); c != "" {
		where = append(where, "lower(trim(cuisine_type)) = lower(?)")
		args = append(args, c)
	}
	if d := strings.TrimSpace(filter.Difficulty); d != "" {
		where = append(where, "lower(trim(difficulty)) = lower(?)")
		args = append(args, d)
	}

	query := "SELECT " + recipeColumns + " FROM recipes"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id"

	all, err := s.queryRecipes(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	recipes = make([]*models.Recipe, 0, len(all))
	for _, r := range all {
		if filter.Matches(r) {
			recipes = append(recipes, r)
		}
	}
	return applyLimit(recipes, filter.Limit), nil
}

// GetRecipeByID returns the recipe or nil when absent.
func (s *DuckDBStore) GetRecipeByID(ctx context.Context, id int64) (r *models.Recipe, err error) {
	defer observe(backendDuckDB, "get_recipe", time.Now(), &err)

	recipes, err := s.queryRecipes(ctx, "SELECT "+recipeColumns+" FROM recipes WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, nil
	}
	return recipes[0], nil
}

// GetAllRecipes returns every recipe ordered by ID.
func (s *DuckDBStore) GetAllRecipes(ctx context.Context) (recipes []*models.Recipe, err error) {
	defer observe(backendDuckDB, "get_all_recipes", time.Now(), &err)
	return s.queryRecipes(ctx, "SELECT "+recipeColumns+" FROM recipes ORDER BY id")
}

// GetRecipeUsageCount returns the number of usage events for the recipe.
func (s *DuckDBStore) GetRecipeUsageCount(ctx context.Context, id int64) (count int, err error) {
	defer observe(backendDuckDB, "usage_count", time.Now(), &err)

	err = s.conn.QueryRowContext(ctx, "SELECT count(*) FROM usage_events WHERE recipe_id = ?", id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count usage for recipe %d: %w", id, err)
	}
	return count, nil
}

// CountRecipes returns the number of stored recipes.
func (s *DuckDBStore) CountRecipes(ctx context.Context) (int, error) {
	var count int
	if err := s.conn.QueryRowContext(ctx, "SELECT count(*) FROM recipes").Scan(&count); err != nil {
		return 0, fmt.Errorf("count recipes: %w", err)
	}
	return count, nil
}

// SaveRecipe inserts or replaces a recipe and drops its cached similarities
// in the same transaction.
func (s *DuckDBStore) SaveRecipe(ctx context.Context, r *models.Recipe) (saved *models.Recipe, err error) {
	defer observe(backendDuckDB, "save_recipe", time.Now(), &err)

	saved = prepareForSave(r, s.now())
	cols, err := encodeRecipe(saved)
	if err != nil {
		return nil, err
	}

	err = s.withTx(ctx, func(tx *sql.Tx) error {
		if saved.ID == 0 {
			row := tx.QueryRowContext(ctx, `INSERT INTO recipes (
				title, description, ingredients, instructions, tips,
				cuisine_type, difficulty, total_time_minutes, prep_time_minutes, cook_time_minutes,
				servings, image_url, meal_types, dietary_tags, editors_pick, text_blob,
				created_at, updated_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			RETURNING id`, cols...)
			return row.Scan(&saved.ID)
		}

		var createdAt time.Time
		err := tx.QueryRowContext(ctx, "SELECT created_at FROM recipes WHERE id = ?", saved.ID).Scan(&createdAt)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %d", ErrNotFound, saved.ID)
		}
		if err != nil {
			return fmt.Errorf("load recipe %d: %w", saved.ID, err)
		}
		saved.CreatedAt = createdAt
		cols[len(cols)-2] = createdAt

		args := append(cols, saved.ID)
		if _, err := tx.ExecContext(ctx, `UPDATE recipes SET
			title = ?, description = ?, ingredients = ?, instructions = ?, tips = ?,
			cuisine_type = ?, difficulty = ?, total_time_minutes = ?, prep_time_minutes = ?, cook_time_minutes = ?,
			servings = ?, image_url = ?, meal_types = ?, dietary_tags = ?, editors_pick = ?, text_blob = ?,
			created_at = ?, updated_at = ?
			WHERE id = ?`, args...); err != nil {
			return fmt.Errorf("update recipe %d: %w", saved.ID, err)
		}

		return invalidateTx(ctx, tx, saved.ID)
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// DeleteRecipe removes a recipe with its usage events and similarities.
func (s *DuckDBStore) DeleteRecipe(ctx context.Context, id int64) (err error) {
	defer observe(backendDuckDB, "delete_recipe", time.Now(), &err)

	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM recipes WHERE id = ?", id)
		if err != nil {
			return fmt.Errorf("delete recipe %d: %w", id, err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return fmt.Errorf("%w: %d", ErrNotFound, id)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM usage_events WHERE recipe_id = ?", id); err != nil {
			return fmt.Errorf("delete usage for recipe %d: %w", id, err)
		}
		return invalidateTx(ctx, tx, id)
	})
}

// RecordUsage appends a usage event.
func (s *DuckDBStore) RecordUsage(ctx context.Context, id int64) (err error) {
	defer observe(backendDuckDB, "record_usage", time.Now(), &err)

	r, err := s.GetRecipeByID(ctx, id)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}

	if _, err := s.conn.ExecContext(ctx, "INSERT INTO usage_events (recipe_id, used_at) VALUES (?, ?)", id, s.now()); err != nil {
		return fmt.Errorf("record usage for recipe %d: %w", id, err)
	}
	return nil
}

// GetCachedSimilarities returns the entries anchored at recipeID.
func (s *DuckDBStore) GetCachedSimilarities(ctx context.Context, recipeID int64) (entries []similarity.CachedSimilarity, err error) {
	defer observe(backendDuckDB, "get_similarities", time.Now(), &err)

	rows, err := s.conn.QueryContext(ctx,
		"SELECT other_recipe_id, score, explanation FROM recipe_similarity WHERE recipe_id = ?", recipeID)
	if err != nil {
		return nil, fmt.Errorf("query similarities for recipe %d: %w", recipeID, err)
	}
	defer closeQuietly(rows)

	entries = make([]similarity.CachedSimilarity, 0)
	for rows.Next() {
		var (
			e           similarity.CachedSimilarity
			explanation string
		)
		if err := rows.Scan(&e.OtherID, &e.Score, &explanation); err != nil {
			return nil, fmt.Errorf("scan similarity: %w", err)
		}
		if explanation != "" {
			e.ExplanationJSON = []byte(explanation)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate similarities: %w", err)
	}
	return entries, nil
}

// PutCachedSimilarity upserts the (recipeID, otherID) entry.
func (s *DuckDBStore) PutCachedSimilarity(ctx context.Context, recipeID, otherID int64, score float64, exp similarity.Explanation) (err error) {
	defer observe(backendDuckDB, "put_similarity", time.Now(), &err)

	data, err := similarity.MarshalExplanation(exp)
	if err != nil {
		return err
	}

	_, err = s.conn.ExecContext(ctx, `INSERT OR REPLACE INTO recipe_similarity
		(recipe_id, other_recipe_id, score, explanation, computed_at) VALUES (?, ?, ?, ?, ?)`,
		recipeID, otherID, score, string(data), s.now())
	if err != nil {
		return fmt.Errorf("store similarity %d->%d: %w", recipeID, otherID, err)
	}
	return nil
}

// InvalidateSimilarities drops entries where recipeID is either side.
func (s *DuckDBStore) InvalidateSimilarities(ctx context.Context, recipeID int64) (err error) {
	defer observe(backendDuckDB, "invalidate_similarities", time.Now(), &err)
	return s.withTx(ctx, func(tx *sql.Tx) error {
		return invalidateTx(ctx, tx, recipeID)
	})
}

// Close releases the database.
func (s *DuckDBStore) Close() error {
	return s.conn.Close()
}

func invalidateTx(ctx context.Context, tx *sql.Tx, recipeID int64) error {
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM recipe_similarity WHERE recipe_id = ? OR other_recipe_id = ?", recipeID, recipeID); err != nil {
		return fmt.Errorf("invalidate similarities for recipe %d: %w", recipeID, err)
	}
	return nil
}

func (s *DuckDBStore) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.logger.Warn().Err(rbErr).Msg("Rollback failed")
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (s *DuckDBStore) queryRecipes(ctx context.Context, query string, args ...any) ([]*models.Recipe, error) {
	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query recipes: %w", err)
	}
	defer closeQuietly(rows)

	recipes := make([]*models.Recipe, 0)
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipes: %w", err)
	}
	return recipes, nil
}

// encodeRecipe returns the INSERT column values in recipeColumns order,
// without id.
func encodeRecipe(r *models.Recipe) ([]any, error) {
	ingredients, err := json.Marshal(r.Ingredients)
	if err != nil {
		return nil, fmt.Errorf("marshal ingredients: %w", err)
	}
	instructions, err := marshalStrings(r.Instructions)
	if err != nil {
		return nil, err
	}
	tips, err := marshalStrings(r.Tips)
	if err != nil {
		return nil, err
	}
	mealTypes, err := marshalStrings(r.MealTypes)
	if err != nil {
		return nil, err
	}
	dietary, err := marshalStrings(r.DietaryTags)
	if err != nil {
		return nil, err
	}

	return []any{
		r.Title, r.Description, string(ingredients), instructions, tips,
		r.CuisineType, r.Difficulty, r.TotalTimeMinutes, r.PrepTimeMinutes, r.CookTimeMinutes,
		r.Servings, r.ImageURL, mealTypes, dietary, r.EditorsPick, r.TextBlob,
		r.CreatedAt, r.UpdatedAt,
	}, nil
}

func marshalStrings(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("marshal list: %w", err)
	}
	return string(data), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row rowScanner) (*models.Recipe, error) {
	var (
		r                                                     models.Recipe
		ingredients, instructions, tips, mealTypes, dietary string
	)
	err := row.Scan(
		&r.ID, &r.Title, &r.Description, &ingredients, &instructions, &tips,
		&r.CuisineType, &r.Difficulty, &r.TotalTimeMinutes, &r.PrepTimeMinutes, &r.CookTimeMinutes,
		&r.Servings, &r.ImageURL, &mealTypes, &dietary, &r.EditorsPick, &r.TextBlob,
		&r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan recipe: %w", err)
	}

	if err := json.Unmarshal([]byte(ingredients), &r.Ingredients); err != nil {
		return nil, fmt.Errorf("decode ingredients of recipe %d: %w", r.ID, err)
	}
	if len(r.Ingredients) == 0 {
		r.Ingredients = nil
	}
	for _, field := range []struct {
		raw  string
		dest *[]string
	}{
		{instructions, &r.Instructions},
		{tips, &r.Tips},
		{mealTypes, &r.MealTypes},
		{dietary, &r.DietaryTags},
	} {
		if err := json.Unmarshal([]byte(field.raw), field.dest); err != nil {
			return nil, fmt.Errorf("decode recipe %d: %w", r.ID, err)
		}
		if len(*field.dest) == 0 {
			*field.dest = nil
		}
	}
	r.EnsureTextBlob()
	return &r, nil
}

func closeQuietly(c interface{ Close() error }) {
	_ = c.Close()
}

var (
	_ RecipeStore     = (*DuckDBStore)(nil)
	_ SimilarityStore = (*DuckDBStore)(nil)
)
