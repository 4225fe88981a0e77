package goals

import (
	"fmt"
	"strings"
	"time"

	"github.com/goalverse/goalverse/internal/storage"
)

// Service handles goal operations
type Service struct {
	db *storage.DB
}

// NewService creates a new goal service
func NewService(db *storage.DB) *Service {
	return &Service{db: db}
}

// Create creates a new goal entry
func (s *Service) Create(goal *Goal) error {
	if strings.TrimSpace(goal.Title) == "" {
		return fmt.Errorf("goal title cannot be empty")
	}

	query := `
		INSERT INTO goals (title, description, category, completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	now := time.Now()
	row := s.db.GetConnection().QueryRow(query,
		goal.Title,
		goal.Description,
		goal.Category,
		goal.Completed,
		now,
		now,
	)

	if err := row.Scan(&goal.ID); err != nil {
		return err
	}

	goal.CreatedAt = now
	goal.UpdatedAt = now

	return nil
}

// Update updates an existing goal entry
func (s *Service) Update(goal *Goal) error {
	if strings.TrimSpace(goal.Title) == "" {
		return fmt.Errorf("goal title cannot be empty")
	}

	query := `
		UPDATE goals
		SET title = ?, description = ?, category = ?, completed = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := s.db.GetConnection().Exec(query,
		goal.Title,
		goal.Description,
		goal.Category,
		goal.Completed,
		time.Now(),
		goal.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("goal with ID %d not found", goal.ID)
	}

	goal.UpdatedAt = time.Now()

	return nil
}

// Get retrieves a goal by ID
func (s *Service) Get(id int64) (*Goal, error) {
	query := `
		SELECT id, title, description, category, completed, created_at, updated_at
		FROM goals
		WHERE id = ?
	`

	var goal Goal
	err := s.db.GetConnection().QueryRow(query, id).Scan(
		&goal.ID,
		&goal.Title,
		&goal.Description,
		&goal.Category,
		&goal.Completed,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &goal, nil
}

// List returns all goals, most recently created first
func (s *Service) List() ([]*Goal, error) {
	query := `
		SELECT id, title, description, category, completed, created_at, updated_at
		FROM goals
		ORDER BY created_at DESC, id DESC
	`

	rows, err := s.db.GetConnection().Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Goal
	for rows.Next() {
		var goal Goal
		if err := rows.Scan(
			&goal.ID,
			&goal.Title,
			&goal.Description,
			&goal.Category,
			&goal.Completed,
			&goal.CreatedAt,
			&goal.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &goal)
	}

	return result, rows.Err()
}

// ListActive returns goals that have not been completed yet
func (s *Service) ListActive() ([]*Goal, error) {
	all, err := s.List()
	if err != nil {
		return nil, err
	}

	active := make([]*Goal, 0, len(all))
	for _, goal := range all {
		if !goal.Completed {
			active = append(active, goal)
		}
	}
	return active, nil
}

// ToggleComplete flips the completion state of a goal
func (s *Service) ToggleComplete(id int64) (*Goal, error) {
	goal, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	goal.Completed = !goal.Completed
	if err := s.Update(goal); err != nil {
		return nil, err
	}

	return goal, nil
}

// Delete removes a goal
func (s *Service) Delete(id int64) error {
	result, err := s.db.GetConnection().Exec("DELETE FROM goals WHERE id = ?", id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("goal with ID %d not found", id)
	}

	return nil
}
