package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/lifeos-app/lifeos/internal/errors"
	"github.com/lifeos-app/lifeos/internal/models"
)

func (s *Store) AddSkill(skill models.Skill) error {
	_, err := s.db.Exec(`
		INSERT INTO skills (id, user_id, name, category, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		skill.ID, skill.UserID, skill.Name, skill.Category, skill.CreatedAt.Format(time.RFC3339))

	return err
}

func (s *Store) GetSkill(userID, id string) (models.Skill, error) {
	row := s.db.QueryRow(`
		SELECT id, user_id, name, category, created_at
		FROM skills WHERE user_id = $1 AND id = $2`, userID, id)

	sk, err := scanSkill(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Skill{}, fmt.Errorf("skill %s: %w", id, apperrors.ErrNotFound)
		}
		return models.Skill{}, err
	}
	return sk, nil
}

func (s *Store) GetAllSkills(userID string) ([]models.Skill, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, name, category, created_at
		FROM skills WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []models.Skill
	for rows.Next() {
		sk, err := scanSkill(rows.Scan)
		if err != nil {
			return nil, err
		}
		skills = append(skills, sk)
	}

	return skills, rows.Err()
}

// DeleteSkill removes the skill; its ratings go with it via ON DELETE CASCADE
func (s *Store) DeleteSkill(userID, id string) error {
	result, err := s.db.Exec(`DELETE FROM skills WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("skill %s: %w", id, apperrors.ErrNotFound)
	}

	return nil
}

// Ratings

func (s *Store) AddRating(rating models.SkillRating) error {
	_, err := s.db.Exec(`
		INSERT INTO skill_ratings (id, user_id, skill_id, rating, notes, proof_link, rated_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rating.ID, rating.UserID, rating.SkillID, rating.Rating, rating.Notes,
		rating.ProofLink, rating.RatedAt, rating.CreatedAt.Format(time.RFC3339))

	return err
}

func (s *Store) GetRatingsForSkill(userID, skillID string) ([]models.SkillRating, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, skill_id, rating, notes, proof_link, rated_at, created_at
		FROM skill_ratings WHERE user_id = $1 AND skill_id = $2
		ORDER BY rated_at ASC, created_at ASC`, userID, skillID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRatings(rows)
}

func (s *Store) GetAllRatings(userID string) ([]models.SkillRating, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, skill_id, rating, notes, proof_link, rated_at, created_at
		FROM skill_ratings WHERE user_id = $1
		ORDER BY rated_at ASC, created_at ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRatings(rows)
}

func scanSkill(scan func(...any) error) (models.Skill, error) {
	var sk models.Skill
	var createdAt string

	err := scan(&sk.ID, &sk.UserID, &sk.Name, &sk.Category, &createdAt)
	if err != nil {
		return models.Skill{}, err
	}

	sk.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Skill{}, fmt.Errorf("failed to parse created_at for skill %s: %w", sk.ID, err)
	}

	return sk, nil
}

func scanRating(scan func(...any) error) (models.SkillRating, error) {
	var r models.SkillRating
	var createdAt string

	err := scan(&r.ID, &r.UserID, &r.SkillID, &r.Rating, &r.Notes, &r.ProofLink, &r.RatedAt, &createdAt)
	if err != nil {
		return models.SkillRating{}, err
	}

	r.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.SkillRating{}, fmt.Errorf("failed to parse created_at for rating %s: %w", r.ID, err)
	}

	return r, nil
}

func collectRatings(rows *sql.Rows) ([]models.SkillRating, error) {
	var ratings []models.SkillRating
	for rows.Next() {
		r, err := scanRating(rows.Scan)
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, r)
	}
	return ratings, rows.Err()
}
