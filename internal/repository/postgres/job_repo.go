package postgres

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

// resolveSkills turns skill names into Skill rows via get-or-create inside
// the caller's transaction. The DO UPDATE dance makes RETURNING yield the id
// on conflict as well.
func resolveSkills(ctx context.Context, tx pgx.Tx, names []string) ([]domain.Skill, error) {
	skills := make([]domain.Skill, 0, len(names))
	for _, name := range names {
		var skill domain.Skill
		err := tx.QueryRow(ctx,
			`INSERT INTO skills (name) VALUES ($1)
             ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
             RETURNING id, name`, name,
		).Scan(&skill.ID, &skill.Name)
		if err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	return skills, nil
}

func attachSkills(ctx context.Context, tx pgx.Tx, jobID int64, skills []domain.Skill) error {
	for _, skill := range skills {
		_, err := tx.Exec(ctx,
			`INSERT INTO job_skills (job_id, skill_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			jobID, skill.ID,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// Create persists the job and its resolved requirement set in a single
// transaction: either the job exists with all its skills or not at all.
func (r *jobRepo) Create(ctx context.Context, job *domain.Job, skillNames []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO jobs (position, description, employer_id, is_active, salary, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err = tx.QueryRow(ctx, query,
		job.Position, job.Description, job.EmployerID, job.IsActive, job.Salary,
		job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
	if err != nil {
		return err
	}

	skills, err := resolveSkills(ctx, tx, skillNames)
	if err != nil {
		return err
	}
	if err := attachSkills(ctx, tx, job.ID, skills); err != nil {
		return err
	}
	job.Requirements = skills

	return tx.Commit(ctx)
}

const jobColumns = `id, position, description, employer_id, is_active, salary, created_at, updated_at`

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	var job domain.Job
	err := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id).Scan(
		&job.ID, &job.Position, &job.Description, &job.EmployerID,
		&job.IsActive, &job.Salary, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	job.Requirements, err = r.skillsFor(ctx, job.ID)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) skillsFor(ctx context.Context, jobID int64) ([]domain.Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT s.id, s.name FROM job_skills js
         JOIN skills s ON s.id = js.skill_id
         WHERE js.job_id = $1 ORDER BY s.name`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := []domain.Skill{}
	for rows.Next() {
		var skill domain.Skill
		if err := rows.Scan(&skill.ID, &skill.Name); err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	return skills, rows.Err()
}

// Fetch returns all jobs newest-first with their requirement sets attached
// in one extra query instead of one per job.
func (r *jobRepo) Fetch(ctx context.Context) ([]domain.Job, error) {
	rows, err := r.db.Query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	index := map[int64]int{}
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID, &job.Position, &job.Description, &job.EmployerID,
			&job.IsActive, &job.Salary, &job.CreatedAt, &job.UpdatedAt,
		); err != nil {
			return nil, err
		}
		job.Requirements = []domain.Skill{}
		index[job.ID] = len(jobs)
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	skillRows, err := r.db.Query(ctx,
		`SELECT js.job_id, s.id, s.name FROM job_skills js
         JOIN skills s ON s.id = js.skill_id ORDER BY s.name`)
	if err != nil {
		return nil, err
	}
	defer skillRows.Close()

	for skillRows.Next() {
		var jobID int64
		var skill domain.Skill
		if err := skillRows.Scan(&jobID, &skill.ID, &skill.Name); err != nil {
			return nil, err
		}
		if i, ok := index[jobID]; ok {
			jobs[i].Requirements = append(jobs[i].Requirements, skill)
		}
	}
	return jobs, skillRows.Err()
}

// Update persists job fields and, when skillNames is non-nil, replaces the
// requirement set entirely (not merged), all in one transaction.
func (r *jobRepo) Update(ctx context.Context, job *domain.Job, skillNames *[]string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `UPDATE jobs SET position = $2, description = $3, is_active = $4, salary = $5, updated_at = $6 WHERE id = $1`
	result, err := tx.Exec(ctx, query,
		job.ID, job.Position, job.Description, job.IsActive, job.Salary, job.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if skillNames != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM job_skills WHERE job_id = $1`, job.ID); err != nil {
			return err
		}
		skills, err := resolveSkills(ctx, tx, *skillNames)
		if err != nil {
			return err
		}
		if err := attachSkills(ctx, tx, job.ID, skills); err != nil {
			return err
		}
		job.Requirements = skills
	}

	return tx.Commit(ctx)
}

// Delete hard-deletes a job. Requirement associations and dependent
// applications disappear through ON DELETE CASCADE.
func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
