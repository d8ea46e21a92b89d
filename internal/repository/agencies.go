package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/communityfoodshare/agency-manager/backend/internal/domain"
)

// Agencies are stored as whole JSONB documents. The id and created_at columns
// are authoritative; whatever id/createdAt the client sent inside the body is
// overwritten on every read.

func (r *Repository) CreateAgency(agency *domain.Agency) error {
	profile, err := json.Marshal(agency)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO agencies (profile)
		VALUES ($1)
		RETURNING id, created_at
	`

	if err := r.dbpool.QueryRowContext(ctx, query, profile).Scan(&agency.ID, &agency.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAgencyByID(id int64) (*domain.Agency, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT profile, created_at FROM agencies WHERE id = $1
	`

	var profile []byte
	var createdAt time.Time
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&profile, &createdAt); err != nil {
		return nil, err
	}

	agency := &domain.Agency{}
	if err := json.Unmarshal(profile, agency); err != nil {
		return nil, err
	}
	agency.ID = id
	agency.CreatedAt = createdAt

	return agency, nil
}

// ReplaceAgency overwrites the document at id with the given record. It
// returns sql.ErrNoRows when no agency exists under that id.
func (r *Repository) ReplaceAgency(id int64, agency *domain.Agency) error {
	profile, err := json.Marshal(agency)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE agencies SET profile = $1 WHERE id = $2 RETURNING created_at
	`

	if err := r.dbpool.QueryRowContext(ctx, query, profile, id).Scan(&agency.CreatedAt); err != nil {
		return err
	}
	agency.ID = id

	return nil
}

func (r *Repository) GetAllAgencies() ([]*domain.Agency, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, profile, created_at FROM agencies ORDER BY id
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	agencies := make([]*domain.Agency, 0)
	for rows.Next() {
		var id int64
		var profile []byte
		var createdAt time.Time
		if err := rows.Scan(&id, &profile, &createdAt); err != nil {
			return nil, err
		}

		agency := &domain.Agency{}
		if err := json.Unmarshal(profile, agency); err != nil {
			return nil, err
		}
		agency.ID = id
		agency.CreatedAt = createdAt
		agencies = append(agencies, agency)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return agencies, nil
}
