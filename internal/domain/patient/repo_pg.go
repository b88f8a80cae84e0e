package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const patientCols = `id, name, age, gender, contact_info, allergies, email, created_by, created_at`
const searchCols = `id, name, age, gender, contact_info`

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO patients (id, name, age, gender, contact_info, allergies, email, created_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		p.ID, p.Name, p.Age, p.Gender, p.ContactInfo, p.Allergies, p.Email, p.CreatedBy,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	var p Patient
	err := r.pool.QueryRow(ctx, `SELECT `+patientCols+` FROM patients WHERE id = $1`, id).Scan(
		&p.ID, &p.Name, &p.Age, &p.Gender, &p.ContactInfo, &p.Allergies, &p.Email, &p.CreatedBy, &p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repoPG) UpdateAllergies(ctx context.Context, id uuid.UUID, allergies *string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE patients SET allergies = $2 WHERE id = $1`, id, allergies)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) Search(ctx context.Context, query string, limit int) ([]*SearchResult, error) {
	// Name matches rank ahead of contact matches, mirroring the two-pass
	// search the product expects.
	rows, err := r.pool.Query(ctx, `
		SELECT `+searchCols+` FROM patients
		WHERE name ILIKE '%' || $1 || '%' OR contact_info ILIKE '%' || $1 || '%'
		ORDER BY (name ILIKE '%' || $1 || '%') DESC, created_at DESC
		LIMIT $2`, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSearchResults(rows)
}

func (r *repoPG) Recent(ctx context.Context, limit int) ([]*SearchResult, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+searchCols+` FROM patients ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSearchResults(rows)
}

func (r *repoPG) LinkDoctor(ctx context.Context, doctorID, patientID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO doctor_patients (doctor_id, patient_id)
		VALUES ($1, $2)
		ON CONFLICT (doctor_id, patient_id) DO NOTHING`, doctorID, patientID)
	return err
}

func (r *repoPG) ListForDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Patient, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+patientCols+` FROM patients
		WHERE id IN (SELECT patient_id FROM doctor_patients WHERE doctor_id = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, doctorID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var patients []*Patient
	for rows.Next() {
		var p Patient
		if err := rows.Scan(&p.ID, &p.Name, &p.Age, &p.Gender, &p.ContactInfo, &p.Allergies, &p.Email, &p.CreatedBy, &p.CreatedAt); err != nil {
			return nil, err
		}
		patients = append(patients, &p)
	}
	return patients, rows.Err()
}

func collectSearchResults(rows pgx.Rows) ([]*SearchResult, error) {
	var results []*SearchResult
	for rows.Next() {
		var sr SearchResult
		if err := rows.Scan(&sr.ID, &sr.Name, &sr.Age, &sr.Gender, &sr.ContactInfo); err != nil {
			return nil, err
		}
		results = append(results, &sr)
	}
	return results, rows.Err()
}
