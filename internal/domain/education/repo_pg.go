package education

import (
	"context"
	"errors"
	"fmt"

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

const eduCols = `pe.id, pe.encounter_id, pe.patient_id, pe.doctor_id,
	pe.title, pe.description, pe.content, pe.status,
	pe.sent_at, pe.viewed_at, pe.created_at,
	p.name, p.age, p.gender,
	e.diagnosis, e.chief_complaint, e.visit_number`

const eduJoin = `FROM patient_education pe
	JOIN patients p ON p.id = pe.patient_id
	JOIN encounters e ON e.id = pe.encounter_id`

const sumCols = `ps.id, ps.encounter_id, ps.patient_id, ps.doctor_id,
	ps.summary_text, ps.key_findings, ps.important_changes, ps.follow_up_notes,
	ps.created_at, ps.updated_at,
	p.name, e.diagnosis, e.visit_number`

const sumJoin = `FROM patient_summary ps
	JOIN patients p ON p.id = ps.patient_id
	JOIN encounters e ON e.id = ps.encounter_id`

func (r *repoPG) InsertEducation(ctx context.Context, e *PatientEducation) error {
	e.ID = uuid.New()
	if e.Status == "" {
		e.Status = StatusPending
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO patient_education (
			id, encounter_id, patient_id, doctor_id, title, description, content, status
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		e.ID, e.EncounterID, e.PatientID, e.DoctorID, e.Title, e.Description, e.Content, e.Status,
	)
	return err
}

func (r *repoPG) GetEducationByID(ctx context.Context, id uuid.UUID) (*PatientEducation, error) {
	edu, err := scanEducation(r.pool.QueryRow(ctx,
		`SELECT `+eduCols+` `+eduJoin+` WHERE pe.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrEducationNotFound
	}
	return edu, err
}

func (r *repoPG) GetEducationByEncounter(ctx context.Context, encounterID uuid.UUID) (*PatientEducation, error) {
	edu, err := scanEducation(r.pool.QueryRow(ctx,
		`SELECT `+eduCols+` `+eduJoin+` WHERE pe.encounter_id = $1`, encounterID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrEducationNotFound
	}
	return edu, err
}

func (r *repoPG) ListEducationForDoctor(ctx context.Context, doctorID uuid.UUID, status string, limit, offset int) ([]*PatientEducation, int, error) {
	query := `SELECT ` + eduCols + ` ` + eduJoin + ` WHERE pe.doctor_id = $1`
	countQuery := `SELECT COUNT(*) FROM patient_education WHERE doctor_id = $1`
	countArgs := []any{doctorID}
	if status != "" {
		query += ` AND pe.status = $2`
		countQuery += ` AND status = $2`
		countArgs = append(countArgs, status)
	}
	args := append(append([]any{}, countArgs...), limit, offset)
	query += fmt.Sprintf(` ORDER BY pe.created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []*PatientEducation
	for rows.Next() {
		edu, err := scanEducation(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, edu)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *repoPG) UpdateEducation(ctx context.Context, id uuid.UUID, in UpdateEducationInput) error {
	if in.IsEmpty() {
		return ErrNoUpdateFields
	}

	set := ""
	args := []any{id}
	add := func(col string, val any) {
		args = append(args, val)
		if set != "" {
			set += ", "
		}
		set += fmt.Sprintf("%s = $%d", col, len(args))
	}
	if in.Title != nil {
		add("title", *in.Title)
	}
	if in.Description != nil {
		add("description", *in.Description)
	}
	if in.Content != nil {
		add("content", *in.Content)
	}
	if in.Status != nil {
		add("status", *in.Status)
		switch *in.Status {
		case StatusSent:
			set += ", sent_at = now()"
		case StatusViewed:
			set += ", viewed_at = now()"
		}
	}

	tag, err := r.pool.Exec(ctx, `UPDATE patient_education SET `+set+` WHERE id = $1`, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEducationNotFound
	}
	return nil
}

func (r *repoPG) MarkEducationSent(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE patient_education SET status = $2, sent_at = now() WHERE id = $1`, id, StatusSent)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEducationNotFound
	}
	return nil
}

func (r *repoPG) InsertSummary(ctx context.Context, s *PatientSummary) error {
	s.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO patient_summary (
			id, encounter_id, patient_id, doctor_id,
			summary_text, key_findings, important_changes, follow_up_notes
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		s.ID, s.EncounterID, s.PatientID, s.DoctorID,
		s.SummaryText, s.KeyFindings, s.ImportantChanges, s.FollowUpNotes,
	)
	return err
}

func (r *repoPG) GetSummaryByEncounter(ctx context.Context, encounterID uuid.UUID) (*PatientSummary, error) {
	sum, err := scanSummary(r.pool.QueryRow(ctx,
		`SELECT `+sumCols+` `+sumJoin+` WHERE ps.encounter_id = $1`, encounterID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSummaryNotFound
	}
	return sum, err
}

func (r *repoPG) ListSummariesForDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*PatientSummary, int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+sumCols+` `+sumJoin+` WHERE ps.doctor_id = $1 ORDER BY ps.created_at DESC LIMIT $2 OFFSET $3`,
		doctorID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list, err := collectSummaries(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM patient_summary WHERE doctor_id = $1`, doctorID).Scan(&total); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *repoPG) ListSummariesForPatient(ctx context.Context, patientID uuid.UUID, limit int) ([]*PatientSummary, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+sumCols+` `+sumJoin+` WHERE ps.patient_id = $1 ORDER BY ps.created_at DESC LIMIT $2`,
		patientID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSummaries(rows)
}

func (r *repoPG) LatestSummaryText(ctx context.Context, patientID uuid.UUID) (string, error) {
	var text string
	err := r.pool.QueryRow(ctx, `
		SELECT summary_text FROM patient_summary
		WHERE patient_id = $1
		ORDER BY created_at DESC
		LIMIT 1`, patientID).Scan(&text)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	return text, err
}

func scanEducation(row pgx.Row) (*PatientEducation, error) {
	var e PatientEducation
	err := row.Scan(
		&e.ID, &e.EncounterID, &e.PatientID, &e.DoctorID,
		&e.Title, &e.Description, &e.Content, &e.Status,
		&e.SentAt, &e.ViewedAt, &e.CreatedAt,
		&e.PatientName, &e.PatientAge, &e.PatientGender,
		&e.EncounterDiagnosis, &e.EncounterChiefComplaint, &e.VisitNumber,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func scanSummary(row pgx.Row) (*PatientSummary, error) {
	var s PatientSummary
	err := row.Scan(
		&s.ID, &s.EncounterID, &s.PatientID, &s.DoctorID,
		&s.SummaryText, &s.KeyFindings, &s.ImportantChanges, &s.FollowUpNotes,
		&s.CreatedAt, &s.UpdatedAt,
		&s.PatientName, &s.EncounterDiagnosis, &s.VisitNumber,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func collectSummaries(rows pgx.Rows) ([]*PatientSummary, error) {
	var sums []*PatientSummary
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		sums = append(sums, s)
	}
	return sums, rows.Err()
}
