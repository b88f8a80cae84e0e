package encounter

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const encCols = `e.id, e.patient_id, e.doctor_id, e.case_id, e.visit_number,
	e.chief_complaint, e.history_of_illness,
	e.temperature, e.blood_pressure, e.heart_rate, e.respiratory_rate,
	e.oxygen_saturation, e.weight, e.height,
	e.physical_exam, e.diagnosis, e.medications, e.created_at`

const encPatientCols = encCols + `,
	p.name, p.age, p.gender, p.contact_info, p.allergies`

const encJoin = `FROM encounters e JOIN patients p ON p.id = e.patient_id`

func (r *repoPG) Create(ctx context.Context, enc *Encounter) error {
	enc.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO encounters (
			id, patient_id, doctor_id, case_id, visit_number,
			chief_complaint, history_of_illness,
			temperature, blood_pressure, heart_rate, respiratory_rate,
			oxygen_saturation, weight, height,
			physical_exam, diagnosis, medications
		) VALUES (
			$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17
		)`,
		enc.ID, enc.PatientID, enc.DoctorID, enc.CaseID, enc.VisitNumber,
		enc.ChiefComplaint, enc.HistoryOfIllness,
		enc.Temperature, enc.BloodPressure, enc.HeartRate, enc.RespiratoryRate,
		enc.OxygenSaturation, enc.Weight, enc.Height,
		enc.PhysicalExam, enc.Diagnosis, enc.Medications,
	)
	if isUniqueViolation(err) {
		return ErrVisitConflict
	}
	return err
}

// CreateFollowUp assigns the next visit number inside a transaction. The
// latest visit row is locked FOR UPDATE so concurrent follow-ups for the
// same case serialize; the UNIQUE (case_id, visit_number) constraint backs
// this up if two transactions slip past each other anyway.
func (r *repoPG) CreateFollowUp(ctx context.Context, enc *Encounter) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin follow-up: %w", err)
	}
	defer tx.Rollback(ctx)

	var latestVisit int
	var latestHistory *string
	err = tx.QueryRow(ctx, `
		SELECT visit_number, history_of_illness
		FROM encounters
		WHERE case_id = $1
		ORDER BY visit_number DESC
		LIMIT 1
		FOR UPDATE`, enc.CaseID).Scan(&latestVisit, &latestHistory)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrCaseNotFound
	}
	if err != nil {
		return fmt.Errorf("read latest visit: %w", err)
	}

	enc.VisitNumber = latestVisit + 1
	if enc.HistoryOfIllness == nil {
		enc.HistoryOfIllness = latestHistory
	}

	enc.ID = uuid.New()
	_, err = tx.Exec(ctx, `
		INSERT INTO encounters (
			id, patient_id, doctor_id, case_id, visit_number,
			chief_complaint, history_of_illness,
			temperature, blood_pressure, heart_rate, respiratory_rate,
			oxygen_saturation, weight, height,
			physical_exam, diagnosis, medications
		) VALUES (
			$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17
		)`,
		enc.ID, enc.PatientID, enc.DoctorID, enc.CaseID, enc.VisitNumber,
		enc.ChiefComplaint, enc.HistoryOfIllness,
		enc.Temperature, enc.BloodPressure, enc.HeartRate, enc.RespiratoryRate,
		enc.OxygenSaturation, enc.Weight, enc.Height,
		enc.PhysicalExam, enc.Diagnosis, enc.Medications,
	)
	if isUniqueViolation(err) {
		return ErrVisitConflict
	}
	if err != nil {
		return fmt.Errorf("insert follow-up: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*EncounterWithPatient, error) {
	enc, err := scanEncPatient(r.pool.QueryRow(ctx,
		`SELECT `+encPatientCols+` `+encJoin+` WHERE e.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrEncounterNotFound
	}
	return enc, err
}

func (r *repoPG) ListByCase(ctx context.Context, caseID uuid.UUID) ([]*EncounterWithPatient, error) {
	// visit_number ordering is the sole means of reconstructing history.
	rows, err := r.pool.Query(ctx,
		`SELECT `+encPatientCols+` `+encJoin+` WHERE e.case_id = $1 ORDER BY e.visit_number ASC`, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEncPatients(rows)
}

func (r *repoPG) ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*EncounterWithPatient, error) {
	// Visits for every patient linked to the doctor, whichever doctor
	// recorded them.
	rows, err := r.pool.Query(ctx, `
		SELECT `+encPatientCols+` `+encJoin+`
		WHERE e.patient_id IN (
			SELECT patient_id FROM doctor_patients WHERE doctor_id = $1
		)
		ORDER BY e.created_at DESC
		LIMIT $2 OFFSET $3`, doctorID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEncPatients(rows)
}

func (r *repoPG) ListAll(ctx context.Context, limit, offset int) ([]*EncounterWithPatient, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+encPatientCols+` `+encJoin+` ORDER BY e.created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEncPatients(rows)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func scanEncPatient(row pgx.Row) (*EncounterWithPatient, error) {
	var e EncounterWithPatient
	err := row.Scan(
		&e.ID, &e.PatientID, &e.DoctorID, &e.CaseID, &e.VisitNumber,
		&e.ChiefComplaint, &e.HistoryOfIllness,
		&e.Temperature, &e.BloodPressure, &e.HeartRate, &e.RespiratoryRate,
		&e.OxygenSaturation, &e.Weight, &e.Height,
		&e.PhysicalExam, &e.Diagnosis, &e.Medications, &e.CreatedAt,
		&e.PatientName, &e.PatientAge, &e.PatientGender, &e.PatientContact, &e.PatientAllergies,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func collectEncPatients(rows pgx.Rows) ([]*EncounterWithPatient, error) {
	var encs []*EncounterWithPatient
	for rows.Next() {
		enc, err := scanEncPatient(rows)
		if err != nil {
			return nil, err
		}
		encs = append(encs, enc)
	}
	return encs, rows.Err()
}
