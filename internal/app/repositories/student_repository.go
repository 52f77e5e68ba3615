package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/minjaecho/teacherdesk/internal/app/models"
	"github.com/minjaecho/teacherdesk/internal/db"
	"github.com/minjaecho/teacherdesk/internal/pkg/apperrors"
	"github.com/minjaecho/teacherdesk/internal/pkg/logger"
)

var studentColumns = []string{
	"id", "grade", "class_num", "student_num", "name",
	"phone", "address", "guardian_phone1", "guardian_phone2",
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db *sqlx.DB
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// GetAll retrieves all students with their consultation histories
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	sqlStr, args, err := r.sb.Select(studentColumns...).
		From("students").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all students query: %w", err)
	}

	students := []*models.Student{}
	if err := r.db.SelectContext(ctx, &students, sqlStr, args...); err != nil {
		logger.Error().Err(err).Msg("Error querying students")
		return nil, fmt.Errorf("error querying students: %w", err)
	}

	if len(students) == 0 {
		return students, nil
	}

	ids := make([]int64, 0, len(students))
	for _, s := range students {
		ids = append(ids, s.ID)
	}

	byStudent, err := r.listConsultations(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, s := range students {
		s.Consultations = byStudent[s.ID]
		if s.Consultations == nil {
			s.Consultations = []models.Consultation{}
		}
	}

	return students, nil
}

// GetByID retrieves a student by ID, consultations included
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sqlStr, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student := &models.Student{}
	if err := r.db.GetContext(ctx, student, sqlStr, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	byStudent, err := r.listConsultations(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	student.Consultations = byStudent[id]
	if student.Consultations == nil {
		student.Consultations = []models.Consultation{}
	}

	return student, nil
}

// Create inserts a new student. The consultation history starts empty.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	sqlStr, args, err := r.sb.Insert("students").
		Columns("grade", "class_num", "student_num", "name",
			"phone", "address", "guardian_phone1", "guardian_phone2").
		Values(student.Grade, student.ClassNum, student.StudentNum, student.Name,
			student.Phone, student.Address, student.GuardianPhone1, student.GuardianPhone2).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error reading new student id: %w", err)
	}

	return id, nil
}

// Update overwrites every mutable field of an existing student
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	sqlStr, args, err := r.sb.Update("students").
		SetMap(map[string]interface{}{
			"grade":           student.Grade,
			"class_num":       student.ClassNum,
			"student_num":     student.StudentNum,
			"name":            student.Name,
			"phone":           student.Phone,
			"address":         student.Address,
			"guardian_phone1": student.GuardianPhone1,
			"guardian_phone2": student.GuardianPhone2,
		}).
		Where(squirrel.Eq{"id": student.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", student.ID).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a student by ID; consultations cascade
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	sqlStr, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// DeleteAll removes every student regardless of row count
func (r *StudentRepository) DeleteAll(ctx context.Context) error {
	sqlStr, args, err := r.sb.Delete("students").ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete all students query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing delete all students query")
		return fmt.Errorf("error deleting students: %w", err)
	}

	return nil
}

// AppendConsultation appends one dated entry to a student's history. The
// next sequence number is computed and inserted inside one transaction, so
// concurrent appends to the same student serialize instead of losing entries.
func (r *StudentRepository) AppendConsultation(ctx context.Context, studentID int64, date, content string) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		var exists bool
		existsSQL, existsArgs, err := r.sb.Select("1").
			From("students").
			Where(squirrel.Eq{"id": studentID}).
			Prefix("SELECT EXISTS (").Suffix(")").
			Limit(1).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build student existence query: %w", err)
		}
		if err := tx.GetContext(ctx, &exists, existsSQL, existsArgs...); err != nil {
			return fmt.Errorf("error checking student existence: %w", err)
		}
		if !exists {
			return apperrors.ErrStudentNotFound
		}

		var nextSeq int
		seqSQL, seqArgs, err := r.sb.Select("COALESCE(MAX(seq), 0) + 1").
			From("consultations").
			Where(squirrel.Eq{"student_id": studentID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build next seq query: %w", err)
		}
		if err := tx.GetContext(ctx, &nextSeq, seqSQL, seqArgs...); err != nil {
			return fmt.Errorf("error computing next consultation seq: %w", err)
		}

		insertSQL, insertArgs, err := r.sb.Insert("consultations").
			Columns("student_id", "seq", "date", "content").
			Values(studentID, nextSeq, date, content).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build append consultation query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
			logger.Error().Err(err).Int64("studentID", studentID).Msg("Error appending consultation")
			return fmt.Errorf("error appending consultation: %w", err)
		}

		return nil
	})
}

// listConsultations loads consultation entries for the given students,
// grouped by student id and ordered by insertion
func (r *StudentRepository) listConsultations(ctx context.Context, studentIDs []int64) (map[int64][]models.Consultation, error) {
	sqlStr, args, err := r.sb.Select("id", "student_id", "seq", "date", "content").
		From("consultations").
		Where(squirrel.Eq{"student_id": studentIDs}).
		OrderBy("student_id ASC", "seq ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list consultations query: %w", err)
	}

	entries := []models.Consultation{}
	if err := r.db.SelectContext(ctx, &entries, sqlStr, args...); err != nil {
		logger.Error().Err(err).Msg("Error querying consultations")
		return nil, fmt.Errorf("error querying consultations: %w", err)
	}

	byStudent := make(map[int64][]models.Consultation, len(studentIDs))
	for _, e := range entries {
		byStudent[e.StudentID] = append(byStudent[e.StudentID], e)
	}

	return byStudent, nil
}
