package services

import (
	"context"
	"fmt"

	"github.com/minjaecho/teacherdesk/internal/app/models"
	"github.com/minjaecho/teacherdesk/internal/app/models/dto"
	"github.com/minjaecho/teacherdesk/internal/app/repositories"
	"github.com/minjaecho/teacherdesk/internal/pkg/apperrors"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
	DeleteAllStudents(ctx context.Context) error
	AddConsultation(ctx context.Context, id int64, req *dto.ConsultationRequest) (*models.Student, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
	}
}

// GetAllStudents retrieves all students with decoded consultation histories
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// GetStudentByID retrieves a student by ID
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	return s.studentRepo.GetByID(ctx, id)
}

// CreateStudent creates a new student with an empty consultation history
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	student := &models.Student{
		Grade:          req.Grade,
		ClassNum:       req.ClassNum,
		StudentNum:     req.StudentNum,
		Name:           req.Name,
		Phone:          req.Phone,
		Address:        req.Address,
		GuardianPhone1: req.GuardianPhone1,
		GuardianPhone2: req.GuardianPhone2,
		Consultations:  []models.Consultation{},
	}

	id, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	student.ID = id
	return student, nil
}

// UpdateStudent overwrites every mutable field of an existing student.
// On a missing ID it reports absence without side effects.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	student := &models.Student{
		ID:             id,
		Grade:          req.Grade,
		ClassNum:       req.ClassNum,
		StudentNum:     req.StudentNum,
		Name:           req.Name,
		Phone:          req.Phone,
		Address:        req.Address,
		GuardianPhone1: req.GuardianPhone1,
		GuardianPhone2: req.GuardianPhone2,
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	// Reload to pick up the consultation history for the response
	return s.studentRepo.GetByID(ctx, id)
}

// DeleteStudent removes a student by ID
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	return s.studentRepo.Delete(ctx, id)
}

// DeleteAllStudents removes every student
func (s *studentServiceImpl) DeleteAllStudents(ctx context.Context) error {
	if err := s.studentRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("error deleting students: %w", err)
	}
	return nil
}

// AddConsultation appends one entry to a student's history and returns the
// updated student
func (s *studentServiceImpl) AddConsultation(ctx context.Context, id int64, req *dto.ConsultationRequest) (*models.Student, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	if err := s.studentRepo.AppendConsultation(ctx, id, req.Date, req.Content); err != nil {
		return nil, err
	}

	return s.studentRepo.GetByID(ctx, id)
}
