package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"employee-directory/internal/apperror"
	"employee-directory/internal/cache"
	"employee-directory/internal/database"
	"employee-directory/internal/model"
	"employee-directory/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	searchGenerationKey = "employees:search:gen"
	defaultSearchTTL    = 5 * time.Minute
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

var (
	searchEmployees    = store.SearchEmployees
	getEmployeeByID    = store.GetEmployeeByID
	getEmployeeByEmail = store.GetEmployeeByEmail
	createEmployee     = store.CreateEmployee
	updateEmployee     = store.UpdateEmployee
	deleteEmployee     = store.DeleteEmployee
)

type CreateEmployeeInput struct {
	Name           string
	Email          string
	Position       string
	Salary         string
	ProfilePicture *string
}

// UpdateEmployeeInput 空字串 / nil 的欄位保持原值
type UpdateEmployeeInput struct {
	Name           string
	Email          string
	Position       string
	Salary         string
	ProfilePicture *string
}

// Directory 是 handler 依賴的員工操作集合
type Directory interface {
	Search(ctx context.Context, query string) ([]model.Employee, error)
	Get(ctx context.Context, id int) (*model.Employee, error)
	Create(ctx context.Context, input CreateEmployeeInput) (*model.Employee, error)
	Update(ctx context.Context, id int, input UpdateEmployeeInput) (*model.Employee, error)
	Delete(ctx context.Context, id int) error
}

type EmployeeService struct {
	db        database.DB
	cache     cache.Cache
	searchTTL time.Duration
	log       *logrus.Entry
}

func NewEmployeeService(db database.DB, c cache.Cache, searchTTL time.Duration, log *logrus.Entry) *EmployeeService {
	if searchTTL <= 0 {
		searchTTL = defaultSearchTTL
	}
	return &EmployeeService{
		db:        db,
		cache:     c,
		searchTTL: searchTTL,
		log:       log.WithField("component", "employee_service"),
	}
}

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Search 先查快取，miss 時查資料庫並回寫；快取錯誤只記錄不中斷
func (s *EmployeeService) Search(ctx context.Context, query string) ([]model.Employee, error) {
	query = strings.TrimSpace(query)
	key := s.searchKey(ctx, query)

	if b, err := s.cache.Get(ctx, key).Bytes(); err == nil {
		var cached []model.Employee
		if err := json.Unmarshal(b, &cached); err == nil {
			return cached, nil
		}
		s.log.WithField("key", key).Warn("discarding undecodable search cache entry")
	} else if !errors.Is(err, redis.Nil) {
		s.log.WithError(err).Warn("search cache read failed")
	}

	employees, err := searchEmployees(ctx, s.db, query)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(employees); err == nil {
		if err := s.cache.Set(ctx, key, b, s.searchTTL).Err(); err != nil {
			s.log.WithError(err).Warn("search cache write failed")
		}
	}
	return employees, nil
}

func (s *EmployeeService) Get(ctx context.Context, id int) (*model.Employee, error) {
	e, err := getEmployeeByID(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.New(apperror.CodeNotFound, "Employee not found")
		}
		return nil, err
	}
	return e, nil
}

func (s *EmployeeService) Create(ctx context.Context, input CreateEmployeeInput) (*model.Employee, error) {
	email := strings.TrimSpace(input.Email)
	if !IsValidEmail(email) {
		return nil, apperror.New(apperror.CodeValidation, "Invalid email format")
	}
	salary, err := parseSalary(input.Salary)
	if err != nil {
		return nil, err
	}

	taken, err := s.emailTaken(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperror.New(apperror.CodeConflict, "Employee with this email already exists")
	}

	e, err := createEmployee(ctx, s.db, &model.Employee{
		Name:           strings.TrimSpace(input.Name),
		Email:          email,
		Position:       strings.TrimSpace(input.Position),
		Salary:         salary,
		ProfilePicture: input.ProfilePicture,
	})
	if err != nil {
		return nil, mapDatabaseError(err)
	}
	s.invalidateSearch(ctx)
	return e, nil
}

func (s *EmployeeService) Update(ctx context.Context, id int, input UpdateEmployeeInput) (*model.Employee, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if email := strings.TrimSpace(input.Email); email != "" && email != e.Email {
		if !IsValidEmail(email) {
			return nil, apperror.New(apperror.CodeValidation, "Invalid email format")
		}
		taken, err := s.emailTaken(ctx, email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperror.New(apperror.CodeConflict, "Another employee with this email already exists")
		}
		e.Email = email
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		e.Name = name
	}
	if position := strings.TrimSpace(input.Position); position != "" {
		e.Position = position
	}
	if strings.TrimSpace(input.Salary) != "" {
		salary, err := parseSalary(input.Salary)
		if err != nil {
			return nil, err
		}
		e.Salary = salary
	}
	if input.ProfilePicture != nil {
		e.ProfilePicture = input.ProfilePicture
	}

	if err := updateEmployee(ctx, s.db, e); err != nil {
		return nil, mapDatabaseError(err)
	}
	s.invalidateSearch(ctx)
	return e, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id int) error {
	removed, err := deleteEmployee(ctx, s.db, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperror.New(apperror.CodeNotFound, "Employee not found")
	}
	s.invalidateSearch(ctx)
	return nil
}

func (s *EmployeeService) emailTaken(ctx context.Context, email string) (bool, error) {
	_, err := getEmployeeByEmail(ctx, s.db, email)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, pgx.ErrNoRows):
		return false, nil
	default:
		return false, err
	}
}

// searchKey 以世代號區隔快取；任何寫入都會遞增世代，舊結果自然失效
func (s *EmployeeService) searchKey(ctx context.Context, query string) string {
	gen, err := s.cache.Get(ctx, searchGenerationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		s.log.WithError(err).Warn("search cache generation read failed")
	}
	return fmt.Sprintf("employees:search:%d:%s", gen, strings.ToLower(query))
}

func (s *EmployeeService) invalidateSearch(ctx context.Context) {
	if err := s.cache.Incr(ctx, searchGenerationKey).Err(); err != nil {
		s.log.WithError(err).Warn("search cache invalidation failed")
	}
}

func parseSalary(raw string) (float64, error) {
	salary, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || salary < 0 {
		return 0, apperror.New(apperror.CodeValidation, "Salary must be a non-negative number")
	}
	return salary, nil
}

func mapDatabaseError(err error) error {
	if database.IsUniqueViolation(err) {
		return apperror.New(apperror.CodeConflict, "Employee with this email already exists")
	}
	return err
}
