package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/employee-validation/internal/domain"
	"github.com/employee-validation/internal/dto"
)

// Имена полей, как они записываются во входных данных
const (
	FieldCPR            = "cpr"
	FieldFirstName      = "first_name"
	FieldLastName       = "last_name"
	FieldDepartment     = "department"
	FieldBaseSalary     = "base_salary"
	FieldEducationLevel = "education_level"
	FieldBirthDate      = "birth_date"
	FieldEmploymentDate = "employment_date"
	FieldCountry        = "country"
)

// ErrUnknownField возвращается для имени поля, которого нет у сотрудника
var ErrUnknownField = errors.New("unknown employee field")

// EmployeeService определяет интерфейс применения данных к сотруднику
type EmployeeService interface {
	Apply(in *dto.EmployeeInput) (*domain.Employee, *dto.Report)
	ApplyField(emp *domain.Employee, field, raw string) (dto.FieldResult, error)
	Derive(emp *domain.Employee) dto.DerivedResult
}

type setter func(emp *domain.Employee, raw string) (bool, string)

type fieldSpec struct {
	name  string
	input func(in *dto.EmployeeInput) *string
	set   setter
}

// fields перечислены в порядке применения
var fields = []fieldSpec{
	{FieldCPR, func(in *dto.EmployeeInput) *string { return in.CPR }, setCPR},
	{FieldFirstName, func(in *dto.EmployeeInput) *string { return in.FirstName }, setFirstName},
	{FieldLastName, func(in *dto.EmployeeInput) *string { return in.LastName }, setLastName},
	{FieldDepartment, func(in *dto.EmployeeInput) *string { return in.Department }, setDepartment},
	{FieldBaseSalary, func(in *dto.EmployeeInput) *string { return in.BaseSalary }, setBaseSalary},
	{FieldEducationLevel, func(in *dto.EmployeeInput) *string { return in.EducationLevel }, setEducationLevel},
	{FieldBirthDate, func(in *dto.EmployeeInput) *string { return in.BirthDate }, setBirthDate},
	{FieldEmploymentDate, func(in *dto.EmployeeInput) *string { return in.EmploymentDate }, setEmploymentDate},
	{FieldCountry, func(in *dto.EmployeeInput) *string { return in.Country }, setCountry},
}

// FieldNames возвращает имена полей в порядке применения
func FieldNames() []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.name)
	}
	return names
}

type employeeService struct {
	clock  domain.Clock
	logger *slog.Logger
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(clock domain.Clock, logger *slog.Logger) EmployeeService {
	if clock == nil {
		clock = domain.SystemClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &employeeService{
		clock:  clock,
		logger: logger,
	}
}

func (s *employeeService) Apply(in *dto.EmployeeInput) (*domain.Employee, *dto.Report) {
	emp := domain.New(s.clock)
	report := &dto.Report{}

	if in != nil {
		for _, f := range fields {
			raw := f.input(in)
			if raw == nil {
				continue
			}
			report.Fields = append(report.Fields, s.apply(emp, f, *raw))
		}
	}

	report.Derived = s.Derive(emp)

	s.logger.Debug("employee applied",
		slog.Int("fields", len(report.Fields)),
		slog.Int("accepted", report.Accepted()),
	)

	return emp, report
}

func (s *employeeService) ApplyField(emp *domain.Employee, field, raw string) (dto.FieldResult, error) {
	for _, f := range fields {
		if f.name == field {
			return s.apply(emp, f, raw), nil
		}
	}
	return dto.FieldResult{}, fmt.Errorf("%w: %q", ErrUnknownField, field)
}

func (s *employeeService) Derive(emp *domain.Employee) dto.DerivedResult {
	derived := dto.DerivedResult{ShippingCosts: emp.ShippingCosts()}

	if salary, err := emp.Salary(); err == nil {
		derived.Salary = &salary
	} else {
		s.logger.Debug("salary not computed", slog.Any("error", err))
	}

	if discount, err := emp.Discount(); err == nil {
		derived.Discount = &discount
	} else {
		s.logger.Debug("discount not computed", slog.Any("error", err))
	}

	return derived
}

func (s *employeeService) apply(emp *domain.Employee, f fieldSpec, raw string) dto.FieldResult {
	ok, value := f.set(emp, raw)
	if !ok {
		s.logger.Debug("field rejected", slog.String("field", f.name))
		return dto.FieldResult{Field: f.name}
	}
	s.logger.Debug("field accepted", slog.String("field", f.name))
	return dto.FieldResult{Field: f.name, Accepted: true, Value: value}
}

func setCPR(emp *domain.Employee, raw string) (bool, string) {
	return emp.SetCPR(raw), emp.CPR()
}

func setFirstName(emp *domain.Employee, raw string) (bool, string) {
	return emp.SetFirstName(raw), emp.FirstName()
}

func setLastName(emp *domain.Employee, raw string) (bool, string) {
	return emp.SetLastName(raw), emp.LastName()
}

func setDepartment(emp *domain.Employee, raw string) (bool, string) {
	return emp.SetDepartment(raw), emp.Department()
}

// setBaseSalary: нечисловой ввод отклоняется так же, как выход за границы
func setBaseSalary(emp *domain.Employee, raw string) (bool, string) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return false, ""
	}
	return emp.SetBaseSalary(amount), dto.FormatAmount(emp.BaseSalary())
}

func setEducationLevel(emp *domain.Employee, raw string) (bool, string) {
	level, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return false, ""
	}
	return emp.SetEducationLevel(level), emp.EducationLevel()
}

func setBirthDate(emp *domain.Employee, raw string) (bool, string) {
	return emp.SetBirthDate(raw), emp.BirthDate()
}

func setEmploymentDate(emp *domain.Employee, raw string) (bool, string) {
	return emp.SetEmploymentDate(raw), emp.EmploymentDate()
}

func setCountry(emp *domain.Employee, raw string) (bool, string) {
	return emp.SetCountry(raw), emp.Country()
}
