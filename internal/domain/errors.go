package domain

import "errors"

// Ошибки валидации полей сотрудника
var (
	ErrInvalidCPR            = errors.New("cpr must be exactly 10 digits")
	ErrInvalidName           = errors.New("name must be 1-30 letters, spaces or hyphens")
	ErrInvalidDepartment     = errors.New("unknown department")
	ErrInvalidBaseSalary     = errors.New("base salary out of range")
	ErrInvalidEducationLevel = errors.New("education level out of range")
	ErrInvalidDate           = errors.New("date must be a valid dd/mm/yyyy date")
	ErrUnderage              = errors.New("employee is younger than the minimum age")
	ErrFutureEmploymentDate  = errors.New("employment date is in the future")
)

// Ошибки производных значений: исходное поле ни разу не было задано
var (
	ErrBaseSalaryNotSet     = errors.New("base salary is not set")
	ErrEmploymentDateNotSet = errors.New("employment date is not set")
)
