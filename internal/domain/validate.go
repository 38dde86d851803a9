package domain

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Правила валидации полей в нотации validator
const (
	cprRule        = "len=10,number"
	nameRule       = "min=1,max=30,personname"
	departmentRule = "oneof=HR Finance IT Sales 'General Services'"
	salaryRule     = "gte=20000,lte=100000"
	educationRule  = "gte=0,lte=3"
	dateRule       = "dmydate"
)

var (
	personNamePattern = regexp.MustCompile(`^[a-zA-ZæøåñçáéíóúàèìòùäëïöüâêîôûÆØÅÑÇÁÉÍÓÚÀÈÌÒÙÄËÏÖÜÂÊÎÔÛ \-]+$`)
	datePattern       = regexp.MustCompile(`^[0-9]{2}/[0-9]{2}/[0-9]{4}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Регистрация не может завершиться ошибкой для непустого тега
	_ = v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		return personNamePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("dmydate", func(fl validator.FieldLevel) bool {
		_, err := parseDate(fl.Field().String(), time.UTC)
		return err == nil
	})
	return v
}

func validateCPR(cpr string) error {
	if err := validate.Var(cpr, cprRule); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCPR, err)
	}
	return nil
}

func validateName(name string) error {
	if err := validate.Var(name, nameRule); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidName, err)
	}
	return nil
}

func validateDepartment(department string) error {
	if err := validate.Var(department, departmentRule); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDepartment, department)
	}
	return nil
}

func validateBaseSalary(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Errorf("%w: not a finite number", ErrInvalidBaseSalary)
	}
	if err := validate.Var(amount, salaryRule); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBaseSalary, err)
	}
	return nil
}

func validateEducationLevel(level int) error {
	if err := validate.Var(level, educationRule); err != nil {
		return fmt.Errorf("%w: %d", ErrInvalidEducationLevel, level)
	}
	return nil
}

// truncateCents отбрасывает всё после второго знака после запятой.
// Работает по кратчайшему десятичному представлению числа, поэтому
// 20000.01 не превращается в 20000.00 из-за двоичного округления.
func truncateCents(amount float64) float64 {
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	dot := strings.IndexByte(s, '.')
	if dot < 0 || len(s)-dot-1 <= 2 {
		return amount
	}
	truncated, err := strconv.ParseFloat(s[:dot+3], 64)
	if err != nil {
		return math.Floor(amount*100) / 100
	}
	return truncated
}
