package dto

import "strconv"

// EmployeeInput - данные сотрудника в текстовом виде (из YAML или командной строки).
// nil означает, что поле не передано.
type EmployeeInput struct {
	CPR            *string `yaml:"cpr" json:"cpr,omitempty"`
	FirstName      *string `yaml:"first_name" json:"first_name,omitempty"`
	LastName       *string `yaml:"last_name" json:"last_name,omitempty"`
	Department     *string `yaml:"department" json:"department,omitempty"`
	BaseSalary     *string `yaml:"base_salary" json:"base_salary,omitempty"`
	EducationLevel *string `yaml:"education_level" json:"education_level,omitempty"`
	BirthDate      *string `yaml:"birth_date" json:"birth_date,omitempty"`
	EmploymentDate *string `yaml:"employment_date" json:"employment_date,omitempty"`
	Country        *string `yaml:"country" json:"country,omitempty"`
}

// FieldResult - результат применения одного поля
type FieldResult struct {
	Field    string `json:"field"`
	Accepted bool   `json:"accepted"`
	Value    string `json:"value,omitempty"`
}

// DerivedResult - производные значения; nil означает, что значение не вычислено
type DerivedResult struct {
	Salary        *float64 `json:"salary"`
	Discount      *float64 `json:"discount"`
	ShippingCosts int      `json:"shipping_costs"`
}

// Report - итог применения EmployeeInput
type Report struct {
	Fields  []FieldResult `json:"fields"`
	Derived DerivedResult `json:"derived"`
}

// Accepted возвращает количество принятых полей
func (r *Report) Accepted() int {
	n := 0
	for _, f := range r.Fields {
		if f.Accepted {
			n++
		}
	}
	return n
}

// FormatAmount форматирует сумму без лишних нулей (30000, 7.5, 30000.56)
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
