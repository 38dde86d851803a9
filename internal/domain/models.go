package domain

import "time"

// optional хранит значение вместе с признаком того, что оно было задано
type optional[T any] struct {
	value T
	set   bool
}

func (o *optional[T]) put(v T) {
	o.value = v
	o.set = true
}

func (o optional[T]) get() (T, bool) {
	return o.value, o.set
}

func (o optional[T]) or(fallback T) T {
	if !o.set {
		return fallback
	}
	return o.value
}

// Employee представляет сотрудника.
//
// Все поля необязательны до первого успешного вызова сеттера.
// Сеттер либо сохраняет новое значение целиком, либо оставляет
// предыдущее без изменений и возвращает false.
// Нулевое значение готово к использованию и работает с системными часами.
type Employee struct {
	clock Clock

	cpr            optional[string]
	firstName      optional[string]
	lastName       optional[string]
	department     optional[string]
	baseSalary     optional[float64]
	educationLevel EducationLevel
	birthDate      optional[dateField]
	employmentDate optional[dateField]
	country        optional[string]
}

// New создаёт пустого сотрудника. nil означает системные часы.
func New(clock Clock) *Employee {
	return &Employee{clock: clock}
}

func (e *Employee) now() time.Time {
	if e.clock == nil {
		return time.Now()
	}
	return e.clock.Now()
}

// SetCPR задаёт идентификатор из ровно 10 цифр
func (e *Employee) SetCPR(cpr string) bool {
	if validateCPR(cpr) != nil {
		return false
	}
	e.cpr.put(cpr)
	return true
}

// SetFirstName задаёт имя
func (e *Employee) SetFirstName(name string) bool {
	if validateName(name) != nil {
		return false
	}
	e.firstName.put(name)
	return true
}

// SetLastName задаёт фамилию
func (e *Employee) SetLastName(name string) bool {
	if validateName(name) != nil {
		return false
	}
	e.lastName.put(name)
	return true
}

// SetDepartment задаёт подразделение из фиксированного списка
func (e *Employee) SetDepartment(department string) bool {
	if validateDepartment(department) != nil {
		return false
	}
	e.department.put(department)
	return true
}

// SetBaseSalary задаёт базовый оклад, усекая его до копеек
func (e *Employee) SetBaseSalary(amount float64) bool {
	if validateBaseSalary(amount) != nil {
		return false
	}
	e.baseSalary.put(truncateCents(amount))
	return true
}

// SetEducationLevel задаёт уровень образования (0-3)
func (e *Employee) SetEducationLevel(level int) bool {
	if validateEducationLevel(level) != nil {
		return false
	}
	e.educationLevel = EducationLevel(level)
	return true
}

// SetBirthDate задаёт дату рождения; сотруднику должно быть не меньше 18 лет
func (e *Employee) SetBirthDate(date string) bool {
	field, err := e.parseDateField(date)
	if err != nil {
		return false
	}
	if validateBirthDate(field.on, e.now()) != nil {
		return false
	}
	e.birthDate.put(field)
	return true
}

// SetEmploymentDate задаёт дату найма; дата не может быть в будущем
func (e *Employee) SetEmploymentDate(date string) bool {
	field, err := e.parseDateField(date)
	if err != nil {
		return false
	}
	if validateEmploymentDate(field.on, e.now()) != nil {
		return false
	}
	e.employmentDate.put(field)
	return true
}

// SetCountry задаёт страну без проверки
func (e *Employee) SetCountry(country string) bool {
	e.country.put(country)
	return true
}

func (e *Employee) CPR() string        { return e.cpr.or("") }
func (e *Employee) FirstName() string  { return e.firstName.or("") }
func (e *Employee) LastName() string   { return e.lastName.or("") }
func (e *Employee) Department() string { return e.department.or("") }
func (e *Employee) BaseSalary() float64 {
	return e.baseSalary.or(0)
}
func (e *Employee) Country() string { return e.country.or("") }

// EducationLevel возвращает название уровня образования ("None" по умолчанию)
func (e *Employee) EducationLevel() string {
	return e.educationLevel.String()
}

// Education возвращает уровень образования как порядковый номер
func (e *Employee) Education() EducationLevel {
	return e.educationLevel
}

// BirthDate возвращает дату рождения в том виде, в котором она была задана
func (e *Employee) BirthDate() string {
	return e.birthDate.or(dateField{}).text
}

// EmploymentDate возвращает дату найма в том виде, в котором она была задана
func (e *Employee) EmploymentDate() string {
	return e.employmentDate.or(dateField{}).text
}

// Salary возвращает оклад с надбавкой за образование.
// Если базовый оклад не задан, возвращает ErrBaseSalaryNotSet.
func (e *Employee) Salary() (float64, error) {
	base, ok := e.baseSalary.get()
	if !ok {
		return 0, ErrBaseSalaryNotSet
	}
	return base + float64(e.educationLevel)*educationBonus, nil
}

// Discount возвращает скидку за стаж: 0.5 за каждый полный год.
// Если дата найма не задана, возвращает ErrEmploymentDateNotSet.
func (e *Employee) Discount() (float64, error) {
	employed, ok := e.employmentDate.get()
	if !ok {
		return 0, ErrEmploymentDateNotSet
	}
	years := wholeYears(employed.on, e.now())
	if years < 0 {
		years = 0
	}
	return float64(years) * discountPerYear, nil
}

// ShippingCosts возвращает стоимость доставки по стране сотрудника
func (e *Employee) ShippingCosts() int {
	country, ok := e.country.get()
	if !ok {
		return standardShipping
	}
	return ShippingCostFor(country)
}
