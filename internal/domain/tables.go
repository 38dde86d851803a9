package domain

// DateLayout - формат дат рождения и найма (dd/mm/yyyy)
const DateLayout = "02/01/2006"

const (
	minBaseSalary = 20000
	maxBaseSalary = 100000

	maxNameLength = 30
	minimumAge    = 18

	educationBonus   = 1220
	discountPerYear  = 0.5
	freeShipping     = 0
	halfShipping     = 50
	standardShipping = 100
)

// Подразделения в порядке, в котором их перечисляет отдел кадров
const (
	DepartmentHR              = "HR"
	DepartmentFinance         = "Finance"
	DepartmentIT              = "IT"
	DepartmentSales           = "Sales"
	DepartmentGeneralServices = "General Services"
)

// Departments возвращает список допустимых подразделений
func Departments() []string {
	return []string{
		DepartmentHR,
		DepartmentFinance,
		DepartmentIT,
		DepartmentSales,
		DepartmentGeneralServices,
	}
}

// EducationLevel - уровень образования (0-3)
type EducationLevel int

const (
	EducationNone EducationLevel = iota
	EducationPrimary
	EducationSecondary
	EducationTertiary
)

var educationLabels = [...]string{
	EducationNone:      "None",
	EducationPrimary:   "Primary",
	EducationSecondary: "Secondary",
	EducationTertiary:  "Tertiary",
}

// String возвращает название уровня образования
func (l EducationLevel) String() string {
	if l < EducationNone || l > EducationTertiary {
		return ""
	}
	return educationLabels[l]
}

var shippingTiers = map[string]int{
	"Denmark": freeShipping,
	"Norway":  freeShipping,
	"Sweden":  freeShipping,
	"Iceland": halfShipping,
	"Finland": halfShipping,
}

// ShippingCostFor возвращает стоимость доставки для страны.
// Сравнение точное, с учётом регистра.
func ShippingCostFor(country string) int {
	if cost, ok := shippingTiers[country]; ok {
		return cost
	}
	return standardShipping
}
