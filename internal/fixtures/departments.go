package fixtures

// Departments lists the clinic departments an employee can belong to.
var Departments = []string{
	"Administration",
	"Reception",
	"Emergency",
	"Radiology",
	"Intensive Care",
	"Pharmacy",
}
