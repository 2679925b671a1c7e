package attendance

type PunchKind string

const (
	KindEntry   PunchKind = "entry"
	KindExit    PunchKind = "exit"
	KindAbsence PunchKind = "absence"
)

// StatusPresent is the punch status for a regular clock action; absence
// punches carry the absence type as their status instead.
const StatusPresent = "present"

type AbsenceType string

const (
	AbsenceSick  AbsenceType = "sick"
	AbsenceLeave AbsenceType = "leave"
	AbsenceOther AbsenceType = "other"
)

func ValidAbsenceType(t AbsenceType) bool {
	return t == AbsenceSick || t == AbsenceLeave || t == AbsenceOther
}

// Punch is one clock action for an employee on a date. Rows are append-only;
// employee name and department are denormalized at punch time, so a later
// employee edit or delete does not rewrite history.
type Punch struct {
	ID         int
	EmployeeID int
	LastName   string
	FirstName  string
	Department string
	Kind       PunchKind
	Time       *string // "HH:MM", nil for absence punches
	Date       string  // "YYYY-MM-DD"
	Status     string
}

// LatenessEvent records an entry punch that exceeded the configured
// threshold. Immutable once created.
type LatenessEvent struct {
	ID              int
	EmployeeID      int
	LastName        string
	FirstName       string
	Department      string
	ArrivalTime     string // "HH:MM"
	ScheduledTime   string // "HH:MM"
	LatenessMinutes int
	LatenessDisplay string
	Date            string
}

type Absence struct {
	ID            int
	EmployeeID    int
	LastName      string
	FirstName     string
	Department    string
	Date          string
	Type          AbsenceType
	Justification string
}

// HoursPolicy selects the worked-hours computation. The application default
// is net-of-breaks; gross span is kept as the explicit alternate.
type HoursPolicy string

const (
	// HoursNetOfBreaks subtracts every exit/re-entry interval before the
	// final exit from the first-entry..last-exit span.
	HoursNetOfBreaks HoursPolicy = "net"
	// HoursGrossSpan is last exit minus first entry, breaks included.
	HoursGrossSpan HoursPolicy = "gross"
)

func ValidHoursPolicy(p HoursPolicy) bool {
	return p == HoursNetOfBreaks || p == HoursGrossSpan
}
