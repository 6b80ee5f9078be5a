package models

// Placement records a student accepting an offer from a company.
// A student holds at most one placement record system-wide; the table
// carries a unique constraint on student_id.
type Placement struct {
	PlacementID   int64   `json:"placement_id" db:"placement_id"`
	StudentID     int64   `json:"student_id" db:"student_id"`
	CompanyID     int64   `json:"company_id" db:"company_id"`
	Position      string  `json:"position" db:"position"`
	Location      *string `json:"location,omitempty" db:"location"`
	Salary        float64 `json:"salary" db:"salary"`
	PlacementDate string  `json:"placement_date" db:"placement_date"`
	OfferType     *string `json:"offer_type,omitempty" db:"offer_type"`
	OfferLetter   bool    `json:"offer_letter" db:"offer_letter"`
	CoreNonCore   *string `json:"core_non_core,omitempty" db:"core_non_core"`
}

// PlacementDetail is a placement joined with its student and company rows,
// used by the dashboard listing.
type PlacementDetail struct {
	PlacementID   int64   `json:"placement_id"`
	RollNumber    string  `json:"student_rollNumber"`
	StudentName   string  `json:"student_name"`
	CompanyName   string  `json:"company_name"`
	Position      string  `json:"position"`
	Salary        float64 `json:"salary"`
	PlacementDate string  `json:"placement_date"`
	Location      *string `json:"location,omitempty"`
	OfferType     *string `json:"offer_type,omitempty"`
	OfferLetter   bool    `json:"offer_letter"`
	CoreNonCore   *string `json:"core_non_core,omitempty"`
}

// CompanyPlacement is a placement with student identification attached,
// returned when listing a company's placements.
type CompanyPlacement struct {
	Placement
	RollNumber  string `json:"rollNumber"`
	StudentName string `json:"student_name"`
}

// YearWiseCount aggregates placed students by year of study
type YearWiseCount struct {
	Year           *int `json:"year"`
	PlacedStudents int  `json:"placed_students"`
}

// DepartmentWiseCount aggregates placed students by department
type DepartmentWiseCount struct {
	Department     string `json:"department"`
	PlacedStudents int    `json:"placed_students"`
}

// CoreNonCoreCount aggregates placements by core/non-core classification
type CoreNonCoreCount struct {
	CoreNonCore string `json:"core_non_core"`
	Count       int    `json:"count"`
}
