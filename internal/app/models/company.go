package models

// Company defines the company model based on the 'company' table
type Company struct {
	CompanyID        int64   `json:"company_id" db:"company_id"`
	CompanyName      string  `json:"company_name" db:"company_name"`
	Email            string  `json:"email" db:"email"`
	PhoneNumber      *string `json:"phone_number,omitempty" db:"phone_number"`
	NoOfStudentPlaced *int   `json:"no_of_student_placed,omitempty" db:"no_of_student_placed"`
}
