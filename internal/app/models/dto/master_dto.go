package dto

// CompanyRequest represents a company insert or update payload
type CompanyRequest struct {
	CompanyName       string  `json:"company_name" binding:"required"`
	Email             string  `json:"email" binding:"required,email"`
	PhoneNumber       *string `json:"phone_number"`
	NoOfStudentPlaced *int    `json:"no_of_student_placed"`
}

// DepartmentRequest represents a department insert or update payload
type DepartmentRequest struct {
	Name             string  `json:"name" binding:"required"`
	SchoolID         int64   `json:"school_id" binding:"required"`
	HeadOfDepartment *string `json:"head_of_department"`
	Description      *string `json:"description"`
}

// SchoolRequest represents a school insert or update payload
type SchoolRequest struct {
	SchoolName string `json:"school_name" binding:"required"`
}
