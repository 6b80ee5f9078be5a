package models

// Department represents a department within a school
type Department struct {
	DepID            int64   `json:"dep_id" db:"dep_id"`
	Name             string  `json:"name" db:"name"`
	SchoolID         int64   `json:"school_id" db:"school_id"`
	HeadOfDepartment *string `json:"head_of_department,omitempty" db:"head_of_department"`
	Description      *string `json:"description,omitempty" db:"description"`
}

// School represents a school grouping several departments
type School struct {
	SchoolID   int64  `json:"school_id" db:"school_id"`
	SchoolName string `json:"school_name" db:"school_name"`
}
