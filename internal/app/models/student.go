package models

// Student defines the student model based on the 'student' table.
// Field names follow the existing dashboard API, so rollNumber keeps its
// mixed-case form while the rest stay snake_case.
type Student struct {
	StudentID          int64    `json:"student_id" db:"student_id"`
	Name               string   `json:"name" db:"name"`
	RollNumber         string   `json:"rollNumber" db:"roll_number"`
	SchoolID           int64    `json:"school_id" db:"school_id"`
	DepID              int64    `json:"dep_id" db:"dep_id"`
	YearOfStudy        *int     `json:"year_of_study,omitempty" db:"year_of_study"`
	PersonalEmail      *string  `json:"personal_email,omitempty" db:"personal_email"`
	CollegeEmail       *string  `json:"college_email,omitempty" db:"college_email"`
	PhoneNumber        *string  `json:"phone_number,omitempty" db:"phone_number"`
	DateOfBirth        *string  `json:"date_of_birth,omitempty" db:"date_of_birth"`
	Gender             *string  `json:"gender,omitempty" db:"gender"`
	City               *string  `json:"city,omitempty" db:"city"`
	State              *string  `json:"state,omitempty" db:"state"`
	TenthPercentage    *float64 `json:"tenth_percentage,omitempty" db:"tenth_percentage"`
	TwelfthPercentage  *float64 `json:"twelfth_percentage,omitempty" db:"twelfth_percentage"`
	DiplomaPercentage  *float64 `json:"diploma_percentage,omitempty" db:"diploma_percentage"`
	CPIAfter7thSem     *float64 `json:"cpi_after_7th_sem,omitempty" db:"cpi_after_7th_sem"`
	CPIAfter8thSem     *float64 `json:"cpi_after_8th_sem,omitempty" db:"cpi_after_8th_sem"`
	Remark             *string  `json:"remark,omitempty" db:"remark"`
	Category           *string  `json:"category,omitempty" db:"category"`
	FirstSemSPI        *float64 `json:"first_sem_spi,omitempty" db:"first_sem_spi"`
	SecondSemSPI       *float64 `json:"second_sem_spi,omitempty" db:"second_sem_spi"`
	ThirdSemSPI        *float64 `json:"third_sem_spi,omitempty" db:"third_sem_spi"`
	FourthFifthSemSPI  *float64 `json:"fourth_fifth_sem_spi,omitempty" db:"fourth_fifth_sem_spi"`
	SixthSemSPI        *float64 `json:"sixth_sem_spi,omitempty" db:"sixth_sem_spi"`
	SeventhSemSPI      *float64 `json:"seventh_sem_spi,omitempty" db:"seventh_sem_spi"`
	EighthSemSPI       *float64 `json:"eighth_sem_spi,omitempty" db:"eighth_sem_spi"`
	NoOfBacklog        *int     `json:"no_of_backlog,omitempty" db:"no_of_backlog"`
	NoOfActiveBacklog  *int     `json:"no_of_active_backlog,omitempty" db:"no_of_active_backlog"`
	Optout             bool     `json:"optout" db:"optout"`
}
