package dto

// StudentRequest represents a student insert or update payload
type StudentRequest struct {
	Name              string   `json:"name" binding:"required"`
	RollNumber        string   `json:"rollNumber" binding:"required"`
	SchoolID          int64    `json:"school_id" binding:"required"`
	DepID             int64    `json:"dep_id" binding:"required"`
	YearOfStudy       *int     `json:"year_of_study"`
	PersonalEmail     *string  `json:"personal_email" binding:"omitempty,email"`
	CollegeEmail      *string  `json:"college_email" binding:"omitempty,email"`
	PhoneNumber       *string  `json:"phone_number"`
	DateOfBirth       *string  `json:"date_of_birth" binding:"omitempty,dateformat"`
	Gender            *string  `json:"gender"`
	City              *string  `json:"city"`
	State             *string  `json:"state"`
	TenthPercentage   *float64 `json:"tenth_percentage"`
	TwelfthPercentage *float64 `json:"twelfth_percentage"`
	DiplomaPercentage *float64 `json:"diploma_percentage"`
	CPIAfter7thSem    *float64 `json:"cpi_after_7th_sem"`
	CPIAfter8thSem    *float64 `json:"cpi_after_8th_sem"`
	Remark            *string  `json:"remark"`
	Category          *string  `json:"category"`
	FirstSemSPI       *float64 `json:"first_sem_spi"`
	SecondSemSPI      *float64 `json:"second_sem_spi"`
	ThirdSemSPI       *float64 `json:"third_sem_spi"`
	FourthFifthSemSPI *float64 `json:"fourth_fifth_sem_spi"`
	SixthSemSPI       *float64 `json:"sixth_sem_spi"`
	SeventhSemSPI     *float64 `json:"seventh_sem_spi"`
	EighthSemSPI      *float64 `json:"eighth_sem_spi"`
	NoOfBacklog       *int     `json:"no_of_backlog"`
	NoOfActiveBacklog *int     `json:"no_of_active_backlog"`
	Optout            FlexBool `json:"optout"`
}
