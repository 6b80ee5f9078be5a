package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/placementcell/internal/app/controllers"
	"github.com/campushq/placementcell/internal/middleware"
)

// SetupRouter configures all application routes. Paths under the protected
// groups keep the verb-style names the dashboard already calls.
func SetupRouter(
	router *gin.Engine,
	ctrl *controllers.Controllers,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/signup", ctrl.AuthController.Signup)
		auth.POST("/login", ctrl.AuthController.Login)
		auth.POST("/forgot-password", ctrl.AuthController.ForgotPassword)
		auth.POST("/verify-otp", ctrl.AuthController.VerifyOTP)
		auth.POST("/reset-password", ctrl.AuthController.ResetPassword)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	student := authenticated.Group("/student")
	{
		student.GET("/getAllStudents", ctrl.StudentController.GetAllStudents)
		student.GET("/getStudentById/:id", ctrl.StudentController.GetStudentByID)
		student.GET("/getStudentByRollNumber/:rollNumber", ctrl.StudentController.GetStudentByRollNumber)
		student.POST("/insertStudent", ctrl.StudentController.InsertStudent)
		student.PUT("/updateStudentById/:id", ctrl.StudentController.UpdateStudentByID)
		student.DELETE("/deleteStudentById/:id", ctrl.StudentController.DeleteStudentByID)
		student.DELETE("/deleteStudentByRollNumber/:rollNumber", ctrl.StudentController.DeleteStudentByRollNumber)
	}

	company := authenticated.Group("/company")
	{
		company.GET("/getAllCompanies", ctrl.CompanyController.GetAllCompanies)
		company.GET("/getCompanyById/:id", ctrl.CompanyController.GetCompanyByID)
		company.POST("/insertCompany", ctrl.CompanyController.InsertCompany)
		company.PUT("/updateCompanyById/:id", ctrl.CompanyController.UpdateCompanyByID)
		company.DELETE("/deleteCompanyById/:id", ctrl.CompanyController.DeleteCompanyByID)
	}

	department := authenticated.Group("/department")
	{
		department.GET("/getAllDepartments", ctrl.DepartmentController.GetAllDepartments)
		department.GET("/getDepartmentById/:id", ctrl.DepartmentController.GetDepartmentByID)
		department.POST("/insertDepartment", ctrl.DepartmentController.InsertDepartment)
		department.PUT("/updateDepartmentById/:id", ctrl.DepartmentController.UpdateDepartmentByID)
		department.DELETE("/deleteDepartmentById/:id", ctrl.DepartmentController.DeleteDepartmentByID)
	}

	school := authenticated.Group("/school")
	{
		school.GET("/getAllSchools", ctrl.SchoolController.GetAllSchools)
		school.GET("/getSchoolById/:id", ctrl.SchoolController.GetSchoolByID)
	}

	placement := authenticated.Group("/placement")
	{
		placement.GET("/getAllPlacements", ctrl.PlacementController.GetAllPlacements)
		placement.GET("/getPlacementById/:id", ctrl.PlacementController.GetPlacementByID)
		placement.GET("/getPlacementByCompanyId/:companyId", ctrl.PlacementController.GetPlacementsByCompany)
		placement.GET("/getAllPlacementDetails", ctrl.PlacementController.GetAllPlacementDetails)
		placement.GET("/getAllPlacementsStudentIds", ctrl.PlacementController.GetPlacedStudentIDs)
		placement.GET("/getStudentsPlacedYearOfStudyWise", ctrl.PlacementController.GetYearWisePlacements)
		placement.GET("/getPlacedDepartmentWise", ctrl.PlacementController.GetDepartmentWisePlacements)
		placement.GET("/getCoreNonCorePlacements", ctrl.PlacementController.GetCoreNonCorePlacements)
		placement.POST("/insertPlacement", ctrl.PlacementController.InsertPlacement)
		placement.PUT("/updatePlacementById/:id", ctrl.PlacementController.UpdatePlacementByID)
		placement.DELETE("/deletePlacementById/:id", ctrl.PlacementController.DeletePlacementByID)
	}

	interviewRound := authenticated.Group("/interviewRound")
	{
		interviewRound.GET("/getAll", ctrl.InterviewRoundController.GetAllInterviewRounds)
		interviewRound.GET("/getByRoundId/:id", ctrl.InterviewRoundController.GetInterviewRoundByID)
		interviewRound.GET("/getByCompanyId/:companyId", ctrl.InterviewRoundController.GetInterviewRoundsByCompany)
		interviewRound.POST("/insert", ctrl.InterviewRoundController.InsertInterviewRound)
		interviewRound.PUT("/update/:id", ctrl.InterviewRoundController.UpdateInterviewRoundByID)
		interviewRound.DELETE("/delete/:id", ctrl.InterviewRoundController.DeleteInterviewRoundByID)
	}

	roundParticipation := authenticated.Group("/roundParticipation")
	{
		roundParticipation.GET("/getAll", ctrl.RoundParticipationController.GetAllRoundParticipations)
		roundParticipation.GET("/getStudentsIdByRoundId/:roundId", ctrl.RoundParticipationController.GetRoundStudentIDs)
		roundParticipation.GET("/getStudentsByRoundId/:roundId", ctrl.RoundParticipationController.GetRoundStudentEmails)
		roundParticipation.GET("/getStudentsDetailsByRoundId/:roundId", ctrl.RoundParticipationController.GetRoundParticipants)
		roundParticipation.POST("/insert", ctrl.RoundParticipationController.AddRoundParticipant)
		roundParticipation.PUT("/updateRemarks", ctrl.RoundParticipationController.UpdateRoundParticipantRemarks)
		roundParticipation.DELETE("/delete/:participationId", ctrl.RoundParticipationController.DeleteRoundParticipationByID)
		roundParticipation.DELETE("/deleteByRoundAndStudent", ctrl.RoundParticipationController.RemoveRoundParticipant)
	}

	authenticated.POST("/send-email", ctrl.EmailController.SendEmail)
}
