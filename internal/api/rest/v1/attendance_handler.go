package v1

import (
	"net/http"

	"github.com/Kartikpatidar0006/Staffy/internal/domain/attendance"

	"github.com/gin-gonic/gin"
)

// AttendanceHandler defines the interface for handling attendance operations
type AttendanceHandler interface {
	Mark(ctx *gin.Context)
	ListByEmployee(ctx *gin.Context)
	ListByDate(ctx *gin.Context)
}

type attendanceHandler struct {
	attendanceService attendance.AttendanceService
}

// NewAttendanceHandler creates a new AttendanceHandler
func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandler{
		attendanceService: attendanceService,
	}
}

// Mark handles the POST request to mark attendance. An existing record for
// the same employee and date is updated and answered with 200 instead of 201.
// @Summary Mark attendance
// @Tags Attendance
// @Accept json
// @Produce json
// @Param requestBody body MarkAttendanceRequest true "Attendance Data"
// @Success 201 {object} AttendanceResponse
// @Success 200 {object} AttendanceResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ValidationErrorResponse
// @Router /attendance [post]
func (handler *attendanceHandler) Mark(ctx *gin.Context) {
	var request MarkAttendanceRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		_ = ctx.Error(bindingError(err))
		return
	}

	if err := request.Validate(); err != nil {
		_ = ctx.Error(err)
		return
	}

	view, created, err := handler.attendanceService.Mark(ctx.Request.Context(), request.EmployeeID, request.Date, request.Status)
	if err != nil {
		_ = ctx.Error(translateEmployeeError(err, request.EmployeeID, ""))
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	ctx.JSON(status, newAttendanceResponse(view))
}

// ListByEmployee handles the GET request for an employee's attendance history
// @Summary List attendance of an employee
// @Tags Attendance
// @Produce json
// @Param employee_id path string true "Employee ID"
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {array} AttendanceResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ValidationErrorResponse
// @Router /attendance/employee/{employee_id} [get]
func (handler *attendanceHandler) ListByEmployee(ctx *gin.Context) {
	employeeID := ctx.Param("employee_id")

	date := ctx.Query("date")
	if date != "" {
		if err := validateDate(LocQuery, "date", date); err != nil {
			_ = ctx.Error(err)
			return
		}
	}

	views, err := handler.attendanceService.ListByEmployee(ctx.Request.Context(), employeeID, date)
	if err != nil {
		_ = ctx.Error(translateEmployeeError(err, employeeID, ""))
		return
	}

	ctx.JSON(http.StatusOK, newAttendanceListResponse(views))
}

// ListByDate handles the GET request for all attendance on one day
// @Summary List attendance for a date
// @Tags Attendance
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {array} AttendanceResponse
// @Failure 422 {object} ValidationErrorResponse
// @Router /attendance/date/{date} [get]
func (handler *attendanceHandler) ListByDate(ctx *gin.Context) {
	date := ctx.Param("date")
	if err := validateDate(LocPath, "date", date); err != nil {
		_ = ctx.Error(err)
		return
	}

	views, err := handler.attendanceService.ListByDate(ctx.Request.Context(), date)
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, newAttendanceListResponse(views))
}
