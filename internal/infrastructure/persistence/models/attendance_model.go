package models

import (
	"time"

	"github.com/Kartikpatidar0006/Staffy/internal/domain/attendance"
)

// AttendanceModel is the GORM database model for attendance records.
// The composite unique index enforces one record per employee and day.
type AttendanceModel struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)"`
	EmployeeID      string    `gorm:"not null;uniqueIndex:idx_attendance_employee_date,priority:1;type:varchar(50)"`
	Date            string    `gorm:"not null;uniqueIndex:idx_attendance_employee_date,priority:2;index;type:varchar(10)"`
	Status          string    `gorm:"not null;type:varchar(10)"`
	DateTimeCreated time.Time `gorm:"not null"`
	DateTimeUpdated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (AttendanceModel) TableName() string {
	return "attendance_records"
}

// ToDomain converts GORM model to domain entity
func (m *AttendanceModel) ToDomain() *attendance.Record {
	return &attendance.Record{
		ID:              m.ID,
		EmployeeID:      m.EmployeeID,
		Date:            m.Date,
		Status:          m.Status,
		DateTimeCreated: m.DateTimeCreated,
		DateTimeUpdated: m.DateTimeUpdated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AttendanceModel) FromDomain(r *attendance.Record) {
	m.ID = r.ID
	m.EmployeeID = r.EmployeeID
	m.Date = r.Date
	m.Status = r.Status
	m.DateTimeCreated = r.DateTimeCreated
	m.DateTimeUpdated = r.DateTimeUpdated
}

// AttendanceRow is an attendance record joined with its employee's name
type AttendanceRow struct {
	AttendanceModel
	EmployeeName string
}

// ToDomain converts the joined row to a domain view
func (r *AttendanceRow) ToDomain() *attendance.RecordView {
	return &attendance.RecordView{
		Record:       *r.AttendanceModel.ToDomain(),
		EmployeeName: r.EmployeeName,
	}
}

// All lists every model managed by the service, in creation order.
func All() []interface{} {
	return []interface{}{&EmployeeModel{}, &AttendanceModel{}}
}
