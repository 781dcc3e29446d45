package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Kartikpatidar0006/Staffy/internal/domain/attendance"
	"github.com/Kartikpatidar0006/Staffy/internal/infrastructure/persistence/models"
	"github.com/Kartikpatidar0006/Staffy/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormAttendanceRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAttendanceRepository creates a new GORM-based AttendanceRepository implementation
func NewGormAttendanceRepository(db *gorm.DB, logger logger.Logger) (attendance.AttendanceRepository, error) {
	if db == nil {
		return nil, errors.New("database handle is required")
	}
	return &gormAttendanceRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Upsert stores the record, replacing the status of an existing record for
// the same employee and date. On update the record's ID and creation time
// are overwritten with the stored values. The insert is conflict-tolerant on
// (employee_id, date), so concurrent marks of the same key never surface a
// unique constraint violation.
func (r *gormAttendanceRepository) Upsert(ctx context.Context, record *attendance.Record) (bool, error) {
	if err := record.Validate(); err != nil {
		return false, fmt.Errorf("validation error: %w", err)
	}

	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := &models.AttendanceModel{}
		model.FromDomain(record)

		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "date"}},
			DoNothing: true,
		}).Create(model)
		if result.Error != nil {
			return fmt.Errorf("failed to create attendance record: %w", result.Error)
		}
		if result.RowsAffected == 1 {
			created = true
			return nil
		}

		now := time.Now().UTC()
		if err := tx.Model(&models.AttendanceModel{}).
			Where("employee_id = ? AND date = ?", record.EmployeeID, record.Date).
			Updates(map[string]interface{}{
				"status":            record.Status,
				"date_time_updated": now,
			}).Error; err != nil {
			return fmt.Errorf("failed to update attendance record: %w", err)
		}

		var existing models.AttendanceModel
		if err := tx.Where("employee_id = ? AND date = ?", record.EmployeeID, record.Date).First(&existing).Error; err != nil {
			return fmt.Errorf("failed to fetch attendance record: %w", err)
		}

		record.ID = existing.ID
		record.DateTimeCreated = existing.DateTimeCreated
		record.DateTimeUpdated = existing.DateTimeUpdated
		return nil
	})
	if err != nil {
		return false, err
	}

	r.logger.Info("Marked attendance ", record.Status, " for employee ", record.EmployeeID, " on ", record.Date)
	return created, nil
}

// List returns records joined with the employee name. Records of a single
// employee are ordered newest date first, otherwise by employee id.
func (r *gormAttendanceRepository) List(ctx context.Context, query *attendance.Query) ([]*attendance.RecordView, error) {
	var rows []*models.AttendanceRow
	dbQuery := r.db.WithContext(ctx).
		Table("attendance_records").
		Select("attendance_records.*, employees.full_name AS employee_name").
		Joins("LEFT JOIN employees ON employees.employee_id = attendance_records.employee_id")

	if query == nil {
		query = &attendance.Query{}
	}
	if query.EmployeeID != "" {
		dbQuery = dbQuery.Where("attendance_records.employee_id = ?", query.EmployeeID)
	}
	if query.Date != "" {
		dbQuery = dbQuery.Where("attendance_records.date = ?", query.Date)
	}

	if query.EmployeeID != "" {
		dbQuery = dbQuery.Order("attendance_records.date desc")
	} else {
		dbQuery = dbQuery.Order("attendance_records.employee_id asc").Order("attendance_records.date desc")
	}

	if err := dbQuery.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch attendance records: %w", err)
	}

	views := make([]*attendance.RecordView, len(rows))
	for i, row := range rows {
		views[i] = row.ToDomain()
	}
	return views, nil
}

type statusRow struct {
	EmployeeID string
	Status     string
	Total      int64
}

func (c *statusRow) addTo(counts *attendance.StatusCounts) {
	switch c.Status {
	case attendance.StatusPresent:
		counts.Present += c.Total
	case attendance.StatusAbsent:
		counts.Absent += c.Total
	}
}

func (r *gormAttendanceRepository) CountByEmployee(ctx context.Context) (map[string]attendance.StatusCounts, error) {
	var rows []statusRow
	err := r.db.WithContext(ctx).Model(&models.AttendanceModel{}).
		Select("employee_id, status, count(*) AS total").
		Group("employee_id, status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count attendance by employee: %w", err)
	}

	result := make(map[string]attendance.StatusCounts)
	for i := range rows {
		counts := result[rows[i].EmployeeID]
		rows[i].addTo(&counts)
		result[rows[i].EmployeeID] = counts
	}
	return result, nil
}

func (r *gormAttendanceRepository) CountByEmployeeID(ctx context.Context, employeeID string) (attendance.StatusCounts, error) {
	return r.countWhere(ctx, "employee_id = ?", employeeID)
}

func (r *gormAttendanceRepository) CountByDate(ctx context.Context, date string) (attendance.StatusCounts, error) {
	return r.countWhere(ctx, "date = ?", date)
}

func (r *gormAttendanceRepository) countWhere(ctx context.Context, condition string, arg interface{}) (attendance.StatusCounts, error) {
	var rows []statusRow
	var counts attendance.StatusCounts

	err := r.db.WithContext(ctx).Model(&models.AttendanceModel{}).
		Select("status, count(*) AS total").
		Where(condition, arg).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return counts, fmt.Errorf("failed to count attendance: %w", err)
	}

	for i := range rows {
		rows[i].addTo(&counts)
	}
	return counts, nil
}
