package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kartikpatidar0006/Staffy/internal/domain/employees"
	"github.com/Kartikpatidar0006/Staffy/internal/infrastructure/persistence/models"
	"github.com/Kartikpatidar0006/Staffy/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormEmployeeRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormEmployeeRepository creates a new GORM-based EmployeeRepository implementation
func NewGormEmployeeRepository(db *gorm.DB, logger logger.Logger) (employees.EmployeeRepository, error) {
	if db == nil {
		return nil, errors.New("database handle is required")
	}
	return &gormEmployeeRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormEmployeeRepository) Create(ctx context.Context, employee *employees.Employee) error {
	if err := employee.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.EmployeeModel{}
	model.FromDomain(employee)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.duplicateCause(ctx, employee)
		}
		return fmt.Errorf("failed to create employee: %w", err)
	}

	r.logger.Info("Created employee with employee id ", employee.EmployeeID)
	return nil
}

// duplicateCause works out which unique column a rejected insert collided with.
func (r *gormEmployeeRepository) duplicateCause(ctx context.Context, employee *employees.Employee) error {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.EmployeeModel{}).
		Where("employee_id = ?", employee.EmployeeID).
		Count(&count).Error
	if err == nil && count > 0 {
		return fmt.Errorf("%w: %s", employees.ErrDuplicateEmployeeID, employee.EmployeeID)
	}
	return fmt.Errorf("%w: %s", employees.ErrDuplicateEmail, employee.Email)
}

func (r *gormEmployeeRepository) List(ctx context.Context, query *employees.Query) ([]*employees.Employee, error) {
	var modelList []*models.EmployeeModel
	dbQuery := r.db.WithContext(ctx).Model(&models.EmployeeModel{})

	if query != nil && query.Department != "" {
		dbQuery = dbQuery.Where("department = ?", query.Department)
	}

	if err := dbQuery.Order("date_time_created asc").Order("employee_id asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}

	domainList := make([]*employees.Employee, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormEmployeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*employees.Employee, error) {
	var model models.EmployeeModel
	if err := r.db.WithContext(ctx).Where("employee_id = ?", employeeID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", employees.ErrEmployeeNotFound, employeeID)
		}
		return nil, fmt.Errorf("failed to fetch employee: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormEmployeeRepository) GetByEmail(ctx context.Context, email string) (*employees.Employee, error) {
	var model models.EmployeeModel
	if err := r.db.WithContext(ctx).Where("email = ?", employees.NormalizeEmail(email)).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", employees.ErrEmployeeNotFound, email)
		}
		return nil, fmt.Errorf("failed to fetch employee: %w", err)
	}
	return model.ToDomain(), nil
}

// DeleteByEmployeeID removes the employee together with all of their
// attendance records in a single transaction.
func (r *gormEmployeeRepository) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", employeeID).Delete(&models.AttendanceModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete attendance records: %w", err)
		}

		result := tx.Where("employee_id = ?", employeeID).Delete(&models.EmployeeModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete employee: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: %s", employees.ErrEmployeeNotFound, employeeID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Deleted employee with employee id ", employeeID)
	return nil
}

func (r *gormEmployeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.EmployeeModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

type departmentRow struct {
	Department string
	Total      int64
}

func (r *gormEmployeeRepository) CountByDepartment(ctx context.Context) ([]employees.DepartmentHeadcount, error) {
	var rows []departmentRow
	err := r.db.WithContext(ctx).Model(&models.EmployeeModel{}).
		Select("department, count(*) AS total").
		Group("department").
		Order("department asc").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count employees by department: %w", err)
	}

	headcounts := make([]employees.DepartmentHeadcount, len(rows))
	for i, row := range rows {
		headcounts[i] = employees.DepartmentHeadcount{Department: row.Department, Employees: row.Total}
	}
	return headcounts, nil
}
