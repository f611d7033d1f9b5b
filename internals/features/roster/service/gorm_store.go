// file: internals/features/roster/service/gorm_store.go
package service

import (
	"errors"

	"gorm.io/gorm"

	orgModel "dutychart_backend/internals/features/org/model"
	"dutychart_backend/internals/features/roster/model"
)

/* =======================================================
   GORM-backed Store
   ======================================================= */

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) ResolveOffice(ref OfficeRef) (uint, bool, error) {
	var office orgModel.OfficeModel
	q := s.DB.Model(&orgModel.OfficeModel{})
	if ref.ByID() {
		q = q.Where("office_id = ?", ref.ID)
	} else {
		q = q.Where("LOWER(office_name) = LOWER(?)", ref.Name)
	}
	if err := q.First(&office).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return office.OfficeID, true, nil
}

func (s *GormStore) Exists(k NaturalKey) (bool, error) {
	var n int64
	err := keyQuery(s.DB.Model(&model.RosterAssignmentModel{}), k).Count(&n).Error
	return n > 0, err
}

// Upsert runs inside its own nested transaction. During a batch the outer
// transaction is already open, so GORM emits a savepoint here: a unique-index
// violation (two uploads racing on the same natural key) rolls back only this
// row and the batch transaction stays usable for the rows that follow.
func (s *GormStore) Upsert(row *RosterRow) (bool, error) {
	var created bool
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.RosterAssignmentModel
		err := keyQuery(tx.Model(&model.RosterAssignmentModel{}), row.Key()).First(&existing).Error
		switch {
		case err == nil:
			// overwrite non-key fields only
			updates := map[string]interface{}{
				"roster_assignment_phone_number": phonePtr(row.PhoneNumber),
				"roster_assignment_status":       row.Status,
			}
			return tx.Model(&existing).Updates(updates).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			rec := rowToModel(row)
			if err := tx.Create(&rec).Error; err != nil {
				return err
			}
			created = true
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

func (s *GormStore) Transaction(fn func(Store) error) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return fn(NewGormStore(tx))
	})
}

func keyQuery(db *gorm.DB, k NaturalKey) *gorm.DB {
	db = db.
		Where("roster_assignment_employee_name = ?", k.EmployeeName).
		Where("roster_assignment_office_id = ?", k.OfficeID).
		Where("roster_assignment_start_time = ?", k.StartTime).
		Where("roster_assignment_end_time = ?", k.EndTime).
		Where("roster_assignment_shift = ?", k.Shift)
	if k.StartDate == "" {
		db = db.Where("roster_assignment_start_date IS NULL")
	} else {
		db = db.Where("roster_assignment_start_date = ?", k.StartDate)
	}
	if k.EndDate == "" {
		db = db.Where("roster_assignment_end_date IS NULL")
	} else {
		db = db.Where("roster_assignment_end_date = ?", k.EndDate)
	}
	return db
}

func rowToModel(row *RosterRow) model.RosterAssignmentModel {
	return model.RosterAssignmentModel{
		RosterAssignmentEmployeeName: row.EmployeeName,
		RosterAssignmentOfficeID:     row.OfficeID,
		RosterAssignmentStartDate:    row.StartDate,
		RosterAssignmentEndDate:      row.EndDate,
		RosterAssignmentStartTime:    row.StartTime.Format("15:04:05"),
		RosterAssignmentEndTime:      row.EndTime.Format("15:04:05"),
		RosterAssignmentShift:        row.Shift,
		RosterAssignmentPhoneNumber:  phonePtr(row.PhoneNumber),
		RosterAssignmentStatus:       row.Status,
	}
}

func phonePtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
