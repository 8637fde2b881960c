package sqldb

import (
	"fmt"

	"gorm.io/gorm"
)

// managedProperties selects the ids of properties run by managerID.
func managedProperties(db *gorm.DB, managerID string) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true}).
		Model(&propertyModel{}).
		Select("id").
		Where("manager_id = ?", managerID)
}

// managedUnits selects the ids of units inside properties run by managerID.
func managedUnits(db *gorm.DB, managerID string) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true}).
		Model(&unitModel{}).
		Select("units.id").
		Joins("JOIN properties ON properties.id = units.property_id").
		Where("properties.manager_id = ?", managerID)
}

// managedLeases selects the ids of leases on units inside properties run by managerID.
func managedLeases(db *gorm.DB, managerID string) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true}).
		Model(&leaseModel{}).
		Select("leases.id").
		Joins("JOIN units ON units.id = leases.unit_id").
		Joins("JOIN properties ON properties.id = units.property_id").
		Where("properties.manager_id = ?", managerID)
}

type groupCount struct {
	OwnerID string
	Total   int64
}

// countBy counts rows of model grouped by column for the given owner ids.
// db must already carry the caller's bounded context.
func countBy(db *gorm.DB, model interface{}, column string, ids []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	var rows []groupCount
	err := db.
		Model(model).
		Select(column+" AS owner_id, COUNT(*) AS total").
		Where(column+" IN ?", ids).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count by %s: %w", column, err)
	}
	for _, r := range rows {
		counts[r.OwnerID] = r.Total
	}
	return counts, nil
}
