package repository

import "gorm.io/gorm"

// maxPageSize bounds a single page regardless of what the caller asks for
const maxPageSize = 100

// paginate is a gorm scope selecting one page. A non-positive pageSize
// leaves the query unbounded.
func paginate(page, pageSize int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if pageSize <= 0 {
			return db
		}
		if pageSize > maxPageSize {
			pageSize = maxPageSize
		}
		if page < 1 {
			page = 1
		}
		return db.Limit(pageSize).Offset((page - 1) * pageSize)
	}
}
