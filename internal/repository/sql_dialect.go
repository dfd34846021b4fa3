package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// dbDialectName returns the dialect name, sqlite when unknown.
func dbDialectName(db *gorm.DB) string {
	if db == nil || db.Dialector == nil {
		return "sqlite"
	}
	name := strings.ToLower(strings.TrimSpace(db.Dialector.Name()))
	if name == "" {
		return "sqlite"
	}
	return name
}

// containsCondition builds a case-insensitive substring match on column.
func containsCondition(db *gorm.DB, column string) string {
	return containsConditionByDialect(dbDialectName(db), column)
}

func containsConditionByDialect(dialect, column string) string {
	switch strings.ToLower(strings.TrimSpace(dialect)) {
	case "postgres", "postgresql":
		return fmt.Sprintf("%s ILIKE ? ESCAPE '\\'", column)
	default:
		// sqlite LIKE is already case-insensitive for ASCII
		return fmt.Sprintf("%s LIKE ? ESCAPE '\\'", column)
	}
}

// containsPattern escapes LIKE wildcards in term.
func containsPattern(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(strings.TrimSpace(term)) + "%"
}
