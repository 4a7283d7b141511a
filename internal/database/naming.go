package database

import (
	"fmt"

	"gorm.io/gorm/schema"
)

// NamingStrategy keeps gorm's default table and column names but names
// foreign keys fk_<table>_<column>_<referenced_table>
type NamingStrategy struct {
	schema.NamingStrategy
}

// RelationshipFKName is called for both sides of a relationship; the name only
// depends on the referencing column, so a has-many and its belongs-to agree.
func (ns NamingStrategy) RelationshipFKName(rel schema.Relationship) string {
	for _, ref := range rel.References {
		if ref.ForeignKey == nil || ref.PrimaryKey == nil {
			continue
		}
		return ForeignKeyName(ref.ForeignKey.Schema.Table, ref.ForeignKey.DBName, ref.PrimaryKey.Schema.Table)
	}
	return ns.NamingStrategy.RelationshipFKName(rel)
}

// ForeignKeyName formats a constraint name following the project convention
func ForeignKeyName(table, column, referencedTable string) string {
	return fmt.Sprintf("fk_%s_%s_%s", table, column, referencedTable)
}
