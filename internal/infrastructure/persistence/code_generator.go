package persistence

import (
	"context"
	"fmt"
	"strconv"

	"gorm.io/gorm"
)

// GormCodeGenerator produces sequential entity codes ("ORD00001", "IPC00042")
// by scanning the highest stored code for the prefix. The table and column a
// prefix resolves to are registered up front.
type GormCodeGenerator struct {
	db     *gorm.DB
	tables map[string]string // prefix -> table name holding the code column
}

// NewGormCodeGenerator creates a code generator over the given prefix/table bindings
func NewGormCodeGenerator(db *gorm.DB, tables map[string]string) *GormCodeGenerator {
	return &GormCodeGenerator{db: db, tables: tables}
}

// Next returns the next free code for the prefix: the numeric suffix of the
// lexicographically greatest stored code plus one, zero-padded to five
// digits. The read is not serialized against concurrent writers; the unique
// index on the code column rejects the loser of a race.
func (g *GormCodeGenerator) Next(ctx context.Context, prefix string) (string, error) {
	table, ok := g.tables[prefix]
	if !ok {
		return "", fmt.Errorf("no table registered for code prefix %q", prefix)
	}

	var last string
	err := g.db.WithContext(ctx).
		Table(table).
		Select("code").
		Where("code LIKE ?", prefix+"%").
		Order("code DESC").
		Limit(1).
		Scan(&last).Error
	if err != nil {
		return "", err
	}

	seq := 0
	if last != "" {
		n, err := strconv.Atoi(last[len(prefix):])
		if err != nil {
			return "", fmt.Errorf("malformed code %q in table %s: %w", last, table, err)
		}
		seq = n
	}
	return fmt.Sprintf("%s%05d", prefix, seq+1), nil
}
