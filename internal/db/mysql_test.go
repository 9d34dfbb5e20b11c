package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMySQL_RejectsDSNWithoutParseTime(t *testing.T) {
	db, err := NewMySQL("user:password@tcp(localhost:3306)/lexfeed?charset=utf8mb4")
	assert.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "parseTime")
}
