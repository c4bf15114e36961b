package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaDeclaresConstraints(t *testing.T) {
	assert.Contains(t, schemaSQL, "name        VARCHAR(100) NOT NULL UNIQUE")
	assert.Contains(t, schemaSQL, "ON DELETE RESTRICT")
	assert.Contains(t, schemaSQL, "CHECK (price > 0)")
	assert.Contains(t, schemaSQL, "CHECK (stock >= 0)")
}
