package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "title").
		From("courses").
		Where(squirrel.Eq{"id": 7}).
		Where(squirrel.Eq{"group_id": 3}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, title FROM courses WHERE id = $1 AND group_id = $2", query)
	assert.Equal(t, []interface{}{7, 3}, args)
}

func TestUpdate_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Update("courses").
		Set("box_state", "waitlist").
		Where(squirrel.Eq{"id": 1}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "UPDATE courses SET box_state = $1 WHERE id = $2", query)
	assert.Equal(t, []interface{}{"waitlist", 1}, args)
}
