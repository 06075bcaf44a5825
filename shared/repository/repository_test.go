package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tourism/infras/otel/mocks"
	"tourism/shared/dto"
	"tourism/shared/model"
)

type testDestination struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	Slug string `db:"slug"`
	model.Metadata
}

type testAccount struct {
	testDestination
	PasswordHash string `db:"password_hash" table:"user_credentials"`
	Role         string `db:"role_name"     table:"roles"            column:"name"`
	Ignored      string
}

func (testAccount) GetJoinQuery() string {
	return "JOIN user_credentials ON user_credentials.user_id = destinations.id"
}

func TestNewRepository(t *testing.T) {
	repo := NewRepository[testAccount]("account", "destinations", "id", nil, mocks.NewOtel())

	assert.Equal(t, "JOIN user_credentials ON user_credentials.user_id = destinations.id", repo.join)
	assert.NotContains(t, repo.InsertColumns, "password_hash")
	assert.NotContains(t, repo.InsertColumns, "role_name")
	assert.Contains(t, repo.InsertColumns, "slug")
	assert.Contains(t, repo.InsertColumns, "created_at")
	assert.Contains(t, repo.insertQuery, "INSERT INTO destinations (id, name, slug")
	assert.Contains(t, repo.insertQuery, "VALUES (:id, :name, :slug")
}

func TestSelectList(t *testing.T) {
	repo := NewRepository[testAccount]("account", "destinations", "id", nil, mocks.NewOtel())

	tests := []struct {
		name string
		keys []string
		want string
	}{
		{name: "plain columns skip aliased namesakes", keys: []string{"id", "name"}, want: "destinations.id, destinations.name"},
		{name: "alias selects the joined column", keys: []string{"id", "role_name"}, want: "destinations.id, roles.name AS role_name"},
		{name: "joined column by name", keys: []string{"password_hash"}, want: "user_credentials.password_hash"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repo.selectList(tt.keys))
		})
	}

	all := repo.selectList(nil)
	assert.Contains(t, all, "user_credentials.password_hash")
	assert.Contains(t, all, "roles.name AS role_name")
}

func TestSortColumn(t *testing.T) {
	repo := NewRepository[testAccount]("account", "destinations", "id", nil, mocks.NewOtel())

	tests := []struct {
		name   string
		sortBy string
		want   string
		wantOK bool
	}{
		{name: "bare column", sortBy: "name", want: "destinations.name", wantOK: true},
		{name: "qualified column", sortBy: "user_credentials.password_hash", want: "user_credentials.password_hash", wantOK: true},
		{name: "alias", sortBy: "role_name", want: "roles.name", wantOK: true},
		{name: "unknown column", sortBy: "name; DROP TABLE destinations", wantOK: false},
		{name: "empty", sortBy: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := repo.sortColumn(tt.sortBy)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildWhereClause(t *testing.T) {
	repo := NewRepository[testDestination]("destination", "destinations", "id", nil, mocks.NewOtel())

	where, args := repo.BuildWhereClause(t.Context(), dto.FilterGroup{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = repo.BuildWhereClause(t.Context(), dto.NewFilterGroup(dto.FilterEq("destinations", "slug", "bali")))
	assert.Contains(t, where, "WHERE")
	assert.Contains(t, where, "destinations.slug")
	assert.Len(t, args, 1)
}
