package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tourism/shared/constant"
	"tourism/shared/dto"
	"tourism/shared/model"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	modifiedAt := createdAt.Add(48 * time.Hour)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "user-1",
		ModifiedBy: "user-2",
	})

	assert.Equal(t, createdAt.Format(constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, modifiedAt.Format(constant.DateFormat), metadata.ModifiedAt)
	assert.Equal(t, "user-1", metadata.CreatedBy)
	assert.Equal(t, "user-2", metadata.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		defaults bool
		want     dto.QueryParams
	}{
		{
			name:  "all parameters",
			query: "page=2&limit=20&sort_by=name&sort_dir=asc",
			want:  dto.QueryParams{Page: 2, Limit: 20, SortBy: "name", SortDir: dto.SortDirAsc},
		},
		{
			name:     "defaults applied",
			defaults: true,
			want:     dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name: "defaults not applied",
			want: dto.QueryParams{},
		},
		{
			name:     "invalid numbers fall back to defaults",
			query:    "page=abc&limit=-10",
			defaults: true,
			want:     dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "zero page falls back to default",
			query:    "page=0&sort_by=email",
			defaults: true,
			want:     dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit, SortBy: "email"},
		},
		{
			name:  "unknown sort direction ignored",
			query: "sort_dir=sideways",
			want:  dto.QueryParams{},
		},
		{
			name:     "skip is kept",
			query:    "skip=40&limit=20",
			defaults: true,
			want:     dto.QueryParams{Page: constant.DefaultValuePage, Skip: 40, Limit: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/v1/destinations?"+tt.query, nil)

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaults)

			assert.Equal(t, tt.want, params)
		})
	}
}

func TestQueryParams_Offset(t *testing.T) {
	tests := []struct {
		name   string
		params dto.QueryParams
		want   int
	}{
		{name: "skip wins over page", params: dto.QueryParams{Page: 3, Skip: 5, Limit: 10}, want: 5},
		{name: "page and limit", params: dto.QueryParams{Page: 3, Limit: 10}, want: 20},
		{name: "first page", params: dto.QueryParams{Page: 1, Limit: 10}, want: 0},
		{name: "nothing set", params: dto.QueryParams{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.params.Offset())
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equality",
			filter:    dto.FilterEq("bookings", "status", "CONFIRMED"),
			wantWhere: "bookings.status = :status",
			wantArgs:  map[string]any{"status": "CONFIRMED"},
		},
		{
			name:      "like escapes wildcards",
			filter:    dto.Filter{Field: "name", Value: "50%_off", Operator: dto.FilterOperatorLike, Table: "destinations"},
			wantWhere: "LOWER(destinations.name) LIKE LOWER(:name)",
			wantArgs:  map[string]any{"name": `%50\%\_off%`},
		},
		{
			name:      "in with slice",
			filter:    dto.Filter{Field: "booking_id", Value: []string{"b1", "b2"}, Operator: dto.FilterOperatorIn, Table: "booking_items"},
			wantWhere: "booking_items.booking_id IN (:booking_id_0, :booking_id_1)",
			wantArgs:  map[string]any{"booking_id_0": "b1", "booking_id_1": "b2"},
		},
		{
			name:      "in with empty slice matches nothing",
			filter:    dto.Filter{Field: "id", Value: []string{}, Operator: dto.FilterOperatorIn},
			wantWhere: "FALSE",
			wantArgs:  map[string]any{},
		},
		{
			name:      "in with scalar is bound",
			filter:    dto.Filter{Field: "id", Value: "1; DROP TABLE users", Operator: dto.FilterOperatorIn},
			wantWhere: "id IN (:id)",
			wantArgs:  map[string]any{"id": "1; DROP TABLE users"},
		},
		{
			name:      "range with custom arg name",
			filter:    dto.Filter{ArgName: "end_date", Field: "date", Value: "2025-01-31", Operator: dto.FilterOperatorLessEq},
			wantWhere: "date <= :end_date",
			wantArgs:  map[string]any{"end_date": "2025-01-31"},
		},
		{
			name:      "unknown operator",
			filter:    dto.Filter{Field: "id", Value: 1, Operator: "between"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.NewFilterGroup(
		dto.FilterEq("accommodation_availability", "accommodation_id", "acc-1"),
		dto.Filter{Field: "date", Operator: dto.FilterOperatorGreaterEq, Value: "2025-01-01", Table: "accommodation_availability", ArgName: "start_date"},
		dto.Filter{Field: "ignored", Operator: "between"},
	)

	where, args := group.GetWhereClause()

	assert.Equal(t, "(accommodation_availability.accommodation_id = :accommodation_id AND accommodation_availability.date >= :start_date)", where)
	assert.Equal(t, map[string]any{"accommodation_id": "acc-1", "start_date": "2025-01-01"}, args)

	empty := dto.FilterGroup{}
	where, args = empty.GetWhereClause()
	assert.Empty(t, where)
	assert.Empty(t, args)
}
