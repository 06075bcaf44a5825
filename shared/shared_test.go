package shared_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tourism/shared"
	cacheMocks "tourism/shared/cache/mocks"
	"tourism/shared/constant"
	"tourism/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		input string
		want  *bool
	}{
		{input: "", want: nil},
		{input: "true", want: boolPtr(true)},
		{input: "T", want: boolPtr(true)},
		{input: "1", want: boolPtr(true)},
		{input: "FALSE", want: boolPtr(false)},
		{input: "0", want: boolPtr(false)},
		{input: "featured", want: nil},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "no rows", total: 0, limit: 10, want: 1},
		{name: "no limit", total: 40, limit: 0, want: 1},
		{name: "negative limit", total: 40, limit: -1, want: 1},
		{name: "exact pages", total: 40, limit: 10, want: 4},
		{name: "partial last page", total: 41, limit: 10, want: 5},
		{name: "single page", total: 3, limit: 10, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type patch struct {
		Name      *string `db:"name"`
		Units     *int    `db:"available_units"`
		IsBlocked *bool   `db:"is_blocked"`
		Status    string  `db:"status"`
		Ignored   *string `db:"-"`
		NoDBTag   *string
		IDs       []string
	}

	tests := []struct {
		name string
		data patch
		want map[string]any
	}{
		{
			name: "explicit zero values are kept",
			data: patch{Units: intPtr(0), IsBlocked: boolPtr(false)},
			want: map[string]any{"available_units": 0, "is_blocked": false},
		},
		{
			name: "nil pointers and untagged fields are skipped",
			data: patch{Name: stringPtr("Cottage"), Ignored: stringPtr("x"), NoDBTag: stringPtr("x"), IDs: []string{"a"}},
			want: map[string]any{"name": "Cottage"},
		},
		{
			name: "plain fields only when non zero",
			data: patch{Status: "CONFIRMED"},
			want: map[string]any{"status": "CONFIRMED"},
		},
		{
			name: "empty patch",
			data: patch{},
			want: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.data, "user-7")

			assert.Equal(t, "user-7", result[constant.FieldModifiedBy])
			assert.IsType(t, time.Time{}, result[constant.FieldModifiedAt])

			delete(result, constant.FieldModifiedBy)
			delete(result, constant.FieldModifiedAt)
			assert.Equal(t, tt.want, result)
		})
	}
}

func TestHasChanges(t *testing.T) {
	stampOnly := shared.TransformFields(struct {
		Name *string `db:"name"`
	}{}, "user-7")
	assert.False(t, shared.HasChanges(stampOnly))

	withName := shared.TransformFields(struct {
		Name *string `db:"name"`
	}{Name: stringPtr("Munnar Hills")}, "user-7")
	assert.True(t, shared.HasChanges(withName))
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "destination:get:goa-beaches", shared.BuildCacheKey("destination:get", "goa-beaches"))
	assert.Equal(t, "limiter:10.0.0.1:curl", shared.BuildCacheKey("limiter", "10.0.0.1", "curl"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	featured := dto.NewFilterGroup(dto.FilterEq("packages", "is_featured", true))
	notFeatured := dto.NewFilterGroup(dto.FilterEq("packages", "is_featured", false))

	first := shared.BuildCacheKeyWithQuery("package:gets", params, featured)

	assert.Equal(t, first, shared.BuildCacheKeyWithQuery("package:gets", params, featured))
	assert.NotEqual(t, first, shared.BuildCacheKeyWithQuery("package:gets", params, notFeatured))
	assert.NotEqual(t, first, shared.BuildCacheKeyWithQuery("package:gets", dto.QueryParams{Page: 2, Limit: 10}, featured))
	assert.Regexp(t, `^package:gets:[0-9a-f]{40}$`, first)
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Clear(gomock.Any(), "booking:gets:*").Return(nil)
	mockCache.EXPECT().Clear(gomock.Any(), "booking:count:*").Return(errors.New("redis down"))

	shared.InvalidateCaches(context.Background(), mockCache, "booking:gets")
	shared.InvalidateCaches(context.Background(), mockCache, "booking:count")
}

func TestUserFromContext(t *testing.T) {
	assert.Equal(t, constant.ContextGuest, shared.UserFromContext(context.Background()))

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")
	assert.Equal(t, "user-1", shared.UserFromContext(ctx))
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("550e8400-e29b-41d4-a716-446655440000", "id", "bookings")

	assert.Equal(t, dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "id",
				Value:    "550e8400-e29b-41d4-a716-446655440000",
				Operator: dto.FilterOperatorEq,
				Table:    "bookings",
			},
		},
	}, result)
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}
