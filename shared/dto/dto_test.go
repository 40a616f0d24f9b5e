package dto_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"impressions/shared/constant"
	"impressions/shared/dto"
	"impressions/shared/model"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "studio",
		ModifiedBy: "studio",
	})

	assert.Equal(t, createdAt.Format(constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, modifiedAt.Format(constant.DateFormat), metadata.ModifiedAt)
	assert.Equal(t, "studio", metadata.CreatedBy)
}

func TestMetadata_Received(t *testing.T) {
	tests := []struct {
		name         string
		metadata     dto.Metadata
		wantReceived string
		wantEdited   string
	}{
		{
			name:         "offset is kept",
			metadata:     dto.Metadata{CreatedAt: "2024-03-01T09:05:00+07:00", ModifiedAt: "2024-03-02T18:30:00+07:00"},
			wantReceived: "1 Mar 2024, 09:05",
			wantEdited:   "2 Mar 2024, 18:30",
		},
		{
			name:         "untouched record has no edit date",
			metadata:     dto.Metadata{CreatedAt: "2024-03-01T09:05:00Z", ModifiedAt: "2024-03-01T09:05:00Z"},
			wantReceived: "1 Mar 2024, 09:05",
		},
		{
			name:         "unparseable value is returned as stored",
			metadata:     dto.Metadata{CreatedAt: "yesterday"},
			wantReceived: "yesterday",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantReceived, tt.metadata.Received())
			assert.Equal(t, tt.wantEdited, tt.metadata.Edited())
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		group     dto.FilterGroup
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "empty group",
			group:     dto.FilterGroup{},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
		{
			name:      "single equality",
			group:     dto.And(dto.Eq("gallery_images", "id", "abc")),
			wantWhere: "(gallery_images.id = :id)",
			wantArgs:  map[string]any{"id": "abc"},
		},
		{
			name:      "two filters joined with and",
			group:     dto.And(dto.Eq("services", "active", true), dto.Filter{Field: "title", Operator: dto.FilterOperatorNotEq, Value: "x"}),
			wantWhere: "(services.active = :active AND title != :title)",
			wantArgs:  map[string]any{"active": true, "title": "x"},
		},
		{
			name: "in operator expands slice",
			group: dto.FilterGroup{Filters: []any{
				dto.Filter{Field: "status", Operator: dto.FilterOperatorIn, Value: []string{"new", "booked"}},
			}},
			wantWhere: "(status IN (:status_0, :status_1))",
			wantArgs:  map[string]any{"status_0": "new", "status_1": "booked"},
		},
		{
			name: "unknown operator is skipped",
			group: dto.FilterGroup{Filters: []any{
				dto.Filter{Field: "title", Operator: "like"},
				dto.Filter{Field: "notes", Operator: dto.FilterIsNull},
			}},
			wantWhere: "(notes IS NULL)",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.group.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)

			if diff := cmp.Diff(tt.wantArgs, args); diff != "" {
				t.Errorf("args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterGroup_FieldValue(t *testing.T) {
	group := dto.FilterGroup{Filters: []any{
		dto.And(dto.Eq("inquiries", "id", "inq-1")),
	}}

	value, ok := group.FieldValue("id")
	assert.True(t, ok)
	assert.Equal(t, "inq-1", value)

	_, ok = group.FieldValue("status")
	assert.False(t, ok)
}

func TestOrderBy(t *testing.T) {
	assert.Equal(t, dto.QueryParams{SortBy: "sort_order", SortDir: dto.SortDirAsc}, dto.OrderBy("sort_order", "sideways"))
	assert.Equal(t, dto.QueryParams{SortBy: "created_at", SortDir: dto.SortDirDesc, Limit: 5}, dto.OrderBy("created_at", dto.SortDirDesc).WithLimit(5))
}
