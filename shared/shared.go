package shared

import (
	"reflect"
	"slices"
	"strings"

	"impressions/shared/constant"
	"impressions/shared/dto"
	"impressions/shared/timezone"
)

// TransformFields converts the non-zero fields of a struct into a map of updated columns.
// It is used for partial patches.
func TransformFields(data any, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

// RecordFields converts every db-tagged field of a record, zero values included,
// into a map of columns for a whole-record update. Embedded structs and the
// skipped columns are left out.
func RecordFields(data any, username string, skip ...string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	fields := make(map[string]any)

	for index := range val.NumField() {
		structField := typ.Field(index)
		if structField.Anonymous {
			continue
		}

		fieldName := structField.Tag.Get("db")
		if fieldName == "" || slices.Contains(skip, fieldName) {
			continue
		}

		fields[fieldName] = val.Field(index).Interface()
	}

	fields[constant.FieldModifiedAt] = timezone.Now()
	fields[constant.FieldModifiedBy] = username

	return fields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.And(dto.Eq(table, fieldID, id))
}

// BuildCacheKey joins a prefix and key parts with colons.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), ":")
}

// UserFromContext returns the authenticated username, or the system actor.
func UserFromContext(ctx interface{ Value(key any) any }) string {
	if username, ok := ctx.Value(constant.ContextKeyUsername).(string); ok && username != "" {
		return username
	}

	return constant.ContextSystem
}
