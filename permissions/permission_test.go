package permissions

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := Get()
	require.NotNil(t, data)
	assert.NotEmpty(t, data.Endpoints)
}

func TestPermissionData_FindPermissions(t *testing.T) {
	data := Get()
	require.NotNil(t, data)

	tests := []struct {
		name      string
		path      string
		method    string
		wantSkip  bool
		wantRoles []string
		wantFound bool
	}{
		{name: "login is public", path: "/api/v1/auth/login", method: http.MethodPost, wantSkip: true, wantFound: true},
		{name: "enquiry is public", path: "/api/v1/inquiries/", method: http.MethodPost, wantSkip: true, wantFound: true},
		{name: "gallery is public", path: "/api/v1/galleries", method: http.MethodGet, wantSkip: true, wantFound: true},
		{name: "service list needs admin", path: "/api/v1/services", method: http.MethodGet, wantRoles: []string{"admin"}, wantFound: true},
		{name: "enquiry list needs admin", path: "/api/v1/inquiries", method: http.MethodGet, wantRoles: []string{"admin"}, wantFound: true},
		{name: "path parameter", path: "/api/v1/inquiries/inq-1/status", method: http.MethodPatch, wantRoles: []string{"admin"}, wantFound: true},
		{name: "wrong method", path: "/api/v1/auth/login", method: http.MethodGet},
		{name: "unknown path", path: "/api/v1/rooms", method: http.MethodGet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.wantSkip, permission.Skip)
			assert.Equal(t, tt.wantFound, permission.Path != "")

			if tt.wantRoles != nil {
				assert.Equal(t, tt.wantRoles, permission.Permissions)
			}
		})
	}
}

func TestMatchPath(t *testing.T) {
	assert.True(t, matchPath("/api/v1/galleries/{id}", "/api/v1/galleries/abc"))
	assert.False(t, matchPath("/api/v1/galleries/{id}", "/api/v1/galleries/"))
	assert.False(t, matchPath("/api/v1/galleries/{id}", "/api/v1/galleries/abc/extra"))
	assert.True(t, matchPath("/api/v1/galleries", "/api/v1/galleries/"))
}
