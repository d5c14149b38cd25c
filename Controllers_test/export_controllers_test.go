package Controllers_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuFileExport(t *testing.T) {
	r := setupRouter(t)
	menuID := create(t, r, api+"/menus", map[string]string{"title": "Lunch", "description": "Served 12-16"})
	create(t, r, api+"/menus/"+menuID+"/submenus", map[string]string{"title": "Soups", "description": "Hot"})

	w := doRequest(t, r, http.MethodGet, api+"/create_menu_file", nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	body := decode(t, w)
	jobID, ok := body["task_id"].(string)
	require.True(t, ok)
	assert.Equal(t, "PENDING", body["status"])

	require.Eventually(t, func() bool {
		w = doRequest(t, r, http.MethodGet, api+"/get_menu_file/"+jobID, nil)
		return w.Code == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	assert.Contains(t, w.Header().Get("Content-Disposition"), jobID+".xlsx")
	assert.True(t, strings.HasPrefix(w.Body.String(), "PK"), "xlsx is a zip archive")
}

func TestMenuFileUnknownJob(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, api+"/get_menu_file/6f1c1f0e-8a84-4b43-9d2c-0b1d4f0f2a11", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, http.MethodGet, api+"/get_menu_file/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
