package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kiselev-pavel-dev/menu-cafe/cache"
	"github.com/kiselev-pavel-dev/menu-cafe/config"
	"github.com/kiselev-pavel-dev/menu-cafe/router"
	"github.com/kiselev-pavel-dev/menu-cafe/testsupport"
	"github.com/kiselev-pavel-dev/menu-cafe/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger("error")
	if err := utils.RegisterValidators(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// TestEndToEndIntegration walks the catalogue through the wired application:
// 1. create menu, submenu and dish
// 2. read the menu back with its counts
// 3. delete the submenu and check the counts and the dish are gone
func TestEndToEndIntegration(t *testing.T) {
	cfg := &config.Config{
		APIPrefix:       "/api/v1",
		CORSOrigin:      "*",
		ExportDir:       t.TempDir(),
		ExportWorkers:   1,
		ExportQueueSize: 2,
		RateLimit:       1000,
		RateBurst:       1000,
	}
	deps := buildServices(testsupport.NewTestDB(t), cache.NewMemoryStore(1000, 4, 10), cfg)
	deps.Export.Start()
	t.Cleanup(deps.Export.Stop)
	r := router.SetupRouter(deps)

	menu := call(t, r, http.MethodPost, "/api/v1/menus", `{"title": "My menu 1", "description": "My menu description 1"}`, http.StatusCreated)
	menuID := menu["id"].(string)

	submenu := call(t, r, http.MethodPost, "/api/v1/menus/"+menuID+"/submenus", `{"title": "My submenu 1", "description": "My submenu description 1"}`, http.StatusCreated)
	submenuID := submenu["id"].(string)

	dishes := "/api/v1/menus/" + menuID + "/submenus/" + submenuID + "/dishes"
	dish := call(t, r, http.MethodPost, dishes, `{"title": "My dish 1", "description": "My dish description 1", "price": "12.50"}`, http.StatusCreated)
	dishID := dish["id"].(string)

	got := call(t, r, http.MethodGet, "/api/v1/menus/"+menuID, "", http.StatusOK)
	assert.Equal(t, menuID, got["id"])
	assert.EqualValues(t, 1, got["submenus_count"])
	assert.EqualValues(t, 1, got["dishes_count"])

	gotSub := call(t, r, http.MethodGet, "/api/v1/menus/"+menuID+"/submenus/"+submenuID, "", http.StatusOK)
	assert.EqualValues(t, 1, gotSub["dishes_count"])

	call(t, r, http.MethodDelete, "/api/v1/menus/"+menuID+"/submenus/"+submenuID, "", http.StatusOK)

	got = call(t, r, http.MethodGet, "/api/v1/menus/"+menuID, "", http.StatusOK)
	assert.EqualValues(t, 0, got["submenus_count"])
	assert.EqualValues(t, 0, got["dishes_count"])

	call(t, r, http.MethodGet, dishes+"/"+dishID, "", http.StatusNotFound)

	call(t, r, http.MethodDelete, "/api/v1/menus/"+menuID, "", http.StatusOK)
	call(t, r, http.MethodGet, "/api/v1/menus/"+menuID, "", http.StatusNotFound)
}

func call(t *testing.T, r *gin.Engine, method, path, body string, want int) map[string]interface{} {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, want, w.Code, w.Body.String())

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
