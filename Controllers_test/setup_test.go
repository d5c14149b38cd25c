package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kiselev-pavel-dev/menu-cafe/cache"
	"github.com/kiselev-pavel-dev/menu-cafe/export"
	"github.com/kiselev-pavel-dev/menu-cafe/repository"
	"github.com/kiselev-pavel-dev/menu-cafe/router"
	"github.com/kiselev-pavel-dev/menu-cafe/services"
	"github.com/kiselev-pavel-dev/menu-cafe/testsupport"
	"github.com/kiselev-pavel-dev/menu-cafe/utils"
	"github.com/stretchr/testify/require"
)

const api = "/api/v1"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger("error")
	if err := utils.RegisterValidators(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db := testsupport.NewTestDB(t)
	store := cache.NewMemoryStore(1000, 4, 10)

	menus := services.NewMenuService(repository.NewMenuRepository(db), store)
	submenus := services.NewSubMenuService(repository.NewSubMenuRepository(db), menus, store)
	dishes := services.NewDishService(repository.NewDishRepository(db), submenus, store)
	exporter := services.NewExportService(repository.NewCatalogueRepository(db), export.NewWorkbook(),
		services.ExportConfig{Dir: t.TempDir(), Workers: 1, QueueSize: 4})
	exporter.Start()
	t.Cleanup(exporter.Stop)

	return router.SetupRouter(router.Dependencies{
		Menus:      menus,
		SubMenus:   submenus,
		Dishes:     dishes,
		Export:     exporter,
		APIPrefix:  api,
		CORSOrigin: "*",
	})
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

// create posts body to path, expects 201 and returns the new id.
func create(t *testing.T, r *gin.Engine, path string, body interface{}) string {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, path, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id, ok := decode(t, w)["id"].(string)
	require.True(t, ok, "id must be a string")
	return id
}
