package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vznx/dao"
	"vznx/model"
	"vznx/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTestDB points dao.DB at a fresh in-memory database named after the
// test, so tests never see each other's rows.
func setupTestDB(t *testing.T) {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(dao.Entities()...))
	dao.DB = db
}

// setupRouter wires the entity routes without the auth middleware; the
// middleware has its own tests.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	setupTestDB(t)
	r := gin.New()
	api := r.Group("/api")
	RegisterProject(api.Group("/projects"))
	RegisterTask(api.Group("/tasks"))
	RegisterTeam(api.Group("/team"))
	RegisterAuth(api.Group("/auth"))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Code response.ErrorCode `json:"code"`
	Data json.RawMessage    `json:"data"`
	Msg  string             `json:"msg"`
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	if out != nil {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
}

func seedProject(t *testing.T, project *model.Project) {
	t.Helper()
	require.NoError(t, dao.DB.Create(project).Error)
}

func seedTask(t *testing.T, task *model.Task) {
	t.Helper()
	require.NoError(t, dao.DB.Create(task).Error)
}

func seedMember(t *testing.T, member *model.TeamMember) {
	t.Helper()
	require.NoError(t, dao.DB.Create(member).Error)
}

func fetchProject(t *testing.T, id string) model.Project {
	t.Helper()
	var project model.Project
	require.NoError(t, dao.DB.First(&project, "id = ?", id).Error)
	return project
}

func fetchTask(t *testing.T, id string) model.Task {
	t.Helper()
	var task model.Task
	require.NoError(t, dao.DB.First(&task, "id = ?", id).Error)
	return task
}

func strptr(s string) *string { return &s }
