package service

import (
	"net/http"
	"testing"
	"time"

	"vznx/dao"
	"vznx/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProject_Defaults(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, "POST", "/api/projects", map[string]any{"name": "Launch"})
	require.Equal(t, http.StatusCreated, w.Code)

	var project model.Project
	decodeData(t, w, &project)
	assert.NotEmpty(t, project.ID)
	assert.Equal(t, "Launch", project.Name)
	assert.Equal(t, model.StatusInProgress, project.Status)
	assert.Equal(t, 0, project.Progress)
	assert.False(t, project.CreatedAt.IsZero())
}

func TestCreateProject_Validation(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, "POST", "/api/projects", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, "POST", "/api/projects",
		map[string]any{"name": "Launch", "status": "Archived"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, "POST", "/api/projects",
		map[string]any{"name": "Launch", "progress": 120})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListProjects_NewestFirst(t *testing.T) {
	r := setupRouter(t)
	old := model.Project{Name: "old"}
	old.CreatedAt = time.Now().Add(-time.Hour)
	seedProject(t, &old)
	recent := model.Project{Name: "recent"}
	recent.CreatedAt = time.Now()
	seedProject(t, &recent)

	w := doJSON(t, r, "GET", "/api/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var projects []model.Project
	decodeData(t, w, &projects)
	require.Len(t, projects, 2)
	assert.Equal(t, "recent", projects[0].Name)
	assert.Equal(t, "old", projects[1].Name)
}

func TestGetProject_NotFound(t *testing.T) {
	r := setupRouter(t)
	w := doJSON(t, r, "GET", "/api/projects/no-such-project", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProject_ManualOverride(t *testing.T) {
	r := setupRouter(t)
	project := model.Project{Name: "Launch"}
	seedProject(t, &project)
	seedTask(t, &model.Task{Name: "open", ProjectID: project.ID})

	// The manual endpoint accepts any status/progress combination; nothing
	// re-validates consistency until the next task mutation recomputes.
	w := doJSON(t, r, "PUT", "/api/projects/"+project.ID,
		map[string]any{"status": "Completed", "progress": 80})
	require.Equal(t, http.StatusOK, w.Code)

	got := fetchProject(t, project.ID)
	assert.Equal(t, model.StatusCompleted, got.Status)
	assert.Equal(t, 80, got.Progress)
}

func TestUpdateProject_Validation(t *testing.T) {
	r := setupRouter(t)
	project := model.Project{Name: "Launch"}
	seedProject(t, &project)

	w := doJSON(t, r, "PUT", "/api/projects/"+project.ID,
		map[string]any{"status": "Paused"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, "PUT", "/api/projects/"+project.ID,
		map[string]any{"name": " "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, "PUT", "/api/projects/no-such-project",
		map[string]any{"name": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProject_Cascades(t *testing.T) {
	r := setupRouter(t)
	project := model.Project{Name: "Launch"}
	seedProject(t, &project)
	other := model.Project{Name: "Other"}
	seedProject(t, &other)
	for _, name := range []string{"a", "b", "c"} {
		seedTask(t, &model.Task{Name: name, ProjectID: project.ID})
	}
	keep := model.Task{Name: "keep", ProjectID: other.ID}
	seedTask(t, &keep)

	w := doJSON(t, r, "DELETE", "/api/projects/"+project.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, dao.DB.Model(&model.Task{}).
		Where("project_id = ?", project.ID).Count(&count).Error)
	assert.Zero(t, count, "owned tasks are removed with the project")

	w = doJSON(t, r, "GET", "/api/projects/"+project.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// the other project's task is untouched
	assert.Equal(t, "keep", fetchTask(t, keep.ID).Name)
}

func TestDeleteProject_NotFound(t *testing.T) {
	r := setupRouter(t)
	w := doJSON(t, r, "DELETE", "/api/projects/no-such-project", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListProjectTasks_ResolvesAssignees(t *testing.T) {
	r := setupRouter(t)
	project := model.Project{Name: "Launch"}
	seedProject(t, &project)
	member := model.TeamMember{Name: "ada"}
	seedMember(t, &member)

	assigned := model.Task{Name: "assigned", ProjectID: project.ID, AssignedTo: strptr(member.ID)}
	assigned.CreatedAt = time.Now()
	seedTask(t, &assigned)
	unassigned := model.Task{Name: "unassigned", ProjectID: project.ID}
	unassigned.CreatedAt = time.Now().Add(-time.Minute)
	seedTask(t, &unassigned)

	w := doJSON(t, r, "GET", "/api/projects/"+project.ID+"/tasks", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var views []TaskView
	decodeData(t, w, &views)
	require.Len(t, views, 2)

	// newest first
	assert.Equal(t, "assigned", views[0].Name)
	require.NotNil(t, views[0].AssignedTo)
	assert.Equal(t, member.ID, views[0].AssignedTo.ID)
	assert.Equal(t, "ada", views[0].AssignedTo.Name)

	assert.Equal(t, "unassigned", views[1].Name)
	assert.Nil(t, views[1].AssignedTo)
}

func TestScenario_LaunchProject(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, "POST", "/api/projects", map[string]any{"name": "Launch"})
	require.Equal(t, http.StatusCreated, w.Code)
	var project model.Project
	decodeData(t, w, &project)

	var tasks []model.Task
	for _, name := range []string{"one", "two", "three"} {
		w = doJSON(t, r, "POST", "/api/projects/"+project.ID+"/tasks",
			map[string]any{"name": name})
		require.Equal(t, http.StatusCreated, w.Code)
		var task model.Task
		decodeData(t, w, &task)
		tasks = append(tasks, task)
	}

	// complete one of three -> 33, still in progress
	w = doJSON(t, r, "PUT", "/api/tasks/"+tasks[0].ID, map[string]any{"isComplete": true})
	require.Equal(t, http.StatusOK, w.Code)
	got := fetchProject(t, project.ID)
	assert.Equal(t, 33, got.Progress)
	assert.Equal(t, model.StatusInProgress, got.Status)

	// complete the rest -> 100, status still untouched
	for _, task := range tasks[1:] {
		w = doJSON(t, r, "PUT", "/api/tasks/"+task.ID, map[string]any{"isComplete": true})
		require.Equal(t, http.StatusOK, w.Code)
	}
	got = fetchProject(t, project.ID)
	assert.Equal(t, 100, got.Progress)
	assert.Equal(t, model.StatusInProgress, got.Status)
}
