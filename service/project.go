package service

import (
	"errors"
	"strings"

	"vznx/dao"
	"vznx/model"
	"vznx/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateProjectReq struct {
	Name     string               `json:"name" binding:"required"`
	Status   *model.ProjectStatus `json:"status"`
	Progress *int                 `json:"progress"`
}

type UpdateProjectReq struct {
	Name     *string              `json:"name"`
	Status   *model.ProjectStatus `json:"status"`
	Progress *int                 `json:"progress"`
}

// ListProjects handles GET /api/projects, newest first.
func ListProjects(c *gin.Context) {
	var projects []model.Project
	if err := dao.DB.WithContext(c).Order("created_at DESC").Find(&projects).Error; err != nil {
		response.Error(c, err.Error(), response.StoreFailure)
		return
	}
	response.Success(c, projects)
}

// GetProject handles GET /api/projects/:id.
func GetProject(c *gin.Context) {
	var project model.Project
	err := dao.DB.WithContext(c).First(&project, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundError(c, "Project not found")
			return
		}
		response.Error(c, err.Error(), response.StoreFailure)
		return
	}
	response.Success(c, project)
}

// CreateProject handles POST /api/projects. Status and progress may be
// supplied up front; they default to "In Progress" and 0.
func CreateProject(c *gin.Context) {
	var req CreateProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		response.BadRequestError(c, "project name must not be empty")
		return
	}

	project := model.Project{Name: name, Status: model.StatusInProgress}
	if req.Status != nil {
		if !req.Status.Valid() {
			response.BadRequestError(c, "status must be 'In Progress' or 'Completed'")
			return
		}
		project.Status = *req.Status
	}
	if req.Progress != nil {
		if *req.Progress < 0 || *req.Progress > 100 {
			response.BadRequestError(c, "progress must be in [0,100]")
			return
		}
		project.Progress = *req.Progress
	}

	if err := dao.DB.WithContext(c).Create(&project).Error; err != nil {
		response.Error(c, err.Error(), response.StoreFailure)
		return
	}
	response.Created(c, project)
}

// UpdateProject handles PUT /api/projects/:id. Any combination of status
// and progress is accepted, including ones the recalculator would never
// produce; nothing re-validates consistency until the next task mutation.
func UpdateProject(c *gin.Context) {
	var req UpdateProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}

	var project model.Project
	err := dao.DB.WithContext(c).First(&project, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundError(c, "Project not found")
			return
		}
		response.Error(c, err.Error(), response.StoreFailure)
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			response.BadRequestError(c, "project name must not be empty")
			return
		}
		updates["name"] = name
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			response.BadRequestError(c, "status must be 'In Progress' or 'Completed'")
			return
		}
		updates["status"] = *req.Status
	}
	if req.Progress != nil {
		if *req.Progress < 0 || *req.Progress > 100 {
			response.BadRequestError(c, "progress must be in [0,100]")
			return
		}
		updates["progress"] = *req.Progress
	}

	if len(updates) > 0 {
		if err := dao.DB.WithContext(c).Model(&project).Updates(updates).Error; err != nil {
			response.Error(c, err.Error(), response.StoreFailure)
			return
		}
		// map-based Updates does not write back into the struct
		if err := dao.DB.WithContext(c).First(&project, "id = ?", project.ID).Error; err != nil {
			response.Error(c, err.Error(), response.StoreFailure)
			return
		}
	}
	response.Success(c, project)
}

// DeleteProject handles DELETE /api/projects/:id: every owned task is
// removed first, then the project itself. The two writes are sequential,
// not transactional; a crash in between leaves orphaned tasks.
func DeleteProject(c *gin.Context) {
	var project model.Project
	err := dao.DB.WithContext(c).First(&project, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundError(c, "Project not found")
			return
		}
		response.Error(c, err.Error(), response.StoreFailure)
		return
	}

	if err := dao.DB.WithContext(c).Where("project_id = ?", project.ID).Delete(&model.Task{}).Error; err != nil {
		response.Error(c, err.Error(), response.StoreFailure)
		return
	}
	if err := dao.DB.WithContext(c).Delete(&project).Error; err != nil {
		response.Error(c, err.Error(), response.StoreFailure)
		return
	}
	cascadeDeletesTotal.WithLabelValues("project").Inc()
	response.Success(c, "Project deleted")
}

// ListProjectTasks handles GET /api/projects/:id/tasks, newest first, with
// each task's assignee resolved to a {_id, name} reference.
func ListProjectTasks(c *gin.Context) {
	var tasks []model.Task
	err := dao.DB.WithContext(c).Where("project_id = ?", c.Param("id")).
		Order("created_at DESC").Find(&tasks).Error
	if err != nil {
		response.Error(c, err.Error(), response.StoreFailure)
		return
	}

	memberIDs := make([]string, 0, len(tasks))
	for i := range tasks {
		if tasks[i].AssignedTo != nil {
			memberIDs = append(memberIDs, *tasks[i].AssignedTo)
		}
	}
	names := map[string]string{}
	if len(memberIDs) > 0 {
		var members []model.TeamMember
		if err := dao.DB.WithContext(c).Where("id IN ?", memberIDs).Find(&members).Error; err != nil {
			response.Error(c, err.Error(), response.StoreFailure)
			return
		}
		for i := range members {
			names[members[i].ID] = members[i].Name
		}
	}

	views := make([]TaskView, 0, len(tasks))
	for i := range tasks {
		view := TaskView{Task: tasks[i]}
		if tasks[i].AssignedTo != nil {
			if name, ok := names[*tasks[i].AssignedTo]; ok {
				view.AssignedTo = &AssigneeRef{ID: *tasks[i].AssignedTo, Name: name}
			}
		}
		views = append(views, view)
	}
	response.Success(c, views)
}

// RegisterProject wires the project routes, including the nested task
// routes the original client used.
func RegisterProject(projectGroup *gin.RouterGroup) {
	projectGroup.GET("", ListProjects)
	projectGroup.GET("/:id", GetProject)
	projectGroup.POST("", CreateProject)
	projectGroup.PUT("/:id", UpdateProject)
	projectGroup.DELETE("/:id", DeleteProject)

	projectGroup.GET("/:id/tasks", ListProjectTasks)
	projectGroup.POST("/:id/tasks", CreateTask)
	projectGroup.PUT("/:id/tasks/:taskId", UpdateProjectTask)
	projectGroup.DELETE("/:id/tasks/:taskId", DeleteProjectTask)
}
