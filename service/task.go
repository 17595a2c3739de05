package service

import (
	"encoding/json"
	"errors"
	"strings"

	"vznx/dao"
	"vznx/model"
	"vznx/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NullableString distinguishes "field absent" from "field set to null" in a
// partial-update body. A plain *string cannot tell the two apart.
type NullableString struct {
	Set   bool
	Value *string
}

func (n *NullableString) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(b, &n.Value)
}

type CreateTaskReq struct {
	Name       string  `json:"name" binding:"required"`
	AssignedTo *string `json:"assignedTo"`
}

type UpdateTaskReq struct {
	Name       *string        `json:"name"`
	IsComplete *bool          `json:"isComplete"`
	AssignedTo NullableString `json:"assignedTo"`
}

// AssigneeRef is the resolved assignee in task listings.
type AssigneeRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// TaskView is a task with its assignee reference resolved to a name.
type TaskView struct {
	model.Task
	AssignedTo *AssigneeRef `json:"assignedTo"`
}

// CreateTask handles POST /api/projects/:id/tasks. The owning project must
// exist; a dangling id is a validation failure, not a 404, because the
// project reference arrives in the request rather than naming the resource
// being operated on.
func CreateTask(c *gin.Context) {
	projectID := c.Param("id")

	var req CreateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		response.BadRequestError(c, "task name must not be empty")
		return
	}

	var project model.Project
	if err := dao.DB.WithContext(c).First(&project, "id = ?", projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.BadRequestError(c, "project does not exist")
			return
		}
		response.Error(c, err.Error(), response.StoreFailure)
		return
	}

	task := model.Task{
		Name:       name,
		ProjectID:  projectID,
		AssignedTo: req.AssignedTo,
	}
	if err := dao.DB.WithContext(c).Create(&task).Error; err != nil {
		response.Error(c, err.Error(), response.StoreFailure)
		return
	}

	recalcAfterMutation(c, projectID)
	response.Created(c, task)
}

// UpdateTask handles PUT /api/tasks/:id.
func UpdateTask(c *gin.Context) {
	updateTaskByID(c, c.Param("id"))
}

// UpdateProjectTask handles PUT /api/projects/:id/tasks/:taskId, the nested
// alias kept for older clients. Same semantics as UpdateTask.
func UpdateProjectTask(c *gin.Context) {
	updateTaskByID(c, c.Param("taskId"))
}

// updateTaskByID applies a partial update. Fields absent from the body stay
// untouched; presence is decided by the JSON key, not truthiness. Marking a
// task complete clears its assignment unless the same request assigns it
// explicitly, so a finished task never holds a member's capacity.
func updateTaskByID(c *gin.Context, taskID string) {
	// Existence first, like deleteTaskByID: an update addressed to a missing
	// task is a 404 regardless of what the body looks like.
	var task model.Task
	if err := dao.DB.WithContext(c).First(&task, "id = ?", taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundError(c, "Task not found")
			return
		}
		response.Error(c, err.Error(), response.StoreFailure)
		return
	}

	var req UpdateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			response.BadRequestError(c, "task name must not be empty")
			return
		}
		updates["name"] = name
	}
	if req.IsComplete != nil {
		updates["is_complete"] = *req.IsComplete
	}
	if req.AssignedTo.Set {
		updates["assigned_to"] = req.AssignedTo.Value
	}
	if req.IsComplete != nil && *req.IsComplete && !task.IsComplete && !req.AssignedTo.Set {
		updates["assigned_to"] = nil
	}

	if len(updates) > 0 {
		if err := dao.DB.WithContext(c).Model(&task).Updates(updates).Error; err != nil {
			response.Error(c, err.Error(), response.StoreFailure)
			return
		}
	}

	// Re-read so the response carries store-maintained fields, then
	// recompute for the owning project (the project id is immutable).
	if err := dao.DB.WithContext(c).First(&task, "id = ?", taskID).Error; err != nil {
		response.Error(c, err.Error(), response.StoreFailure)
		return
	}
	recalcAfterMutation(c, task.ProjectID)
	response.Success(c, task)
}

// DeleteTask handles DELETE /api/tasks/:id.
func DeleteTask(c *gin.Context) {
	deleteTaskByID(c, c.Param("id"))
}

// DeleteProjectTask handles DELETE /api/projects/:id/tasks/:taskId.
func DeleteProjectTask(c *gin.Context) {
	deleteTaskByID(c, c.Param("taskId"))
}

func deleteTaskByID(c *gin.Context, taskID string) {
	var task model.Task
	if err := dao.DB.WithContext(c).First(&task, "id = ?", taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundError(c, "Task not found")
			return
		}
		response.Error(c, err.Error(), response.StoreFailure)
		return
	}

	// Capture the owner before the row disappears.
	projectID := task.ProjectID
	if err := dao.DB.WithContext(c).Delete(&task).Error; err != nil {
		response.Error(c, err.Error(), response.StoreFailure)
		return
	}

	recalcAfterMutation(c, projectID)
	response.Success(c, "Task deleted")
}

// RegisterTask wires the flat task routes.
func RegisterTask(taskGroup *gin.RouterGroup) {
	taskGroup.PUT("/:id", UpdateTask)
	taskGroup.DELETE("/:id", DeleteTask)
}
