package service

import (
	"errors"
	"strings"

	"vznx/dao"
	"vznx/model"
	"vznx/response"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CreateMemberReq struct {
	Name   string  `json:"name" binding:"required"`
	Email  *string `json:"email"`
	Avatar *string `json:"avatar"`
}

// ListTeam handles GET /api/team. Task counts and capacity are computed
// fresh on every call from live task rows; nothing here is cached or
// stored, so the listing is O(members x tasks) by design.
func ListTeam(c *gin.Context) {
	var members []model.TeamMember
	if err := dao.DB.WithContext(c).Find(&members).Error; err != nil {
		response.Error(c, err.Error(), response.StoreFailure)
		return
	}

	views := make([]model.MemberView, 0, len(members))
	for i := range members {
		var taskCount int64
		err := dao.DB.WithContext(c).Model(&model.Task{}).
			Where("assigned_to = ?", members[i].ID).Count(&taskCount).Error
		if err != nil {
			response.Error(c, err.Error(), response.StoreFailure)
			return
		}
		views = append(views, model.MemberView{
			ID:                 members[i].ID,
			Name:               members[i].Name,
			TaskCount:          taskCount,
			CapacityLevel:      model.CapacityLevelFor(taskCount),
			CapacityPercentage: model.CapacityPercentage(taskCount),
		})
	}
	response.Success(c, views)
}

// CreateTeamMember handles POST /api/team.
func CreateTeamMember(c *gin.Context) {
	var req CreateMemberReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		response.BadRequestError(c, "member name must not be empty")
		return
	}

	member := model.TeamMember{
		Name: name,
		Attributes: datatypes.NewJSONType(model.MemberAttribute{
			Email:  req.Email,
			Avatar: req.Avatar,
		}),
	}
	if err := dao.DB.WithContext(c).Create(&member).Error; err != nil {
		response.Error(c, err.Error(), response.StoreFailure)
		return
	}
	response.Created(c, member)
}

// DeleteTeamMember handles DELETE /api/team/:id. Every task pointing at the
// member is unassigned first, then the member row is removed. Tasks are
// never deleted here; the member reference is a weak relationship. The two
// writes are sequential, not transactional.
func DeleteTeamMember(c *gin.Context) {
	var member model.TeamMember
	err := dao.DB.WithContext(c).First(&member, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundError(c, "Team member not found")
			return
		}
		response.Error(c, err.Error(), response.StoreFailure)
		return
	}

	err = dao.DB.WithContext(c).Model(&model.Task{}).
		Where("assigned_to = ?", member.ID).Update("assigned_to", nil).Error
	if err != nil {
		response.Error(c, err.Error(), response.StoreFailure)
		return
	}
	if err := dao.DB.WithContext(c).Delete(&member).Error; err != nil {
		response.Error(c, err.Error(), response.StoreFailure)
		return
	}
	cascadeDeletesTotal.WithLabelValues("team_member").Inc()
	response.Success(c, "Team member deleted")
}

// RegisterTeam wires the team routes.
func RegisterTeam(teamGroup *gin.RouterGroup) {
	teamGroup.GET("", ListTeam)
	teamGroup.POST("", CreateTeamMember)
	teamGroup.DELETE("/:id", DeleteTeamMember)
}
