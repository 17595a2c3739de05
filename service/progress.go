package service

import (
	"context"
	"math"

	"vznx/dao"
	"vznx/logutils"
	"vznx/model"
)

// RecalculateProjectProgress reads every task belonging to the project and
// rewrites the project's progress field:
//
//   - no tasks: progress becomes 0 (status is deliberately left alone, so a
//     project can sit at Completed with an empty task list)
//   - otherwise: round(100 * complete / total), half away from zero
//
// The read and the write are two separate store round trips with no lock in
// between; concurrent task mutations on the same project can race and the
// last write wins. Recomputing twice in a row yields the same value.
func RecalculateProjectProgress(ctx context.Context, projectID string) error {
	var tasks []model.Task
	if err := dao.DB.WithContext(ctx).Where("project_id = ?", projectID).Find(&tasks).Error; err != nil {
		return err
	}

	progress := 0
	if len(tasks) > 0 {
		completed := 0
		for i := range tasks {
			if tasks[i].IsComplete {
				completed++
			}
		}
		progress = int(math.Round(float64(completed) / float64(len(tasks)) * 100))
	}

	// Unconditional write, even when the value did not change. A project
	// deleted underneath us matches zero rows and that is not an error.
	res := dao.DB.WithContext(ctx).Model(&model.Project{}).
		Where("id = ?", projectID).Update("progress", progress)
	recalculationsTotal.Inc()
	return res.Error
}

// recalcAfterMutation is the invocation used by the task handlers. The task
// mutation itself already succeeded, so a failed recompute is logged and
// swallowed rather than surfaced to the caller.
func recalcAfterMutation(ctx context.Context, projectID string) {
	if err := RecalculateProjectProgress(ctx, projectID); err != nil {
		logutils.Log.WithFields(logutils.Fields{"projectId": projectID}).
			Error("progress recalculation failed: ", err)
	}
}
