package dao

import (
	"context"

	"github.com/google/uuid"

	"github.com/ojohpeters/ecocoin-back/stores/gdb/points"
)

func (d *Dao) CreateTask(c context.Context, task *points.Task) error {
	return d.DB.WithContext(c).Create(task).Error
}

func (d *Dao) GetTaskByID(c context.Context, taskID uuid.UUID) (*points.Task, error) {
	var task points.Task
	err := d.DB.WithContext(c).
		Table(points.TaskTableName()).Where("id = ?", taskID).First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (d *Dao) GetAllTasks(c context.Context) ([]points.Task, error) {
	var tasks []points.Task
	err := d.DB.WithContext(c).Table(points.TaskTableName()).Find(&tasks).Error
	return tasks, err
}

func (d *Dao) CreateCompletedTask(c context.Context, completed *points.CompletedTask) error {
	return d.DB.WithContext(c).Create(completed).Error
}

func (d *Dao) HasCompletedTask(c context.Context, userID, taskID uuid.UUID) (bool, error) {
	var count int64
	err := d.DB.WithContext(c).Model(&points.CompletedTask{}).
		Where("user_id = ? AND task_id = ?", userID, taskID).Count(&count).Error
	return count > 0, err
}

func (d *Dao) GetCompletedTaskIDs(c context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := d.DB.WithContext(c).Model(&points.CompletedTask{}).
		Where("user_id = ?", userID).Pluck("task_id", &ids).Error
	return ids, err
}
