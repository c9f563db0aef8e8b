package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/ojohpeters/ecocoin-back/common"
	"github.com/ojohpeters/ecocoin-back/dao"
	"github.com/ojohpeters/ecocoin-back/service/svc"
	"github.com/ojohpeters/ecocoin-back/stores/gdb/points"
	types "github.com/ojohpeters/ecocoin-back/types/v1"
)

func GetTasks(ctx context.Context, s *svc.ServerCtx) ([]points.Task, error) {
	tasks, err := s.Dao.GetAllTasks(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed on list tasks")
	}
	return tasks, nil
}

// CreateTask adds a point-awarding task. Tasks are reference data; there is
// no update or delete path.
func CreateTask(ctx context.Context, s *svc.ServerCtx, req types.CreateTaskRequest) (*points.Task, error) {
	task := &points.Task{
		Name:   req.Name,
		Points: req.Points,
	}
	if req.Description != "" {
		task.Description = &req.Description
	}

	if err := s.Dao.CreateTask(ctx, task); err != nil {
		return nil, errors.Wrap(err, "failed on create task")
	}
	return task, nil
}

// CompleteTask records a task completion and credits its points. A user who
// already claimed the airdrop earns nothing further; a (user, task) pair is
// accepted at most once.
func CompleteTask(ctx context.Context, s *svc.ServerCtx, wallet string, taskID uuid.UUID) error {
	wallet, err := common.UnifyAddress(wallet)
	if err != nil {
		return err
	}

	user, err := s.Dao.GetUserByWallet(ctx, wallet)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("wallet is not registered")
		}
		return errors.Wrap(err, "failed on get user")
	}

	if user.HasClaimed {
		return errors.New("airdrop already claimed, no more task points")
	}

	done, err := s.Dao.HasCompletedTask(ctx, user.ID, taskID)
	if err != nil {
		return errors.Wrap(err, "failed on check completion")
	}
	if done {
		return errors.New("task already completed")
	}

	task, err := s.Dao.GetTaskByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("task not found")
		}
		return errors.Wrap(err, "failed on get task")
	}

	// Insert and credit atomically; the unique (user_id, task_id) index
	// backstops races between concurrent completions.
	return s.Dao.Transaction(ctx, func(tx *dao.Dao) error {
		completed := &points.CompletedTask{
			UserID: user.ID,
			TaskID: task.ID,
		}
		if err := tx.CreateCompletedTask(ctx, completed); err != nil {
			return errors.Wrap(err, "failed on record completion")
		}
		if err := tx.AddPoints(ctx, user.ID, task.Points); err != nil {
			return errors.Wrap(err, "failed on credit task points")
		}
		return nil
	})
}
