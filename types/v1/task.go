package types

import (
	"github.com/google/uuid"

	"github.com/ojohpeters/ecocoin-back/stores/gdb/points"
)

type CompleteTaskRequest struct {
	WalletAddress string    `json:"wallet_address" binding:"required"`
	TaskID        uuid.UUID `json:"task_id" binding:"required"`
}

type CompleteTaskResp struct {
	Status string `json:"status"`
}

// CreateTaskRequest defines an administrative task creation.
type CreateTaskRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Points      int    `json:"points" binding:"required,gt=0"`
	Description string `json:"description" binding:"max=1000"`
}

type TaskListResp struct {
	Result []points.Task `json:"result"`
}
