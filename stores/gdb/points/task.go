package points

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task is static reference data: a unit of work that awards points once.
type Task struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Points      int       `gorm:"not null" json:"points"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func TaskTableName() string {
	return "tasks"
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// CompletedTask records that a user finished a task. The (user_id, task_id)
// pair is unique: a task is completed at most once per user.
type CompletedTask struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_completed_user_task" json:"user_id"`
	User        *User     `gorm:"foreignKey:UserID" json:"-"`
	TaskID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_completed_user_task" json:"task_id"`
	Task        *Task     `gorm:"foreignKey:TaskID" json:"-"`
	CompletedAt time.Time `gorm:"not null" json:"completed_at"`
}

func CompletedTaskTableName() string {
	return "completed_tasks"
}

func (c *CompletedTask) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CompletedAt.IsZero() {
		c.CompletedAt = time.Now()
	}
	return nil
}
