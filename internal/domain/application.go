package domain

import (
	"context"
	"time"
)

// Application is a tracked development project.
type Application struct {
	ID         int64     `json:"id"`
	Name       string    `json:"appName"`
	DevEnv     string    `json:"devEnv"`
	CreateTime time.Time `json:"createTime"`
	UpdateTime time.Time `json:"updateTime"`

	// Display metadata, computed from server configuration at creation time.
	Chart    string `json:"chart"`
	Entrance string `json:"entrance"`
	IDE      string `json:"ide"`
}

// ApplicationRepository owns the set of known applications and their identity.
// IDs come from a dedicated counter and are never reused after a delete.
type ApplicationRepository interface {
	Create(ctx context.Context, app Application) (*Application, error)
	DeleteByName(ctx context.Context, name string) (int, error)
	List(ctx context.Context) ([]Application, error)
	GetByID(ctx context.Context, id int64) (*Application, error)
}
