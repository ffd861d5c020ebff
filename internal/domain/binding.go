package domain

import (
	"context"
	"encoding/json"
	"time"
)

// BindingState is the running state recorded on a binding.
type BindingState string

const BindingRunning BindingState = "Running"

// Binding associates a catalog container with an application as an active development container.
// AppID is nil once the binding has been unbound.
type Binding struct {
	ID            int64
	AppID         *int64
	AppName       string
	PodSelector   string
	ContainerName string
	DevEnv        string
	State         BindingState
	CreateTime    time.Time
	UpdateTime    time.Time
}

// Bound reports whether the binding is still associated with an application.
func (b Binding) Bound() bool {
	return b.AppID != nil
}

// Clone returns a copy that does not share AppID with b.
func (b Binding) Clone() Binding {
	if b.AppID != nil {
		id := *b.AppID
		b.AppID = &id
	}
	return b
}

// MarshalJSON renders an unbound appId as "" so clients see the same shape before and after unbind.
func (b Binding) MarshalJSON() ([]byte, error) {
	var appID any = ""
	if b.AppID != nil {
		appID = *b.AppID
	}
	return json.Marshal(struct {
		ID            int64        `json:"id"`
		AppID         any          `json:"appId"`
		AppName       string       `json:"appName"`
		PodSelector   string       `json:"podSelector"`
		ContainerName string       `json:"containerName"`
		DevEnv        string       `json:"devEnv"`
		State         BindingState `json:"state"`
		CreateTime    time.Time    `json:"createTime"`
		UpdateTime    time.Time    `json:"updateTime"`
	}{
		ID:            b.ID,
		AppID:         appID,
		AppName:       b.AppName,
		PodSelector:   b.PodSelector,
		ContainerName: b.ContainerName,
		DevEnv:        b.DevEnv,
		State:         b.State,
		CreateTime:    b.CreateTime,
		UpdateTime:    b.UpdateTime,
	})
}

// BindRequest asks to bind a catalog container. A nil ContainerID creates a new binding;
// otherwise the existing binding with that id is re-pointed.
type BindRequest struct {
	ContainerID   *int64 `json:"containerId,omitempty"`
	AppID         int64  `json:"appId"`
	PodSelector   string `json:"podSelector"`
	ContainerName string `json:"containerName"`
	DevEnv        string `json:"devEnv,omitempty"`
}

// UnbindRequest identifies the binding to clear. Only ContainerID is used for the lookup.
type UnbindRequest struct {
	ContainerID   int64  `json:"containerId"`
	AppID         int64  `json:"appId"`
	PodSelector   string `json:"podSelector"`
	ContainerName string `json:"containerName"`
}

// BindingRepository owns the live binding list and the binding id counter.
// Update applies mutate under the repository lock and returns ErrBindingNotFound for unknown ids.
type BindingRepository interface {
	Create(ctx context.Context, b Binding) (*Binding, error)
	Update(ctx context.Context, id int64, mutate func(*Binding)) (*Binding, error)
	List(ctx context.Context) ([]Binding, error)
}
