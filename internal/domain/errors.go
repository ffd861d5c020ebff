package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")

	ErrApplicationNotFound = fmt.Errorf("application %w", ErrNotFound)
	ErrContainerNotFound   = fmt.Errorf("container %w", ErrNotFound)
	ErrBindingNotFound     = fmt.Errorf("binding %w", ErrNotFound)

	// ErrConfigNotFound is returned by config repositories when nothing is stored for an app.
	// The app layer answers it with the default template.
	ErrConfigNotFound = errors.New("config not found")

	// ErrStoreUnavailable marks backend failures that callers may retry later.
	ErrStoreUnavailable = errors.New("store unavailable")
)
