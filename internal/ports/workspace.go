package ports

import "github.com/aalvaropc/tourbook/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
