package tui

import "github.com/aalvaropc/tourbook/internal/domain"

type tourSavedMsg struct {
	tour  domain.Tour
	index int
	err   error
}

type tourDeletedMsg struct {
	tour  domain.Tour
	index int
	err   error
}
