package repository

import "errors"

var (
	// ErrLeadNotFound возвращается, если лид не найден.
	ErrLeadNotFound = errors.New("lead not found")

	// ErrLeadExists возвращается при попытке сохранить лид с уже занятым нормализованным URL.
	ErrLeadExists = errors.New("lead with this website url already exists")

	// ErrRepNotFound возвращается, если менеджер не найден.
	ErrRepNotFound = errors.New("sales rep not found")

	// ErrTeamNotFound возвращается, если команда не найдена.
	ErrTeamNotFound = errors.New("team not found")

	// ErrTeamExists возвращается при попытке создать дубликат команды.
	ErrTeamExists = errors.New("team already exists")
)
