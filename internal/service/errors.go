package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound — запись отсутствует или помечена удалённой.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials — неверный идентификатор или пароль.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnknownPermission — роль ссылается на несуществующее право.
	ErrUnknownPermission = errors.New("unknown permission")
	// ErrParentNotFound — родительская категория не найдена.
	ErrParentNotFound = errors.New("parent category not found")
	// ErrParentCycle — категория не может быть своим предком.
	ErrParentCycle = errors.New("category cannot be its own ancestor")
	// ErrInvalidStatus — статус заказа вне допустимого набора.
	ErrInvalidStatus = errors.New("invalid order status")
	// ErrInvalidRole — роль пользователя вне допустимого набора.
	ErrInvalidRole = errors.New("invalid user role")
	// ErrOrderClosed — доставленный или отменённый заказ менять нельзя.
	ErrOrderClosed = errors.New("order is closed")
)

// UnknownPermissionsError перечисляет id прав, которых нет среди живых записей.
type UnknownPermissionsError struct {
	IDs []string
}

func (e *UnknownPermissionsError) Error() string {
	return ErrUnknownPermission.Error() + ": " + strings.Join(e.IDs, ", ")
}

func (e *UnknownPermissionsError) Unwrap() error { return ErrUnknownPermission }

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
