package service

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound              = errors.New("not found")
	ErrParentNotFound        = errors.New("parent contract not found")
	ErrInvalidInput          = errors.New("invalid input")
	ErrInvalidAmendmentOrder = errors.New("only the last amendment in the chain may be changed")
)

func mapNotFoundErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func mapParentErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrParentNotFound
	}
	return err
}
