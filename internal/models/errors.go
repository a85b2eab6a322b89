package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrNameRequired     = errors.New("the name must be set")
	ErrCategoryRequired = errors.New("the category must be set")

	ErrQuantityNegative     = errors.New("the quantity must not be negative")
	ErrMinimalStockNegative = errors.New("the minimal stock must not be negative")
	ErrPriceNegative        = errors.New("the price must not be negative")
	ErrBudgetNegative       = errors.New("the budget must not be negative")

	ErrQuantityNotPositive = errors.New("the quantity must be a positive number")
	ErrInsufficientStock   = errors.New("there is not enough stock on hand")
)
