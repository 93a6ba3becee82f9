package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrExpenseAmountNotPositive = errors.New("the expense amount must be positive")
	ErrExpenseImageRequired     = errors.New("an expense can not be saved without its photo")
	ErrBudgetAmountNegative     = errors.New("the budget amount must not be negative")
	ErrOverrideMonthRequired    = errors.New("a budget override needs a month to apply to")
	ErrOverrideMonthNotUnique   = errors.New("there can only be one budget override per month")
)
