package controllers

import "errors"

// Form errors
var (
	errAmountInvalid = errors.New("the amount must be a number")
)

// Transaction errors
var (
	errTransactionIDInvalid   = errors.New("the specified transaction ID is not a valid number")
	errTransactionTypeInvalid = errors.New("the specified transaction type is invalid")
)
