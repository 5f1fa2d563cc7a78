// Package errors provides custom error types for catalog and ledger operations.
package errors

import "errors"

var ErrProductNotFound = errors.New("product not found")
var ErrDuplicateName = errors.New("product name already exists")
var ErrInsufficientStock = errors.New("insufficient stock")

var ErrTransactionBegin = errors.New("failed to begin transaction")
var ErrTransactionCommit = errors.New("failed to commit transaction")
var ErrTransactionRollback = errors.New("failed to rollback transaction")
