package domain

import "errors"

var ErrRecordNotFound = errors.New("Record not found")
var ErrTransactionFinalized = errors.New("Transaction already finalized")
var ErrDuplicateRecord = errors.New("Record already exists")
