package leaf

import "errors"

// ErrOutOfOrder is returned by Builder.Add when a tuple arrives out of the
// required (col, row) ascending order.
var ErrOutOfOrder = errors.New("leaf: tuple out of (col,row) order")

// ErrFinished is returned by Builder.Add when called after Finish.
var ErrFinished = errors.New("leaf: builder already finished")
