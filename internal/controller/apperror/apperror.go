package apperror

import "errors"

var ErrConfigNotFound = errors.New("pos config not found")
var ErrProductNotFound = errors.New("product not found")
var ErrLocationNotFound = errors.New("stock location not found")
var ErrNoSourceLocation = errors.New("pos config has no stock source location")
var ErrMoveAlreadyStored = errors.New("stock move already stored")

var ErrInvalidProductsQuery = errors.New("invalid products query")
var ErrInvalidQuantsQuery = errors.New("invalid quants query")
var ErrInvalidMove = errors.New("invalid stock move")
