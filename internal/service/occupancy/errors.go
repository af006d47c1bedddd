package occupancy

import "errors"

// ErrInternal возвращается при ошибках чтения источников занятости
var ErrInternal = errors.New("occupancy service: internal error")
