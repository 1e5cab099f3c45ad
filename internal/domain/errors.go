package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyChart         = errors.New("astro API returned empty chart")
	ErrLunarPhaseNotFound = errors.New("lunar phase is missing in chart")
)

// PanicError паника внешнего расчёта, превращённая в обычную ошибку
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprint(e.Value)
}

func IsPanicError(err error) bool {
	var panicErr *PanicError
	return errors.As(err, &panicErr)
}
