// internal/domain/homework/errors.go
package homework

import (
	"errors"
	"fmt"
)

// Shape and parse errors form a closed set the watcher can match on. The
// texts are user-facing: they end up in the error notification sent to the
// recipient.
var (
	ErrResponseNotObject = errors.New("ответ API не является объектом")
	ErrHomeworksNotList  = errors.New("в ответе API нет списка homeworks")
	ErrNameMissing       = errors.New("в данных о домашней работе нет ключа homework_name")
)

// UnknownStatusError reports a review status outside the known verdict set.
type UnknownStatusError struct {
	Status string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("Неизвестный статус домашней работы: %s", e.Status)
}
