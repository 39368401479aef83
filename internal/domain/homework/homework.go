// internal/domain/homework/homework.go
package homework

import "fmt"

// Status is a review status code as reported by the Practicum API.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// verdicts maps every known review status to its human-readable verdict
// sentence. The set is fixed for the process lifetime.
var verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Verdict returns the verdict sentence for a status code. The second return
// value is false for codes outside the known set.
func Verdict(s Status) (string, bool) {
	v, ok := verdicts[s]
	return v, ok
}

// CheckResponse verifies the shape of a decoded API payload: it must be a
// JSON object whose "homeworks" field is a (possibly empty) array. On success
// the payload is returned unchanged; CheckResponse is a gate, not a
// transformation.
func CheckResponse(payload any) (map[string]any, error) {
	resp, ok := payload.(map[string]any)
	if !ok {
		return nil, ErrResponseNotObject
	}
	if _, ok := resp["homeworks"].([]any); !ok {
		return nil, ErrHomeworksNotList
	}
	return resp, nil
}

// Homeworks extracts the homework records from a response that has already
// passed CheckResponse.
func Homeworks(resp map[string]any) []any {
	records, _ := resp["homeworks"].([]any)
	return records
}

// ParseStatus renders a single homework record into the notification message.
// It fails if the record has no homework_name or if its status is outside the
// known verdict set.
func ParseStatus(record any) (string, error) {
	hw, _ := record.(map[string]any)

	name, _ := hw["homework_name"].(string)
	if name == "" {
		return "", ErrNameMissing
	}

	status, _ := hw["status"].(string)
	verdict, ok := Verdict(Status(status))
	if !ok {
		return "", &UnknownStatusError{Status: status}
	}

	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", name, verdict), nil
}
