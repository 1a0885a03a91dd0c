package visitor

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

// ===== Requests =====

// SubmitRequest: POST /submit
type SubmitRequest struct {
	VisitorName   Field `json:"visitorName"`
	NoOfPersons   Field `json:"noOfPersons"`
	Purpose       Field `json:"purpose"`
	ContactNumber Field `json:"contactNumber"`
	VisitDate     Field `json:"visitDate"`
}

// Field holds a form value that the browser may send as a JSON string or a JSON number.
// null and an absent key both leave it unset.
type Field struct {
	value string
	set   bool
}

func Text(s string) Field { return Field{value: s, set: true} }

func Number(n int) Field { return Field{value: strconv.Itoa(n), set: true} }

func (f Field) String() string { return f.value }

func (f Field) IsSet() bool { return f.set }

func (f *Field) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = Field{}
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = Field{value: s, set: true}
		return nil
	}
	if len(b) > 0 && (b[0] == '{' || b[0] == '[') {
		return errors.New("form field must be a string or a number")
	}
	// numbers and booleans are kept as their literal text
	*f = Field{value: string(b), set: true}
	return nil
}

func (f Field) MarshalJSON() ([]byte, error) {
	if !f.set {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

// ===== Responses =====

// SubmitResponse: 200 for POST /submit
type SubmitResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	DownloadLink string `json:"downloadLink"`
}
