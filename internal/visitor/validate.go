package visitor

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	MsgAllFieldsRequired = "All fields are required."
	MsgInvalidContact    = "Invalid contact number. Please enter a 10-digit number."
	MsgInvalidPersons    = "Invalid number of persons. Please enter a positive number."
)

var contactPattern = regexp.MustCompile(`^[0-9]{10}$`)

// fields is a submission that passed validation.
type fields struct {
	VisitorName   string
	NoOfPersons   int
	Purpose       string
	ContactNumber string
	VisitDate     string
}

// validate runs the three checks in order and stops at the first failure:
// presence, contact number format, person count.
func validate(in SubmitRequest) (fields, error) {
	name := clean(in.VisitorName)
	persons := clean(in.NoOfPersons)
	purpose := clean(in.Purpose)
	contact := clean(in.ContactNumber)
	// the contact pattern sees the value untrimmed: " 9876543210" is not ten digits
	rawContact := norm.NFC.String(in.ContactNumber.String())
	date := clean(in.VisitDate)

	if name == "" || persons == "" || purpose == "" || contact == "" || date == "" {
		return fields{}, ErrInvalid(MsgAllFieldsRequired)
	}
	if !contactPattern.MatchString(rawContact) {
		return fields{}, ErrInvalid(MsgInvalidContact)
	}
	n, ok := parsePersons(persons)
	if !ok {
		return fields{}, ErrInvalid(MsgInvalidPersons)
	}

	return fields{
		VisitorName:   name,
		NoOfPersons:   n,
		Purpose:       purpose,
		ContactNumber: contact,
		VisitDate:     date,
	}, nil
}

func clean(f Field) string {
	if !f.IsSet() {
		return ""
	}
	return strings.TrimSpace(norm.NFC.String(f.String()))
}

// parsePersons accepts "3", "3.0" and 3 but not 2.5, 0, negatives or NaN.
func parsePersons(s string) (int, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	if v <= 0 || v != math.Trunc(v) || v > math.MaxInt32 {
		return 0, false
	}
	return int(v), true
}
