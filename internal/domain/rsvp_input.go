package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"strings"
)

var emailRegexp = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.[a-z]{2,})+$`)

// Validation messages reported per field.
const (
	MsgNameRequired       = "name is required"
	MsgEmailInvalid       = "valid email required"
	MsgAttendingRequired  = "attending is required"
	MsgGuestsRequired     = "numOfGuests is required when attending"
	MsgGuestsNotInteger   = "numOfGuests must be a whole number"
	MsgGuestsMin          = "Number of guests must be at least 1 if attending"
	MsgChildrenRequired   = "numOfChildren is required when attending"
	MsgChildrenNotInteger = "numOfChildren must be a whole number"
	MsgChildrenMin        = "Number of children cannot be negative"
	MsgGuestsRange        = "numOfGuests is out of range"
	MsgChildrenRange      = "numOfChildren is out of range"
	MsgValuesRejected     = "one or more values were rejected"
)

// Counts are stored as 32-bit integers.
const (
	minCount = math.MinInt32
	maxCount = math.MaxInt32
)

// Field tracks a JSON value that may be absent, null, of the wrong type, or set.
type Field[T any] struct {
	Set     bool // key present in the payload
	Null    bool
	Invalid bool // present but not decodable as T
	Value   T
}

// Of returns a Field holding v.
func Of[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// Null returns a Field that was explicitly sent as null.
func Null[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

// UnmarshalJSON never fails so that every field of a payload can be reported at once.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	*f = Field[T]{Set: true}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Null = true
		return nil
	}
	if n, ok := any(&f.Value).(*int); ok {
		v, whole := wholeNumber(data)
		*n = v
		f.Invalid = !whole
		return nil
	}
	if err := json.Unmarshal(data, &f.Value); err != nil {
		var zero T
		f.Value = zero
		f.Invalid = true
	}
	return nil
}

// wholeNumber decodes a JSON number with no fractional part, so 2.0 reads as 2.
// Values beyond int saturate and are rejected later by range checks.
func wholeNumber(data []byte) (int, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] == '"' {
		return 0, false
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return 0, false
	}
	if i, err := n.Int64(); err == nil && i >= math.MinInt && i <= math.MaxInt {
		return int(i), true
	}
	x, err := n.Float64()
	if err != nil && !math.IsInf(x, 0) {
		return 0, false
	}
	if x != math.Trunc(x) {
		return 0, false
	}
	switch {
	case x >= math.MaxInt:
		return math.MaxInt, true
	case x <= math.MinInt:
		return math.MinInt, true
	}
	return int(x), true
}

// MarshalJSON writes null unless the field holds a valid value.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Ok() {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Ok reports whether the field holds a usable value.
func (f Field[T]) Ok() bool {
	return f.Set && !f.Null && !f.Invalid
}

func (f Field[T]) ptr() *T {
	if !f.Ok() {
		return nil
	}
	v := f.Value
	return &v
}

func fieldFromPtr[T any](p *T) Field[T] {
	if p == nil {
		return Field[T]{}
	}
	return Of(*p)
}

// RSVPInput is a candidate RSVP payload, partial on updates.
// id and updateToken are not part of it: clients can never set them.
type RSVPInput struct {
	Name          Field[string] `json:"name"`
	Email         Field[string] `json:"email"`
	Attending     Field[bool]   `json:"attending"`
	NumOfGuests   Field[int]    `json:"numOfGuests"`
	NumOfChildren Field[int]    `json:"numOfChildren"`
}

// RSVPFields are the normalized, validated user-editable fields of an RSVP.
type RSVPFields struct {
	Name          string
	Email         string
	Attending     bool
	NumOfGuests   *int
	NumOfChildren *int
}

// InputFromRSVP returns the stored state of r as a fully populated input.
func InputFromRSVP(r *RSVP) RSVPInput {
	return RSVPInput{
		Name:          Of(r.Name),
		Email:         Of(r.Email),
		Attending:     Of(r.Attending),
		NumOfGuests:   fieldFromPtr(r.NumOfGuests),
		NumOfChildren: fieldFromPtr(r.NumOfChildren),
	}
}

// Merge returns in with every field present in patch overriding it.
func (in RSVPInput) Merge(patch RSVPInput) RSVPInput {
	out := in
	if patch.Name.Set {
		out.Name = patch.Name
	}
	if patch.Email.Set {
		out.Email = patch.Email
	}
	if patch.Attending.Set {
		out.Attending = patch.Attending
	}
	if patch.NumOfGuests.Set {
		out.NumOfGuests = patch.NumOfGuests
	}
	if patch.NumOfChildren.Set {
		out.NumOfChildren = patch.NumOfChildren
	}
	return out
}

// Validate checks every field and returns the normalized fields, or a
// *ValidationError listing the first failing rule of each bad field.
func (in RSVPInput) Validate() (RSVPFields, error) {
	var (
		f    RSVPFields
		errs []string
	)

	name := strings.TrimSpace(in.Name.Value)
	if !in.Name.Ok() || name == "" {
		errs = append(errs, MsgNameRequired)
	}
	f.Name = name

	email := strings.ToLower(strings.TrimSpace(in.Email.Value))
	if !in.Email.Ok() || !emailRegexp.MatchString(email) {
		errs = append(errs, MsgEmailInvalid)
	}
	f.Email = email

	if !in.Attending.Ok() {
		errs = append(errs, MsgAttendingRequired)
	}
	f.Attending = in.Attending.Ok() && in.Attending.Value

	if msg := checkCount(in.NumOfGuests, f.Attending, 1, MsgGuestsRequired, MsgGuestsNotInteger, MsgGuestsMin, MsgGuestsRange); msg != "" {
		errs = append(errs, msg)
	}
	f.NumOfGuests = in.NumOfGuests.ptr()

	if msg := checkCount(in.NumOfChildren, f.Attending, 0, MsgChildrenRequired, MsgChildrenNotInteger, MsgChildrenMin, MsgChildrenRange); msg != "" {
		errs = append(errs, msg)
	}
	f.NumOfChildren = in.NumOfChildren.ptr()

	if len(errs) > 0 {
		return RSVPFields{}, &ValidationError{Errors: errs}
	}
	return f, nil
}

// checkCount applies the required/integer/minimum/range rules. Required and minimum only hold when attending.
func checkCount(v Field[int], attending bool, floor int, required, notInteger, belowMin, outOfRange string) string {
	if v.Invalid {
		return notInteger
	}
	if !v.Ok() {
		if attending {
			return required
		}
		return ""
	}
	if attending && v.Value < floor {
		return belowMin
	}
	if v.Value < minCount || v.Value > maxCount {
		return outOfRange
	}
	return ""
}

// WithAttendingDefaults fills numOfGuests=1 and numOfChildren=0 when the patch
// sets attending to true and omits them or sends null.
func (in RSVPInput) WithAttendingDefaults() RSVPInput {
	patch := in
	if !patch.Attending.Ok() || !patch.Attending.Value {
		return patch
	}
	if !patch.NumOfGuests.Ok() && !patch.NumOfGuests.Invalid {
		patch.NumOfGuests = Of(1)
	}
	if !patch.NumOfChildren.Ok() && !patch.NumOfChildren.Invalid {
		patch.NumOfChildren = Of(0)
	}
	return patch
}
