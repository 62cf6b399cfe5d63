package verdict

// Severity classifies a Status on a three-level scale. Higher values are more
// severe; Merge keeps the maximum across its inputs.
type Severity int

const (
	// Valid means every rule passed. It is the merge identity.
	Valid Severity = iota

	// DataError marks a business-rule violation on otherwise readable data.
	DataError

	// ParseError marks structurally unreadable input, detected before
	// field-level validation even begins.
	ParseError
)

func (s Severity) String() string {
	switch s {
	case Valid:
		return "valid"
	case DataError:
		return "data error"
	case ParseError:
		return "parse error"
	default:
		return "unknown"
	}
}

// Status is the result of one or more rule evaluations: a severity plus
// human-readable messages grouped by key (the empty key is the ungrouped
// default). Statuses are values; builder and merge operations return fresh
// copies, so a Status handed to a caller never changes underneath it.
type Status struct {
	severity Severity
	messages map[string][]string
}

// Success returns a Valid Status with no messages.
func Success() Status {
	return Status{severity: Valid}
}

// Failure returns an empty-message Status at the given severity. Use
// ParseError for structural failures such as malformed top-level input;
// rule violations use DataError.
func Failure(severity Severity) Status {
	return Status{severity: severity}
}

// Evaluate returns Success when ok is true, otherwise a DataError Status
// carrying message under key.
func Evaluate(ok bool, message, key string) Status {
	if ok {
		return Success()
	}
	return Failure(DataError).WithMessage(message, key)
}

// WithMessage returns a copy of s with message appended under key. The
// receiver is left untouched.
func (s Status) WithMessage(message, key string) Status {
	out := Status{
		severity: s.severity,
		messages: make(map[string][]string, len(s.messages)+1),
	}
	for k, msgs := range s.messages {
		out.messages[k] = append([]string(nil), msgs...)
	}
	out.messages[key] = append(out.messages[key], message)
	return out
}

// IsSuccess reports whether the severity is Valid.
func (s Status) IsSuccess() bool {
	return s.severity == Valid
}

// Severity returns the severity of the Status.
func (s Status) Severity() Severity {
	return s.severity
}

// Messages returns a copy of the grouped messages. Keys with no messages are
// omitted; mutating the returned map does not affect the Status.
func (s Status) Messages() map[string][]string {
	out := make(map[string][]string, len(s.messages))
	for k, msgs := range s.messages {
		if len(msgs) == 0 {
			continue
		}
		out[k] = append([]string(nil), msgs...)
	}
	return out
}

// MessagesFor returns the ordered messages recorded under key, or nil if the
// key has none.
func (s Status) MessagesFor(key string) []string {
	msgs := s.messages[key]
	if len(msgs) == 0 {
		return nil
	}
	return append([]string(nil), msgs...)
}

// Merge combines two Statuses: the result carries the more severe of the two
// severities, and for every key the messages of a followed by the messages
// of b.
func Merge(a, b Status) Status {
	return MergeAll(a, b)
}

// MergeAll folds any number of Statuses into one. With no inputs it returns
// Success, making it safe to call over an empty collection. Per-key message
// order follows input order; severity is the maximum across inputs.
func MergeAll(statuses ...Status) Status {
	out := Status{severity: Valid}
	for _, st := range statuses {
		if st.severity > out.severity {
			out.severity = st.severity
		}
		for k, msgs := range st.messages {
			if len(msgs) == 0 {
				continue
			}
			if out.messages == nil {
				out.messages = make(map[string][]string)
			}
			out.messages[k] = append(out.messages[k], msgs...)
		}
	}
	return out
}
