package reply

// Status is the state of the generation state machine.
type Status int

const (
	StatusIdle Status = iota
	StatusPending
	StatusSuccess
	StatusFailed
)

// String returns a human-readable name for the status
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusPending:
		return "Pending"
	case StatusSuccess:
		return "Success"
	case StatusFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// FallbackReply is substituted for the draft whenever the reply service
// cannot produce one.
const FallbackReply = `Dear [Recipient],

Thank you for your email. I appreciate you taking the time to reach out.

I understand your request and will be happy to assist you with this matter. Let me review the details and get back to you with a comprehensive response by [date].

If you have any urgent concerns or additional information that might be helpful, please don't hesitate to let me know.

Best regards,
[Your Name]`

// Outcome is the result of one generation attempt.
type Outcome struct {
	Status Status
	// Text is the reply on success and FallbackReply on failure.
	Text string
	// Err is the masked failure for StatusFailed, kept for logging.
	Err error
}

// Succeeded returns a Success outcome carrying the service reply verbatim.
func Succeeded(text string) Outcome {
	return Outcome{Status: StatusSuccess, Text: text}
}

// FellBack returns a Failed outcome carrying the fallback template.
func FellBack(err error) Outcome {
	return Outcome{Status: StatusFailed, Text: FallbackReply, Err: err}
}

// Terminal reports whether the outcome ends an attempt.
func (o Outcome) Terminal() bool {
	return o.Status == StatusSuccess || o.Status == StatusFailed
}

// Notice returns the notification for a terminal outcome.
func (o Outcome) Notice() Notice {
	switch o.Status {
	case StatusSuccess:
		return NoticeGenerated
	case StatusFailed:
		return NoticeGenerationFailed
	default:
		return Notice{}
	}
}
