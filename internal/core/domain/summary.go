package domain

// SummaryStatus tags the state of the summary panel.
type SummaryStatus int

const (
	// SummaryIdle means no summary has been requested.
	SummaryIdle SummaryStatus = iota
	// SummaryLoading means a request is in flight.
	SummaryLoading
	// SummaryContent means a summary was received.
	SummaryContent
	// SummaryError means the request failed.
	SummaryError
)

// String returns the string representation of the status.
func (s SummaryStatus) String() string {
	switch s {
	case SummaryIdle:
		return "idle"
	case SummaryLoading:
		return "loading"
	case SummaryContent:
		return "content"
	case SummaryError:
		return "error"
	default:
		return "unknown"
	}
}

// Summary is a generated summary of a single document.
type Summary struct {
	// FileName echoes the name of the summarised document.
	FileName string `json:"file_name"`

	// Text is the generated summary.
	Text string `json:"summary"`
}

// SummaryState is the tagged state shown by the detail panel.
type SummaryState struct {
	Status   SummaryStatus
	FileName string
	Summary  string
	Message  string
}

// SummaryLoadingState returns the state for an in-flight request.
func SummaryLoadingState(fileName string) SummaryState {
	return SummaryState{Status: SummaryLoading, FileName: fileName}
}

// SummaryContentState returns the state for a received summary.
func SummaryContentState(fileName, summary string) SummaryState {
	return SummaryState{Status: SummaryContent, FileName: fileName, Summary: summary}
}

// SummaryErrorState returns the state for a failed request.
func SummaryErrorState(fileName, message string) SummaryState {
	return SummaryState{Status: SummaryError, FileName: fileName, Message: message}
}
