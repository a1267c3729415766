package entity

// ERP processing status codes as reported in the iDoc status response.
const (
	ERPStatusProcessed = 53
	ERPStatusError     = 51
	ERPStatusReady     = 64
)

// ERPResponse is the reconciled outcome of one document submission.
// Success is true only for a terminal-success status; unknown codes are
// treated as non-terminal.
type ERPResponse struct {
	DocumentNumber string
	Status         int
	StockCode      string
	ErrorMessage   string
	Success        bool
}

// StatusMessage maps an ERP status code to a caller-facing description.
func StatusMessage(status int) string {
	switch status {
	case ERPStatusProcessed:
		return "order processed successfully in both systems"
	case ERPStatusError:
		return "ERP processing error"
	case ERPStatusReady:
		return "order ready for processing in ERP"
	default:
		return "unknown ERP status"
	}
}
