package pictech

// Vendor status codes shared by the asynchronous task endpoints.
const (
	CodeTaskSucceeded  = 200
	CodeTaskProcessing = 202
)

// RemoveBackgroundTask describes a background-removal submission. Exactly
// one of ImageBase64 and ImageURL must be set.
type RemoveBackgroundTask struct {
	ImageBase64 string
	ImageURL    string
	BgColor     string
}

type RemoveBackgroundSubmitResponse struct {
	Code      int    `json:"Code"`
	RequestID string `json:"RequestId"`
	Message   string `json:"Message"`
}

type RemoveBackgroundQueryResponse struct {
	Code      int                        `json:"Code"`
	Data      RemoveBackgroundResultData `json:"Data"`
	Message   string                     `json:"Message"`
	ErrorCode string                     `json:"ErrorCode"`
}

type RemoveBackgroundResultData struct {
	OutputURL string `json:"OutputUrl"`
}
