package assistant

type uploadResponse struct {
	Status   string `json:"status"`
	ATSScore int    `json:"ats_score"`
}

type analyzeResponse struct {
	Status   string `json:"status"`
	ATSScore int    `json:"ats_score"`
	Feedback string `json:"feedback"`
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// chatUnavailableResponse is the single degraded shape for chat without a model.
type chatUnavailableResponse struct {
	Error string `json:"error"`
	Reply string `json:"reply"`
}
