package speechkit

// Запрос на длительное распознавание (speech/stt/v2/longRunningRecognize)
type recognitionRequest struct {
	Config recognitionConfig `json:"config"`
	Audio  audioSource       `json:"audio"`
}

type recognitionConfig struct {
	Specification specification `json:"specification"`
}

type specification struct {
	LanguageCode      string `json:"languageCode"`
	Model             string `json:"model"`
	AudioEncoding     string `json:"audioEncoding"`
	SampleRateHertz   int    `json:"sampleRateHertz"`
	AudioChannelCount int    `json:"audioChannelCount"`
}

type audioSource struct {
	URI string `json:"uri"`
}

// Операция Yandex Cloud. Response появляется только при done=true
type Operation struct {
	ID         string             `json:"id"`
	Done       bool               `json:"done"`
	CreatedAt  string             `json:"createdAt"`
	ModifiedAt string             `json:"modifiedAt"`
	Response   *RecognitionResult `json:"response,omitempty"`
	Error      *OperationError    `json:"error,omitempty"`
}

type OperationError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type RecognitionResult struct {
	Chunks []Chunk `json:"chunks"`
}

type Chunk struct {
	Alternatives []Alternative `json:"alternatives"`
	ChannelTag   string        `json:"channelTag,omitempty"`
}

type Alternative struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence,omitempty"`
}
