package googleapi

// Config for models.generate_content parameters.
type GenerateContentParameters struct {
	// ID of the model to use. For a list of models, see `Google models
	// <https://cloud.google.com/vertex-ai/generative-ai/docs/learn/models>`_.
	Model string `json:"model"`
	// Content of the request.
	Contents []Content `json:"contents"`
	// Code that enables the system to interact with external systems to
	// perform an action outside of the knowledge and scope of the model.
	Tools []Tool `json:"tools,omitempty"`
	// Instructions for the model to steer it toward better performance.
	SystemInstruction *Content               `json:"systemInstruction,omitempty"`
	GenerationConfig  *GenerateContentConfig `json:"generationConfig,omitempty"`
}

// Contains the multi-part content of a message.
type Content struct {
	// List of parts that constitute a single message. Each part may have
	// a different IANA MIME type.
	Parts []Part `json:"parts,omitempty"`
	// Optional. The producer of the content. Must be either 'user' or
	// 'model'. Useful to set for multi-turn conversations, otherwise can be
	// empty. If role is not specified, SDK will determine the role.
	Role string `json:"role,omitempty"`
}

// A datatype containing media content.
//
// Only text parts are produced or consumed by this client; other part kinds
// returned by the API are ignored.
type Part struct {
	// Indicates if the part is thought from the model.
	Thought *bool `json:"thought,omitempty"`
	// Optional. Text part (can be code).
	Text *string `json:"text,omitempty"`
}

// Optional model configuration parameters.
type GenerateContentConfig struct {
	// Value that controls the degree of randomness in token selection.
	// Lower temperatures are good for prompts that require a less open-ended or
	// creative response, while higher temperatures can lead to more diverse or
	// creative results.
	Temperature *float64 `json:"temperature,omitempty"`
	// Tokens are selected from the most to least probable until the sum
	// of their probabilities equals this value.
	TopP *float64 `json:"topP,omitempty"`
	// Number of response variations to return.
	CandidateCount *int `json:"candidateCount,omitempty"`
	// Maximum number of tokens that can be generated in the response.
	MaxOutputTokens *uint32 `json:"maxOutputTokens,omitempty"`
	// Output response mimetype of the generated candidate text.
	// Must stay unset when the Google Search tool is enabled.
	ResponseMimeType *string `json:"responseMimeType,omitempty"`
}

// Tool details of a tool that the model may use to generate a response.
type Tool struct {
	// Optional. Google Search tool type. Specialized retrieval tool
	// that is powered by Google Search.
	GoogleSearch *GoogleSearch `json:"googleSearch,omitempty"`
}

// Tool to support Google Search in Model. Powered by Google.
type GoogleSearch struct{}

// Response message for PredictionService.GenerateContent.
type GenerateContentResponse struct {
	// Response variations returned by the model.
	Candidates []Candidate `json:"candidates,omitempty"`
	// Output only. Content filter results for a prompt sent in the request.
	PromptFeedback *PromptFeedback `json:"promptFeedback,omitempty"`
	// Output only. The model version used to generate the response.
	ModelVersion *string `json:"modelVersion,omitempty"`
	// Output only. response_id is used to identify each response.
	ResponseId *string `json:"responseId,omitempty"`
	// Usage metadata about the response(s).
	UsageMetadata *GenerateContentResponseUsageMetadata `json:"usageMetadata,omitempty"`
}

// Content filter results for a prompt sent in the request.
type PromptFeedback struct {
	// Output only. Blocked reason.
	BlockReason *string `json:"blockReason,omitempty"`
	// Output only. A readable block reason message.
	BlockReasonMessage *string `json:"blockReasonMessage,omitempty"`
}

// A response candidate generated from the model.
type Candidate struct {
	// Contains the multi-part content of the response.
	Content *Content `json:"content,omitempty"`
	// Describes the reason the model stopped generating tokens.
	FinishMessage *string `json:"finishMessage,omitempty"`
	// The reason why the model stopped generating tokens.
	// If empty, the model has not stopped generating the tokens.
	FinishReason *FinishReason `json:"finishReason,omitempty"`
	// Metadata specifies sources used to ground generated content.
	GroundingMetadata *GroundingMetadata `json:"groundingMetadata,omitempty"`
	// Output only. Index of the candidate.
	Index *int `json:"index,omitempty"`
}

// Metadata returned to client when grounding is enabled.
type GroundingMetadata struct {
	// List of supporting references retrieved from specified grounding source.
	GroundingChunks []GroundingChunk `json:"groundingChunks,omitempty"`
	// Optional. List of grounding support.
	GroundingSupports []GroundingSupport `json:"groundingSupports,omitempty"`
	// Optional. Google search entry for the following-up web searches.
	SearchEntryPoint *SearchEntryPoint `json:"searchEntryPoint,omitempty"`
	// Optional. Web search queries for the following-up web search.
	WebSearchQueries []string `json:"webSearchQueries,omitempty"`
}

// Grounding chunk.
type GroundingChunk struct {
	// Grounding chunk from the web.
	Web *GroundingChunkWeb `json:"web,omitempty"`
}

// Chunk from the web.
type GroundingChunkWeb struct {
	// Domain of the (original) URI.
	Domain *string `json:"domain,omitempty"`
	// Title of the chunk.
	Title *string `json:"title,omitempty"`
	// URI reference of the chunk.
	Uri *string `json:"uri,omitempty"`
}

// Grounding support.
type GroundingSupport struct {
	// A list of indices (into 'grounding_chunk') specifying the citations
	// associated with the claim.
	GroundingChunkIndices []int `json:"groundingChunkIndices,omitempty"`
	// Confidence score of the support references. Ranges from 0 to 1.
	ConfidenceScores []float64 `json:"confidenceScores,omitempty"`
	// Segment of the content this support belongs to.
	Segment *Segment `json:"segment,omitempty"`
}

// Segment of the content.
type Segment struct {
	// Output only. End index in the given Part, measured in bytes.
	EndIndex *int `json:"endIndex,omitempty"`
	// Output only. The index of a Part object within its parent Content object.
	PartIndex *int `json:"partIndex,omitempty"`
	// Output only. Start index in the given Part, measured in bytes.
	StartIndex *int `json:"startIndex,omitempty"`
	// Output only. The text corresponding to the segment from the response.
	Text *string `json:"text,omitempty"`
}

// Google search entry point.
type SearchEntryPoint struct {
	// Optional. Web content snippet that can be embedded in a web page or an app webview.
	RenderedContent *string `json:"renderedContent,omitempty"`
}

// Output only. The reason why the model stopped generating tokens.
//
// If empty, the model has not stopped generating the tokens.
type FinishReason string

const (
	// The finish reason is unspecified.
	FinishReasonUnspecified FinishReason = "FINISH_REASON_UNSPECIFIED"
	// Token generation reached a natural stopping point or a configured stop sequence.
	FinishReasonStop FinishReason = "STOP"
	// Token generation reached the configured maximum output tokens.
	FinishReasonMaxTokens FinishReason = "MAX_TOKENS"
	// Token generation stopped because the content potentially contains safety violations.
	FinishReasonSafety FinishReason = "SAFETY"
	// The token generation stopped because of potential recitation.
	FinishReasonRecitation FinishReason = "RECITATION"
	// All other reasons that stopped the token generation.
	FinishReasonOther FinishReason = "OTHER"
)

// Usage metadata about response(s).
type GenerateContentResponseUsageMetadata struct {
	// Number of tokens in the response(s).
	CandidatesTokenCount *int `json:"candidatesTokenCount,omitempty"`
	// Number of tokens in the request.
	PromptTokenCount *int `json:"promptTokenCount,omitempty"`
	// Output only. Number of tokens present in thoughts output.
	ThoughtsTokenCount *int `json:"thoughtsTokenCount,omitempty"`
	// Output only. Number of tokens present in tool-use prompt(s).
	ToolUsePromptTokenCount *int `json:"toolUsePromptTokenCount,omitempty"`
	// Total token count for prompt, response candidates, and tool-use prompts (if present).
	TotalTokenCount *int `json:"totalTokenCount,omitempty"`
}
