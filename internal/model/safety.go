package model

// HarmCategory is a content-filtering category understood by the Gemini API.
type HarmCategory string

const (
	HarmCategoryHarassment       HarmCategory = "HARM_CATEGORY_HARASSMENT"
	HarmCategoryHateSpeech       HarmCategory = "HARM_CATEGORY_HATE_SPEECH"
	HarmCategorySexuallyExplicit HarmCategory = "HARM_CATEGORY_SEXUALLY_EXPLICIT"
	HarmCategoryDangerousContent HarmCategory = "HARM_CATEGORY_DANGEROUS_CONTENT"
)

// Valid reports whether c is one of the known categories.
func (c HarmCategory) Valid() bool {
	switch c {
	case HarmCategoryHarassment, HarmCategoryHateSpeech, HarmCategorySexuallyExplicit, HarmCategoryDangerousContent:
		return true
	}
	return false
}

// BlockThreshold is the probability level at which content gets blocked.
type BlockThreshold string

const (
	BlockLowAndAbove    BlockThreshold = "BLOCK_LOW_AND_ABOVE"
	BlockMediumAndAbove BlockThreshold = "BLOCK_MEDIUM_AND_ABOVE"
	BlockOnlyHigh       BlockThreshold = "BLOCK_ONLY_HIGH"
	BlockNone           BlockThreshold = "BLOCK_NONE"
)

// Valid reports whether t is one of the known thresholds.
func (t BlockThreshold) Valid() bool {
	switch t {
	case BlockLowAndAbove, BlockMediumAndAbove, BlockOnlyHigh, BlockNone:
		return true
	}
	return false
}

// SafetyRule pairs a harm category with its block threshold.
// Rules are independent; their order carries no meaning.
type SafetyRule struct {
	Category  HarmCategory
	Threshold BlockThreshold
}

// DefaultSafetyRules blocks medium-and-above content in every category.
func DefaultSafetyRules() []SafetyRule {
	return []SafetyRule{
		{Category: HarmCategoryHarassment, Threshold: BlockMediumAndAbove},
		{Category: HarmCategoryHateSpeech, Threshold: BlockMediumAndAbove},
		{Category: HarmCategorySexuallyExplicit, Threshold: BlockMediumAndAbove},
		{Category: HarmCategoryDangerousContent, Threshold: BlockMediumAndAbove},
	}
}

// DefaultSystemInstruction is sent with every request unless overridden.
const DefaultSystemInstruction = `You are a helpful AI assistant powered by Google's Gemini API.
You provide accurate, informative, and engaging responses while maintaining a professional yet friendly tone.

Key capabilities:
- Answer questions across various topics
- Help with coding and technical problems
- Assist with creative writing and brainstorming
- Provide analysis and explanations
- Support learning and education

Guidelines:
- Be helpful and accurate
- If unsure, acknowledge uncertainty
- Maintain user privacy and safety
- Provide step-by-step guidance when needed
- Use examples to clarify complex concepts`
