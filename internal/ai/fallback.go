package ai

// FallbackNarrative replaces the advisory text whenever the external
// generation call fails or the advisor is disabled. The pipeline must still
// produce a complete report, so failures never propagate past this constant.
const FallbackNarrative = "Unable to generate insights at this time. Please try again later."
