package textgen

// variationProfile steers regenerated copy away from earlier drafts while
// staying on-brand.
type variationProfile struct {
	Name            string
	HeadlineHint    string
	DescriptionHint string
	CTAHint         string
	TaglineHint     string
}

var variationProfiles = []variationProfile{
	{
		Name:            "vibrant_action",
		HeadlineHint:    "Use an energetic verb and spotlight the product's most electrifying payoff.",
		DescriptionHint: "Lead with a bold promise, weave in a sensory detail, and address the reader directly.",
		CTAHint:         "Inject immediate urgency with a time-bound incentive.",
		TaglineHint:     "Craft a punchy, rhythmic phrase with subtle alliteration.",
	},
	{
		Name:            "premium_story",
		HeadlineHint:    "Frame the product as a premium experience or story-driven journey.",
		DescriptionHint: "Paint a mini narrative that contrasts a problem with an elevated resolution.",
		CTAHint:         "Invite the reader to 'discover' or 'experience' something exclusive.",
		TaglineHint:     "Blend sophistication with aspiration in 3-4 words.",
	},
	{
		Name:            "data_focused",
		HeadlineHint:    "Anchor the headline in a bold metric or tangible outcome.",
		DescriptionHint: "Surface a quantifiable benefit and mention a differentiating feature.",
		CTAHint:         "Encourage action with confidence-building wording (e.g., 'See How').",
		TaglineHint:     "Use a crisp, confidence-forward statement.",
	},
	{
		Name:            "lifestyle_mood",
		HeadlineHint:    "Emphasize the lifestyle transformation or mood shift the product unlocks.",
		DescriptionHint: "Highlight how the product fits seamlessly into the reader's day-to-day life.",
		CTAHint:         "Prompt the reader to start their journey toward that lifestyle.",
		TaglineHint:     "Capture the feeling in a short, emotive phrase.",
	},
}

// profileFor cycles the variation profiles by regeneration index.
func profileFor(regenerationIndex int) variationProfile {
	if regenerationIndex < 0 {
		regenerationIndex = -regenerationIndex
	}
	return variationProfiles[regenerationIndex%len(variationProfiles)]
}
