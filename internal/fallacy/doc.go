// Package fallacy detects four logical fallacies by their structural
// signature in the argument graph: circular reasoning (a detected cycle),
// hasty generalization (a high-confidence claim under-supported by
// evidence), false dilemma (a claim resting on exactly two supporters that
// frame a binary choice), and appeal to authority (evidence that cites a
// source rather than data, itself unbacked).
package fallacy
