// Package lints holds the built-in lint rules. Each lint implements
// checker.Lint plus one or both of the token and atom hooks.
package lints

import "rmscheck/internal/checker"

// Defaults returns the lint set a plain check run uses. UnknownAttribute is
// left out: section-specific attribute names make it too noisy to enable by
// default.
func Defaults() []checker.Lint {
	return []checker.Lint{
		NewArgTypes(),
		NewAttributeCase(),
		NewCommentContents(),
		NewCompatibility(),
		NewDeadBranchComment(),
		NewInclude(),
		NewIncorrectSection(),
		NewActorAreasMatch(),
	}
}
