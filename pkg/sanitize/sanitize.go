// Package sanitize turns raw model output into a policy-compliant,
// display-ready answer. The pass is deterministic: apart from the removals
// below, the generator's wording is untouched.
package sanitize

import (
	"regexp"
	"strings"
)

// ImagingDenylist lists phrases whose presence removes a whole output line.
// Imaging results are already part of the prompt context, so the assistant
// must never send the patient back for another scan.
var ImagingDenylist = []string{
	"foto rontgen",
	"x-ray",
	"pemeriksaan radiologi",
	"rontgen dada",
}

// AnswerPrefixes lists response labels models tend to echo back from the
// prompt; they are stripped from the start of the answer.
var AnswerPrefixes = []string{
	"Jawaban Asisten DetakMedis:",
	"Jawaban Dokter Virtual DetakMedis:",
}

var (
	reasoningRe  = regexp.MustCompile(`(?is)<think>.*?</think>\s*`)
	prefixRe     = regexp.MustCompile(`(?i)^(` + strings.Join(AnswerPrefixes, "|") + `)\s*`)
	boldRe       = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe     = regexp.MustCompile(`\*(.*?)\*`)
	blankRunRe   = regexp.MustCompile(`\n{3,}`)
	bulletRe     = regexp.MustCompile(`(?m)^\*\s+`)
	spaceBefore  = regexp.MustCompile(`[ \t]+([,.!?;:])`)
	spaceAfter   = regexp.MustCompile(`([,.!?;:])[ \t]+`)
	denylistRes  = compileDenylist(ImagingDenylist)
)

func compileDenylist(phrases []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(phrases))
	for i, p := range phrases {
		res[i] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(p))
	}
	return res
}

// Answer sanitizes a raw generation. The step order mirrors the output
// contract: reasoning blocks and prefix labels first, then formatting
// normalization, then the imaging denylist, then punctuation spacing.
func Answer(raw string) string {
	s := reasoningRe.ReplaceAllString(raw, "")
	s = prefixRe.ReplaceAllString(s, "")

	// Escaped newlines from JSON-ish model output become real line breaks.
	s = strings.ReplaceAll(s, `\n`, "\n")

	s = boldRe.ReplaceAllString(s, "$1")
	s = italicRe.ReplaceAllString(s, "$1")

	s = blankRunRe.ReplaceAllString(s, "\n\n")
	s = trimLines(s)
	s = dropDeniedLines(s)
	s = strings.TrimSpace(s)

	s = bulletRe.ReplaceAllString(s, "• ")
	s = spaceBefore.ReplaceAllString(s, "$1")
	s = spaceAfter.ReplaceAllString(s, "$1 ")

	return strings.TrimSpace(s)
}

func trimLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}

func dropDeniedLines(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if lineDenied(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func lineDenied(line string) bool {
	for _, re := range denylistRes {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
