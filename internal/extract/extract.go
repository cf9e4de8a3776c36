// Package extract turns a free-text product title into structured
// attributes by running an ordered sequence of destructive matching
// steps over a residual copy of the title. Each step removes whatever it
// matched, so later steps never see text an earlier step already
// claimed. The step order is part of the contract: reordering changes
// output (a storage token consumed before the RAM pass cannot be
// re-matched as RAM).
package extract

import (
	"regexp"
	"strings"
)

// AttributeSet holds the structured fields pulled from one title. Every
// field is optional; extraction never fabricates a value it did not
// match.
type AttributeSet struct {
	Brand      *string
	Model      *string
	Storage    *string
	RAM        *string
	Color      *string
	Processor  *string
	ScreenSize *string
	OS         *string
	Variants   *string
}

var (
	screenRe = regexp.MustCompile(`(?i)(\d+\.?\d*-inch|\d+\.?\d* inch)`)
	// Storage only claims disk-qualified GB tokens or TB tokens; a bare
	// "<n>GB" is left for the RAM pass even when it is really storage
	// (mobile titles). Known ambiguity, kept deliberately.
	storageRe = regexp.MustCompile(`(?i)(\d+\s?(?:GB|TB)\s?(?:SSD|HDD)|\d+\s?TB)`)
	ramRe     = regexp.MustCompile(`(?i)(\d+\s?GB\s?(?:RAM|DDR4|DDR5)?)`)

	spaceRe   = regexp.MustCompile(`\s+`)
	punctRe   = regexp.MustCompile(`[(),]`)
	numericRe = regexp.MustCompile(`^\d+$`)
)

// Extract runs the full attribute pipeline over title. Empty or
// whitespace-only input yields an all-nil set.
func Extract(title string) AttributeSet {
	var attrs AttributeSet

	name := strings.TrimSpace(title)
	if name == "" {
		return attrs
	}

	// 1. Brand: first whitespace token equal to a vocabulary entry.
	for _, word := range strings.Fields(name) {
		for _, brand := range brands {
			if strings.EqualFold(word, brand) {
				attrs.Brand = ptr(brand)
				name = strings.TrimSpace(strings.Replace(name, word, "", 1))
				break
			}
		}
		if attrs.Brand != nil {
			break
		}
	}

	// 2. Screen size, normalized to the "<n>-inch" form.
	if rest, matched := takeMatch(name, screenRe); matched != "" {
		name = rest
		attrs.ScreenSize = ptr(strings.TrimSpace(strings.ReplaceAll(matched, " inch", "-inch")))
	}

	// 3. Storage before 4. RAM: order prevents the RAM regex from
	// re-consuming an already-claimed "512GB SSD" token.
	if rest, matched := takeMatch(name, storageRe); matched != "" {
		name = rest
		attrs.Storage = ptr(strings.TrimSpace(matched))
	}
	if rest, matched := takeMatch(name, ramRe); matched != "" {
		name = rest
		attrs.RAM = ptr(strings.TrimSpace(matched))
	}

	// 5-7. Processor, OS, color: first vocabulary hit wins.
	name, attrs.Processor = takeTerm(name, processors)
	name, attrs.OS = takeTerm(name, operatingSystems)
	name, attrs.Color = takeTerm(name, colors)

	// 8. Variants collect every vocabulary hit, in vocabulary order.
	var found []string
	for _, tag := range variantTags {
		if loc := tag.re.FindStringIndex(name); loc != nil {
			found = append(found, tag.label)
			name = strings.TrimSpace(name[:loc[0]] + name[loc[1]:])
		}
	}
	if len(found) > 0 {
		attrs.Variants = ptr(strings.Join(found, ", "))
	}

	// 9. Model: whatever survived, collapsed and stripped of
	// parentheses and commas. Purely numeric residue is noise.
	name = strings.TrimSpace(spaceRe.ReplaceAllString(name, " "))
	name = strings.TrimSpace(punctRe.ReplaceAllString(name, ""))
	if name != "" && !numericRe.MatchString(name) {
		attrs.Model = ptr(name)
	}

	return attrs
}

// takeMatch removes the first capture of re from text and returns the
// remaining text plus the matched span (empty when no match).
func takeMatch(text string, re *regexp.Regexp) (string, string) {
	loc := re.FindStringSubmatchIndex(text)
	if loc == nil {
		return text, ""
	}
	matched := text[loc[2]:loc[3]]
	return strings.TrimSpace(text[:loc[2]] + text[loc[3]:]), matched
}

// takeTerm scans a vocabulary in order and excises the first entry
// found as a whole word, returning the vocabulary label.
func takeTerm(text string, terms []term) (string, *string) {
	for _, t := range terms {
		if loc := t.re.FindStringIndex(text); loc != nil {
			text = strings.TrimSpace(text[:loc[0]] + text[loc[1]:])
			return text, ptr(t.label)
		}
	}
	return text, nil
}

func ptr(s string) *string { return &s }
