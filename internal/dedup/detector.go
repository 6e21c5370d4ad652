// Package dedup contains the duplicate detection and merge core. Both
// operate against an injected ContactRepository so the scoring and merge
// logic can be exercised without a database.
package dedup

import (
	"sort"

	"github.com/surajikf/IKF-PhoneBook/internal/model"
	"github.com/surajikf/IKF-PhoneBook/internal/repository"
	"github.com/surajikf/IKF-PhoneBook/internal/similarity"
)

// Weighted contributions per matching field. A lone phone or email match is
// enough to reach the reporting threshold; name similarity alone is not.
const (
	phoneWeight = 0.4
	emailWeight = 0.4
	nameWeight  = 0.3

	// duplicateThreshold is the minimum score for a match to be reported.
	duplicateThreshold = 0.4
	// exactThreshold separates near-certain duplicates from ones that only
	// need review. It requires two strong signals, or one strong signal
	// plus corroborating name similarity.
	exactThreshold = 0.8
)

// Detector finds stored contacts that likely describe the same person as a
// candidate.
type Detector struct {
	repo repository.ContactRepository
}

// NewDetector creates a detector over the given repository.
func NewDetector(repo repository.ContactRepository) *Detector {
	return &Detector{repo: repo}
}

// Detect runs the candidate through the corpus prefilter, scores every
// prefiltered contact across the phone, email and name dimensions, and
// returns the matches at or above the reporting threshold, best first. Ties
// keep the prefilter's newest-first order. A positive excludeID removes that
// record from consideration, which is used when re-checking an existing
// record during an update.
func (d *Detector) Detect(candidate model.CandidateContact, excludeID int64) (*model.DuplicateResult, error) {
	existing, err := d.repo.FindCandidates(candidate, excludeID)
	if err != nil {
		return nil, err
	}

	matches := []model.DuplicateMatch{}
	for _, contact := range existing {
		score, reasons := scoreContact(candidate, contact)
		if score < duplicateThreshold {
			continue
		}
		matches = append(matches, model.DuplicateMatch{
			Contact:         contact,
			SimilarityScore: score,
			MatchReasons:    reasons,
			IsExactMatch:    score >= exactThreshold,
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].SimilarityScore > matches[j].SimilarityScore
	})

	return &model.DuplicateResult{
		HasDuplicates:   len(matches) > 0,
		Duplicates:      matches,
		TotalDuplicates: len(matches),
	}, nil
}

// scoreContact computes the weighted similarity of a candidate against one
// stored contact. Scores are not capped; a full match across all three
// dimensions is 1.1.
func scoreContact(candidate model.CandidateContact, contact model.Contact) (float64, []string) {
	score := 0.0
	var reasons []string
	if candidate.Phone != "" && contact.Phone != "" &&
		similarity.PhoneNumbersSimilar(candidate.Phone, contact.Phone) {
		score += phoneWeight
		reasons = append(reasons, "phone number match")
	}
	if candidate.Email != "" && contact.EmailValue() != "" &&
		similarity.EmailsSimilar(candidate.Email, contact.EmailValue()) {
		score += emailWeight
		reasons = append(reasons, "email match")
	}
	if candidate.FullName() != "" && contact.FullName() != "" &&
		similarity.NamesSimilar(candidate.FullName(), contact.FullName()) {
		score += nameWeight
		reasons = append(reasons, "name match")
	}
	return score, reasons
}
