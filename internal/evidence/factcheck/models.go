package factcheck

// Result is the normalized outcome of a fact-check lookup: the review rating
// text plus where it came from.
type Result struct {
	Rating    string `json:"rating"`
	Publisher string `json:"publisher"`
	ReviewURL string `json:"review_url"`
}

// searchResponse mirrors the subset of the claims:search payload we read.
type searchResponse struct {
	Claims []Claim `json:"claims"`
}

// Claim is a previously checked claim matching the query.
type Claim struct {
	Text        string   `json:"text"`
	Claimant    string   `json:"claimant"`
	ClaimReview []Review `json:"claimReview"`
}

// Review is one publisher's verdict on a claim.
type Review struct {
	Publisher     Publisher `json:"publisher"`
	URL           string    `json:"url"`
	Title         string    `json:"title"`
	TextualRating string    `json:"textualRating"`
	LanguageCode  string    `json:"languageCode"`
}

// Publisher identifies the fact-checking organisation.
type Publisher struct {
	Name string `json:"name"`
	Site string `json:"site"`
}

// SelectResult picks the evidence to surface from claims. The first claim
// carrying a review wins; otherwise the first claim's text stands in as the
// rating. ok is false when there are no claims.
func SelectResult(claims []Claim) (Result, bool) {
	if len(claims) == 0 {
		return Result{}, false
	}
	for _, claim := range claims {
		if len(claim.ClaimReview) == 0 {
			continue
		}
		review := claim.ClaimReview[0]
		return Result{
			Rating:    review.TextualRating,
			Publisher: review.Publisher.Name,
			ReviewURL: review.URL,
		}, true
	}
	return Result{Rating: claims[0].Text}, true
}
