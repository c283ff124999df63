package domain

// OutcomeStatus describes what happened to one input itinerary.
type OutcomeStatus string

const (
	// OutcomeKept means the itinerary was normalised.
	OutcomeKept OutcomeStatus = "kept"

	// OutcomeNotRoundTrip means the itinerary did not have exactly two legs.
	OutcomeNotRoundTrip OutcomeStatus = "not_round_trip"

	// OutcomeFailed means the itinerary was structurally broken.
	OutcomeFailed OutcomeStatus = "failed"
)

// Outcome records the fate of the input itinerary at Index.
type Outcome struct {
	Index       int           `json:"index"`
	ItineraryID ID            `json:"itinerary_id,omitempty"`
	Status      OutcomeStatus `json:"status"`
	Reason      string        `json:"reason,omitempty"`

	// Err is set when Status is OutcomeFailed.
	Err error `json:"-"`
}

// Report is the result of normalising a payload.
type Report struct {
	// Itineraries are the kept itineraries in input order.
	Itineraries []Itinerary `json:"itineraries"`

	// Outcomes has one entry per input itinerary, in input order.
	Outcomes []Outcome `json:"outcomes"`

	// Filtered counts itineraries dropped for not being round trips.
	Filtered int `json:"filtered"`

	// Failed counts itineraries dropped for structural defects.
	Failed int `json:"failed"`
}

// Errors returns the errors of all failed outcomes.
func (r *Report) Errors() []error {
	var errs []error
	for i := range r.Outcomes {
		if r.Outcomes[i].Err != nil {
			errs = append(errs, r.Outcomes[i].Err)
		}
	}
	return errs
}
