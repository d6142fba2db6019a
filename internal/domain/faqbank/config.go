package faqbank

// Config holds runtime knobs for the FAQ bank service. The acceptance
// threshold is deliberately absent: it is a fixed constant, not per tenant
// configuration.
type Config struct {
	TopTrending int
}
