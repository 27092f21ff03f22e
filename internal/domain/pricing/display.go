package pricing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DisplayMode selects how an estimate is presented.
type DisplayMode string

const (
	DisplayYear  DisplayMode = "year"
	DisplayMonth DisplayMode = "month"
)

// PriceDisplay is the rendered estimate range.
type PriceDisplay struct {
	Min         int    `json:"min"`
	Max         int    `json:"max"`
	Text        string `json:"text"`
	Description string `json:"description"`
}

var printer = message.NewPrinter(language.AmericanEnglish)

// Display renders an estimate as an annual range or as a monthly range
// (each bound divided by 12 and rounded). Unknown modes render annually.
func Display(est Estimate, mode DisplayMode) PriceDisplay {
	if mode == DisplayMonth {
		lo := roundHalfUp(float64(est.Min) / 12)
		hi := roundHalfUp(float64(est.Max) / 12)
		return PriceDisplay{
			Min:         lo,
			Max:         hi,
			Text:        printer.Sprintf("%d - %d", lo, hi),
			Description: "Monthly estimate (annual cost ÷ 12)",
		}
	}
	return PriceDisplay{
		Min:         est.Min,
		Max:         est.Max,
		Text:        printer.Sprintf("%d - %d", est.Min, est.Max),
		Description: "Annual cost estimate",
	}
}

// Info is the customer-facing copy for a lead category.
type Info struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CTA         string `json:"cta"`
	Message     string `json:"message"`
}

// CategoryInfo returns the copy shown next to an estimate.
func CategoryInfo(c LeadCategory) Info {
	switch c {
	case CategoryPremium:
		return Info{
			Title:       "Ultra High Net Worth Client",
			Description: "Perfect fit for our premier wealth management services",
			CTA:         "Schedule Private Consultation",
			Message:     "VIP Service — Direct partner access within 4 hours.",
		}
	case CategoryQualified:
		return Info{
			Title:       "High Net Worth Prospect",
			Description: "Excellent fit for our comprehensive tax services",
			CTA:         "Schedule Strategy Session",
			Message:     "High-value client — Priority scheduling and dedicated team assigned.",
		}
	case CategoryStandard:
		return Info{
			Title:       "Potential HNW Client",
			Description: "May be a fit for select services",
			CTA:         "Schedule Consultation",
			Message:     "We'll evaluate if our HNW services align with your needs.",
		}
	default:
		return Info{
			Title:       "Better Fit Elsewhere",
			Description: "We recommend partners who specialize in your needs",
			CTA:         "View Recommended Partners",
			Message:     "Our partner firms may be a better value fit.",
		}
	}
}
