// Package models defines the public data types returned by the scrape
// engine: the product record, its price, and the two validation errors the
// orchestrator can raise.
package models

import "fmt"

// GarmentType classifies the kind of product a listing describes.
type GarmentType string

const (
	GarmentUpper       GarmentType = "upper"
	GarmentLower       GarmentType = "lower"
	GarmentFullBody    GarmentType = "full_body"
	GarmentShoes       GarmentType = "shoes"
	GarmentOther       GarmentType = "other"
	GarmentUnsupported GarmentType = "unsupported"
)

// Availability is the stock status of a listing.
type Availability string

const (
	AvailabilityInStock    Availability = "in_stock"
	AvailabilityOutOfStock Availability = "out_of_stock"
	AvailabilityLimited    Availability = "limited"
	AvailabilityUnknown    Availability = "unknown"
)

// Price is a whole-unit amount with an ISO-4217-ish currency code. Both
// fields are optional since a source may report neither.
type Price struct {
	Amount   *int64
	Currency *string
}

// ProductRecord is the best-effort structured record the engine produces.
// ImageURLs preserves insertion order; duplicates are never present.
type ProductRecord struct {
	ProductName  *string
	Brand        *string
	Price        *Price
	ImageURLs    []string
	GarmentType  *GarmentType
	Availability *Availability
}

// IsComplete reports whether every required field is set.
func (p ProductRecord) IsComplete() bool {
	return p.ProductName != nil &&
		p.Brand != nil &&
		p.Price != nil && p.Price.Amount != nil &&
		len(p.ImageURLs) > 0 &&
		p.GarmentType != nil
}

// MissingFlags reports which ProductRecord fields are absent, for the
// diagnostic payload returned alongside a successful scrape. A scrape that
// fails validation returns an error and no payload, so Unsupported is false
// in every returned result.
type MissingFlags struct {
	NameMissing    bool `json:"name_missing"`
	BrandMissing   bool `json:"brand_missing"`
	PriceMissing   bool `json:"price_missing"`
	ImageMissing   bool `json:"image_missing"`
	Unsupported    bool `json:"unsupported"`
}

// ScrapeResult is the return value of the scrape engine's entry point.
type ScrapeResult struct {
	ProductName  *string       `json:"product_name,omitempty"`
	Brand        *string       `json:"brand,omitempty"`
	Price        *Price        `json:"price,omitempty"`
	ImageURLs    []string      `json:"image_urls"`
	GarmentType  *GarmentType  `json:"garment_type,omitempty"`
	Availability *Availability `json:"availability,omitempty"`
	MissingFlags MissingFlags  `json:"missing_flags"`
	Success      bool          `json:"success"`
}

// FromProductRecord builds the caller-facing result from the internal
// record, computing the missing-field diagnostics.
func FromProductRecord(p ProductRecord) ScrapeResult {
	return ScrapeResult{
		ProductName:  p.ProductName,
		Brand:        p.Brand,
		Price:        p.Price,
		ImageURLs:    p.ImageURLs,
		GarmentType:  p.GarmentType,
		Availability: p.Availability,
		MissingFlags: MissingFlags{
			NameMissing:  p.ProductName == nil,
			BrandMissing: p.Brand == nil,
			PriceMissing: p.Price == nil || p.Price.Amount == nil,
			ImageMissing: len(p.ImageURLs) == 0,
		},
		Success: true,
	}
}

// NotFashionProductError is raised when the garment classification came
// back explicitly "unsupported" (not a fashion item at all).
type NotFashionProductError struct {
	URL string
}

func (e *NotFashionProductError) Error() string {
	return fmt.Sprintf("not a fashion product: %s", e.URL)
}

// UnsupportedProductError is raised when the garment classification is
// missing, "other", or outside the recognized upper/lower/full_body/shoes
// set.
type UnsupportedProductError struct {
	URL string
	Got *GarmentType
}

func (e *UnsupportedProductError) Error() string {
	if e.Got == nil {
		return fmt.Sprintf("unsupported product (no garment classification): %s", e.URL)
	}
	return fmt.Sprintf("unsupported product (garment_type=%s): %s", *e.Got, e.URL)
}
