// Package htmlextract turns a raw HTML document into the compact
// structured snapshot consumed by the LLM full-extraction call. It is
// built on goquery, harvesting every signal a product page might expose
// rather than locating one known product card.
//
// Extract never fails: missing pieces simply yield empty containers.
package htmlextract

// StructuredData bundles the machine-readable signals lifted straight out
// of <script>/<meta> tags.
type StructuredData struct {
	JSONLD      []map[string]interface{} `json:"json_ld"`
	MetaTags    map[string]string        `json:"meta_tags"`
	OpenGraph   map[string]string        `json:"open_graph"`
	TwitterCard map[string]string        `json:"twitter_card"`
}

// Image is a candidate product image with its internal ranking score.
// Score and Alt are set only while <img> candidates are ranked; every entry
// of HTMLExtract.Images, whatever its origin, carries an empty Alt and a
// zero Score.
type Image struct {
	Src   string `json:"src"`
	Alt   string `json:"alt"`
	Score int    `json:"score"`
}

// Content bundles the free-text signals mined from the page body.
type Content struct {
	Title          string   `json:"title"`
	Headings       []string `json:"headings"`
	Breadcrumbs    []string `json:"breadcrumbs"`
	Descriptions   []string `json:"descriptions"`
	Specifications []string `json:"specifications"`
}

// HTMLExtract is the output of the HTML Product Extractor and the input to
// the LLM full-extraction call.
type HTMLExtract struct {
	URL            string          `json:"url"`
	StructuredData StructuredData  `json:"structured_data"`
	PriceSignals   []string        `json:"price_signals"`
	Images         []Image         `json:"images"`
	Content        Content         `json:"content"`
}
