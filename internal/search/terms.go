// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/geo-curator/pkg/types"
)

// DefaultTerms returns the built-in hair follicle / alopecia term sets.
// The require list is deliberately broader and more anatomical than the
// query keywords; the exclude list targets the confusable ovarian and
// reproductive "follicle" vocabulary.
func DefaultTerms() types.SearchTerms {
	return types.SearchTerms{
		Keywords: []string{
			"hair follicle", "alopecia", "scalp hair", "hair scalp",
			"androgenetic alopecia", "hair loss", "dermal papilla",
			"hair cycle", "hair growth", "baldness",
		},
		Organisms: []string{"Homo sapiens", "Mus musculus"},
		DataTypes: []string{
			"Expression profiling by high throughput sequencing",
			"Methylation profiling by array",
			"Methylation profiling by high throughput sequencing",
			"Genome binding/occupancy profiling by high throughput sequencing",
		},
		RequireKeywords: []string{
			"hair follicle", "hair growth", "hair loss", "hair cycle",
			"hair shaft", "hair bulb", "hair root", "hair stem",
			"alopecia", "baldness", "dermal papilla", "hair keratinocyte",
			"anagen", "catagen", "telogen", "trichocyte", "pilosebaceous",
			"hair greying", "hair graying", "scalp", "androgenetic",
			"outer root sheath", "inner root sheath", "hair matrix",
		},
		ExcludeKeywords: []string{
			"ovary", "ovarian", "oocyte", "granulosa", "cumulus",
			"antral follicle", "primordial follicle", "follicular fluid",
			"oogenesis", "corpus luteum", "theca cell", "preantral",
			"preovulatory", "ovulation", "IVF", "in vitro fertilization",
			"embryo", "blastocyst", "uterus", "uterine", "endometrium",
			"placenta", "follicle-stimulating hormone", "FSH",
			"thyroid follicle", "lymphoid follicle", "dental follicle",
			"salivary gland", "lymph node", "germinal center",
		},
	}
}

// LoadTerms reads a SearchTerms YAML file. Any list the file leaves empty
// falls back to the built-in default for that list, so a terms file can
// override just the exclude set without restating everything else.
func LoadTerms(path string) (types.SearchTerms, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.SearchTerms{}, fmt.Errorf("reading terms file %s: %w", path, err)
	}

	var terms types.SearchTerms
	if err := yaml.Unmarshal(data, &terms); err != nil {
		return types.SearchTerms{}, fmt.Errorf("parsing terms file %s: %w", path, err)
	}

	defaults := DefaultTerms()
	if len(terms.Keywords) == 0 {
		terms.Keywords = defaults.Keywords
	}
	if len(terms.Organisms) == 0 {
		terms.Organisms = defaults.Organisms
	}
	if len(terms.DataTypes) == 0 {
		terms.DataTypes = defaults.DataTypes
	}
	if len(terms.RequireKeywords) == 0 {
		terms.RequireKeywords = defaults.RequireKeywords
	}
	if len(terms.ExcludeKeywords) == 0 {
		terms.ExcludeKeywords = defaults.ExcludeKeywords
	}
	return terms, nil
}
