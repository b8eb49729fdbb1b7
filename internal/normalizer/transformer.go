package normalizer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"bfpogen/internal/classifier"
	"bfpogen/internal/country"
	"bfpogen/internal/models"
	"bfpogen/pkg/utils"
)

// trailingNumber extracts the integer component of a designator after the
// prefix and punctuation have been stripped.
var trailingNumber = regexp.MustCompile(`(\d+)\s*$`)

// Transformer shapes one validated raw record into a canonical address.
type Transformer struct{}

// NewTransformer creates a new transformer instance.
func NewTransformer() *Transformer {
	return &Transformer{}
}

// Transform builds the canonical record: standardized designator, parsed
// box number for detachment rows, cleaned location/postcode, resolved
// country code and classified type.
func (t *Transformer) Transform(raw models.RawRecord) (models.Address, error) {
	designator, err := StandardizeDesignator(raw.Designator)
	if err != nil {
		return models.Address{}, err
	}

	addr := models.Address{
		Designator:  designator,
		Location:    utils.CollapseWhitespace(raw.Location),
		Postcode:    utils.CleanCell(raw.Postcode),
		CountryName: utils.CollapseWhitespace(raw.Country),
	}

	if raw.Detachment {
		box, parseErr := strconv.Atoi(strings.TrimSpace(raw.BoxNumber))
		if parseErr != nil {
			return models.Address{}, fmt.Errorf("%w: %q", ErrMalformedBoxNumber, raw.BoxNumber)
		}

		addr.BoxNumber = &box
	}

	if code, ok := country.Resolve(addr.CountryName); ok {
		addr.CountryCode = code
	}

	addr.Type = classifier.Classify(raw.Origin, addr.Location, raw)

	return addr, nil
}

// StandardizeDesignator normalizes raw designator text to "BFPO <integer>".
// Sources write it as "58", "BFPO58", "BFPO 2." and similar; anything
// without a trailing integer is malformed.
func StandardizeDesignator(raw string) (string, error) {
	cleaned := utils.StripPunctuation(utils.CollapseWhitespace(raw))
	cleaned = strings.TrimSpace(strings.TrimPrefix(strings.ToUpper(cleaned), models.DesignatorPrefix))

	match := trailingNumber.FindString(cleaned)
	if match == "" {
		return "", fmt.Errorf("%w: %q", ErrMalformedDesignator, raw)
	}

	n, err := strconv.Atoi(strings.TrimSpace(match))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrMalformedDesignator, raw)
	}

	return fmt.Sprintf("%s %d", models.DesignatorPrefix, n), nil
}
